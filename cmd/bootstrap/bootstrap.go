package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	reservationapp "github.com/muhammadheryan/table-booking/application/reservation"
	tableapp "github.com/muhammadheryan/table-booking/application/table"
	userapp "github.com/muhammadheryan/table-booking/application/user"
	awsclient "github.com/muhammadheryan/table-booking/cmd/aws"
	"github.com/muhammadheryan/table-booking/cmd/config"
	redisclient "github.com/muhammadheryan/table-booking/cmd/redis"
	_ "github.com/muhammadheryan/table-booking/docs"
	identityRepo "github.com/muhammadheryan/table-booking/repository/identity"
	redisRepo "github.com/muhammadheryan/table-booking/repository/redis"
	reservationRepo "github.com/muhammadheryan/table-booking/repository/reservation"
	tableRepo "github.com/muhammadheryan/table-booking/repository/table"
	"github.com/muhammadheryan/table-booking/thirdparty/rabbitmq"
	"github.com/muhammadheryan/table-booking/transport"
	"github.com/muhammadheryan/table-booking/utils/logger"
	validatorx "github.com/muhammadheryan/table-booking/utils/validator"
	"go.uber.org/zap"
)

// App is the assembled HTTP handler and the cleanup for the clients behind it.
type App struct {
	Handler http.Handler
	closers []closer
}

type closer struct {
	name  string
	close func() error
}

// Close releases the clients in reverse order of creation. Failures are logged
// and do not stop the remaining closers.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			logger.Warn("[App.Close] err close "+c.name, zap.String("error", err.Error()))
		}
	}
}

// Build constructs every client once and wires repositories, applications and
// the router. Redis and RabbitMQ are optional.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}
	validatorx.Init()

	clients, err := awsclient.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	IdentityRepo := identityRepo.NewIdentityRepository(clients.Cognito, cfg.Auth.UserPoolID, cfg.Auth.ClientID)
	TableRepo := tableRepo.NewTableRepository(clients.DynamoDB, cfg.Storage.TablesTable)
	ReservationRepo := reservationRepo.NewReservationRepository(clients.DynamoDB, cfg.Storage.ReservationsTable)

	var LockRepo redisRepo.RedisRepository
	if cfg.RedisEnabled() {
		client, err := redisclient.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		app.closers = append(app.closers, closer{name: "redis", close: client.Close})
		LockRepo = redisRepo.NewRepository(client)
	} else {
		logger.Warn("REDIS_HOST not set, reservation slot lock disabled; concurrent bookings of one slot can both succeed")
		LockRepo = redisRepo.NewNoopRepository()
	}

	var publisher rabbitmq.ReservationPublisher
	if cfg.RabbitMQEnabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			// events are best effort, the API still serves without a broker
			logger.Error("[Build] err rabbitmq.NewPublisher", zap.String("error", err.Error()))
		} else {
			app.closers = append(app.closers, closer{name: "rabbitmq", close: p.Close})
			publisher = p
		}
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, IdentityRepo)
	TableApp := tableapp.NewTableApp(cfg, TableRepo)
	ReservationApp := reservationapp.NewReservationApp(cfg, TableRepo, ReservationRepo, LockRepo, publisher)

	app.Handler = transport.NewTransport(UserApp, TableApp, ReservationApp)
	return app, nil
}
