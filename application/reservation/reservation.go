package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/table-booking/cmd/config"
	"github.com/muhammadheryan/table-booking/constant"
	"github.com/muhammadheryan/table-booking/model"
	redisrepo "github.com/muhammadheryan/table-booking/repository/redis"
	reservationrepo "github.com/muhammadheryan/table-booking/repository/reservation"
	tablerepo "github.com/muhammadheryan/table-booking/repository/table"
	"github.com/muhammadheryan/table-booking/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/table-booking/utils/context"
	cerr "github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/muhammadheryan/table-booking/utils/logger"
	validatorx "github.com/muhammadheryan/table-booking/utils/validator"
	"go.uber.org/zap"
)

const invalidSlotMessage = "slotTimeStart must be before slotTimeEnd"

type ReservationApp interface {
	CreateReservation(ctx context.Context, req *model.CreateReservationRequest) (*model.CreateReservationResponse, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
}

type reservationAppImpl struct {
	config          *config.Config
	tableRepo       tablerepo.TableRepository
	reservationRepo reservationrepo.ReservationRepository
	lockRepo        redisrepo.RedisRepository
	publisher       rabbitmq.ReservationPublisher
}

// NewReservationApp wires the reservation use cases. publisher may be nil, in
// which case no events are emitted.
func NewReservationApp(
	config *config.Config,
	tableRepo tablerepo.TableRepository,
	reservationRepo reservationrepo.ReservationRepository,
	lockRepo redisrepo.RedisRepository,
	publisher rabbitmq.ReservationPublisher,
) ReservationApp {
	return &reservationAppImpl{
		config:          config,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		lockRepo:        lockRepo,
		publisher:       publisher,
	}
}

func lockKey(tableNumber int, date string) string {
	return fmt.Sprintf("%s%d:%s", constant.ReservationLockPrefix, tableNumber, date)
}

func (s *reservationAppImpl) CreateReservation(ctx context.Context, req *model.CreateReservationRequest) (*model.CreateReservationResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cerr.SetCustomErrorWithMessage(constant.ErrInvalidRequest, validatorx.Describe(err))
	}
	if !Before(req.SlotTimeStart, req.SlotTimeEnd) {
		return nil, cerr.SetCustomErrorWithMessage(constant.ErrInvalidRequest, invalidSlotMessage)
	}
	tableNumber := *req.TableNumber

	table, err := s.tableRepo.GetByNumber(ctx, tableNumber)
	if err != nil {
		logger.Error("[CreateReservation] err tableRepo.GetByNumber", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if table == nil {
		return nil, cerr.SetCustomError(constant.ErrTableNotFound)
	}

	entity, err := s.reserveSlot(ctx, tableNumber, req)
	if err != nil {
		return nil, err
	}

	// the slot lock is already released; a slow broker only delays this caller
	s.publishCreated(context.WithoutCancel(ctx), entity)

	return &model.CreateReservationResponse{ReservationID: entity.ReservationID}, nil
}

// reserveSlot holds the per table and date lock across the conflict check and
// the write.
func (s *reservationAppImpl) reserveSlot(ctx context.Context, tableNumber int, req *model.CreateReservationRequest) (*model.ReservationEntity, error) {
	key := lockKey(tableNumber, req.Date)
	token, ok, err := s.lockRepo.AcquireLock(ctx, key, s.config.Reservation.LockTTL)
	if err != nil {
		logger.Error("[CreateReservation] err lockRepo.AcquireLock", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, cerr.SetCustomError(constant.ErrReservationInProgress)
	}
	defer func() {
		// released even when the caller has gone away, otherwise the slot stays locked for the TTL
		if err := s.lockRepo.ReleaseLock(context.WithoutCancel(ctx), key, token); err != nil {
			logger.Warn("[CreateReservation] err lockRepo.ReleaseLock", zap.String("key", key), zap.String("error", err.Error()))
		}
	}()

	conflict, err := HasConflict(ctx, s.reservationRepo, tableNumber, req.Date, req.SlotTimeStart, req.SlotTimeEnd)
	if err != nil {
		logger.Error("[CreateReservation] err HasConflict", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if conflict {
		return nil, cerr.SetCustomError(constant.ErrSlotConflict)
	}

	createdBy, _ := utilsContext.GetUsername(ctx)
	entity := &model.ReservationEntity{
		ReservationID: uuid.NewString(),
		TableNumber:   tableNumber,
		ClientName:    req.ClientName,
		PhoneNumber:   req.PhoneNumber,
		Date:          req.Date,
		SlotTimeStart: req.SlotTimeStart,
		SlotTimeEnd:   req.SlotTimeEnd,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err = s.reservationRepo.Create(ctx, entity); err != nil {
		if errors.Is(err, reservationrepo.ErrDuplicateID) {
			logger.Error("[CreateReservation] reservation id collision", zap.String("reservationId", entity.ReservationID))
		} else {
			logger.Error("[CreateReservation] err reservationRepo.Create", zap.String("error", err.Error()))
		}
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

// publishCreated never fails the request; the reservation is already stored.
func (s *reservationAppImpl) publishCreated(ctx context.Context, r *model.ReservationEntity) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishReservationCreated(ctx, rabbitmq.ReservationCreatedMessage{
		ReservationID: r.ReservationID,
		TableNumber:   r.TableNumber,
		Date:          r.Date,
		SlotTimeStart: r.SlotTimeStart,
		SlotTimeEnd:   r.SlotTimeEnd,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
	})
	if err != nil {
		logger.Warn("[CreateReservation] err publisher.PublishReservationCreated",
			zap.String("reservationId", r.ReservationID),
			zap.String("error", err.Error()))
	}
}

func (s *reservationAppImpl) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	entities, err := s.reservationRepo.List(ctx)
	if err != nil {
		logger.Error("[ListReservations] err reservationRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	reservations := make([]model.Reservation, 0, len(entities))
	for _, e := range entities {
		reservations = append(reservations, model.NewReservation(e))
	}
	return reservations, nil
}
