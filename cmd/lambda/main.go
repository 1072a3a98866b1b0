package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/muhammadheryan/table-booking/cmd/bootstrap"
	"github.com/muhammadheryan/table-booking/cmd/config"
	"github.com/muhammadheryan/table-booking/transport"
	"github.com/muhammadheryan/table-booking/utils/logger"
	"go.uber.org/zap"
)

// Clients are built once per execution environment and reused across
// invocations.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		logger.Fatal("err build app", zap.Error(err))
	}
	defer app.Close()

	lambda.Start(transport.NewLambdaHandler(app.Handler))
}
