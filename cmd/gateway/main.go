package main

import (
	"context"
	"log/slog"
	"os"

	"shareit/config"
	"shareit/internal/delivery"
	"shareit/internal/delivery/http/middleware"
	"shareit/internal/gateway"
	"shareit/internal/gateway/client"
	"shareit/internal/gateway/handler"
	gatewaymiddleware "shareit/internal/gateway/middleware"
	logs "shareit/internal/infra/log"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.NewGateway,
		logs.New,
		context.Background,
		client.New,
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			gatewaymiddleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewItemHandler,
			handler.NewBookingHandler,
			handler.NewRequestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				gateway.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start gateway", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
