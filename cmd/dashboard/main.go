package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/supplier_orders/config"
	"github.com/Gunvolt24/supplier_orders/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	defer cleanup()
	if err != nil {
		panic(err)
	}

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "dashboard stopped with error: %v", err)
		cleanup()
		os.Exit(1)
	}
}
