package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/supplier_orders/config"
	"github.com/Gunvolt24/supplier_orders/internal/app"
	"github.com/joho/godotenv"
)

// CLI-приложение для работы с заказами поставщика через тот же сервис, что и панель.
func main() {
	_ = godotenv.Load(".env.local")

	token := flag.String("token", "", "bearer token; overrides STOREFRONT_SESSION_TOKEN")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	// CLI пишет в stdout, логи не должны его засорять
	cfg.Logger.IsProd = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := app.BuildServices(ctx, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}
	if *token != "" {
		svc.Sessions.SignIn(*token)
	}

	code := run(ctx, svc.Orders, flag.Args(), os.Stdin, os.Stdout, os.Stderr)
	cleanup()
	os.Exit(code)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: orders-cli [-token T] <command> [flags]

commands:
  list        -page N -page-size N -status S
  get         -id ID
  set-status  -id ID -status S
  analytics   -days N
  shipments   -page N -page-size N
  returns     -page N -page-size N
  apply       -in changes.jsonl (stdin if empty)
`)
}
