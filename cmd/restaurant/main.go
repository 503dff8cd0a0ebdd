package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	authapp "github.com/smartpanda/restaurant/internal/auth/application"
	authstore "github.com/smartpanda/restaurant/internal/auth/infrastructure/jsonstore"
	catalogapp "github.com/smartpanda/restaurant/internal/catalog/application"
	catalogstore "github.com/smartpanda/restaurant/internal/catalog/infrastructure/jsonstore"
	"github.com/smartpanda/restaurant/internal/config"
	"github.com/smartpanda/restaurant/internal/console"
	orderapp "github.com/smartpanda/restaurant/internal/order/application"
	orderstore "github.com/smartpanda/restaurant/internal/order/infrastructure/jsonstore"
	"github.com/smartpanda/restaurant/pkg/logging"
	"github.com/smartpanda/restaurant/pkg/shutdown"
)

func main() {
	cfg := config.Load()

	logSink, err := os.OpenFile(cfg.ErrorLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", cfg.ErrorLogFile, err)
		logSink = os.Stderr
	} else {
		defer logSink.Close()
	}
	log := logging.New(logSink, cfg.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	users := authstore.NewUserRepository(log, cfg.UsersFile)
	sessions := authstore.NewSessionRepository(log, cfg.SessionFile)
	auth, err := authapp.NewService(ctx, log, users, sessions)
	if err != nil {
		fatal(log, "auth init failed", err)
	}

	catalog, err := catalogapp.NewService(ctx, log, catalogstore.NewRepository(log, cfg.ProductsFile))
	if err != nil {
		fatal(log, "catalog init failed", err)
	}

	orders, err := orderapp.NewService(ctx, log, orderstore.NewRepository(log, cfg.OrdersFile), catalog)
	if err != nil {
		fatal(log, "ledger init failed", err)
	}

	frontend := console.New(log, os.Stdin, os.Stdout, auth, catalog, orders)
	if err := frontend.Run(ctx); err != nil && ctx.Err() == nil {
		fatal(log, "frontend stopped", err)
	}
	fmt.Println("Goodbye!")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
