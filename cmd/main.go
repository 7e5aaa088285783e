package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-payments-gateway/config"
	"github.com/jeffleon2/draftea-payments-gateway/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config", err)
		os.Exit(1)
	}

	myApp := &app.App{}
	if err := myApp.Initialize(cfg); err != nil {
		logrus.Fatalf("Error initializing: %v", err)
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Fatalf("Error running: %v", err)
	}

	logrus.Info("Payments gateway stopped")
}
