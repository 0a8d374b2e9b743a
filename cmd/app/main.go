package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/bootstrap"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/repository"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/Domenick1991/airreservation/internal/shell"
	"github.com/Domenick1991/airreservation/internal/validator"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	v := validator.New()
	flightRepo := repository.NewFlightRepository()
	ticketRepo := repository.NewTicketRepository()

	var opts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unreachable, events may be lost: %v", err)
		}
		opts = append(opts,
			booking.WithProducer(producer, cfg.Kafka.TicketEventsTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
			booking.WithPublishPolicy(
				cfg.Kafka.PublishRetries,
				time.Duration(cfg.Kafka.PublishTimeoutSeconds)*time.Second,
			),
		)
	}

	flightService := flights.NewFlightService(flightRepo, v)
	bookingService := booking.NewBookingService(ticketRepo, flightRepo, opts...)

	serverDone := make(chan error, 1)
	serveCtx, cancelServe := context.WithCancel(ctx)
	defer cancelServe()
	if cfg.HTTP.Address != "" {
		go func() {
			serverDone <- bootstrap.Run(serveCtx, cfg.HTTP, flightService, bookingService)
		}()
		log.Printf("http view listening on %s", cfg.HTTP.Address)
	} else {
		close(serverDone)
	}

	sh := shell.New(flightService, bookingService, v, os.Stdin, os.Stdout, shell.Options{
		Color:  cfg.Shell.Color,
		Banner: cfg.Shell.Banner,
	})
	shellDone := make(chan error, 1)
	go func() { shellDone <- sh.Run(ctx) }()

	// A pending read on stdin does not observe ctx, so a signal ends the run here.
	var runErr error
	select {
	case runErr = <-shellDone:
	case <-ctx.Done():
		log.Printf("received shutdown signal")
	}

	cancelServe()
	if err := <-serverDone; err != nil {
		log.Printf("http view: %v", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatalf("shell error: %v", runErr)
	}
}
