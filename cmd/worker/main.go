package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/email"
	"github.com/Domenick1991/airreservation/internal/kafka"
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
	if !cfg.Kafka.Enabled() || cfg.Kafka.NotificationsTopic == "" {
		log.Fatalf("notifier needs kafka.brokers and kafka.notifications_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender(os.Stdout)

	log.Printf("notifier consuming %s", cfg.Kafka.NotificationsTopic)
	err = consumer.ConsumeTicketEvents(ctx, emailSender.Send)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("notifier shutting down")
}
