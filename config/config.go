package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	HTTP  HTTPConfig  `yaml:"http"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type ShellConfig struct {
	Color  bool   `yaml:"color"`
	Banner string `yaml:"banner"`
}

// HTTPConfig enables the read-only HTTP view when Address is set.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// KafkaConfig enables ticket events when Brokers is not empty.
type KafkaConfig struct {
	Brokers               []string `yaml:"brokers"`
	TicketEventsTopic     string   `yaml:"ticket_events_topic"`
	NotificationsTopic    string   `yaml:"notifications_topic"`
	GroupID               string   `yaml:"group_id"`
	PublishRetries        int      `yaml:"publish_retries"`
	PublishTimeoutSeconds int      `yaml:"publish_timeout_seconds"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.TicketEventsTopic != ""
}

func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Color:  true,
			Banner: "Airline Reservation System",
		},
		Kafka: KafkaConfig{
			TicketEventsTopic:     "ticket_events",
			NotificationsTopic:    "ticket_notifications",
			GroupID:               "ticket-notifier",
			PublishRetries:        3,
			PublishTimeoutSeconds: 5,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
