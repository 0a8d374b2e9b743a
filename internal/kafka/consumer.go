package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// ConsumeTicketEvents reads until ctx is done or handler fails. Messages that
// are not ticket events are logged and skipped.
func (c *Consumer) ConsumeTicketEvents(ctx context.Context, handler func(context.Context, TicketEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, ok := DecodeTicketEvent(msg)
		if !ok {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func DecodeTicketEvent(msg kafka.Message) (TicketEvent, bool) {
	var event TicketEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("decode ticket event at offset %d: %v", msg.Offset, err)
		return TicketEvent{}, false
	}
	if event.Type == "" {
		log.Printf("skip message without event type at offset %d", msg.Offset)
		return TicketEvent{}, false
	}
	return event, true
}
