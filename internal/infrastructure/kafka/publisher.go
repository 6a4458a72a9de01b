package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// LedgerPublisher pushes pool ledger events to a single topic. Events are
// informational; callers publish asynchronously and only log failures.
type LedgerPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewLedgerPublisher(brokers []string, topic string) *LedgerPublisher {
	return &LedgerPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func (p *LedgerPublisher) publish(key []byte, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
		Topic: p.topic,
	})
}

func (p *LedgerPublisher) PublishBetEvent(event BetEvent) error {
	return p.publish([]byte(event.MemberID), event)
}

func (p *LedgerPublisher) PublishAwardEvent(event AwardEvent) error {
	return p.publish([]byte(event.MemberID), event)
}

func (p *LedgerPublisher) PublishWeekClosed(event WeekClosedEvent) error {
	return p.publish([]byte(event.WeekID), event)
}

func (p *LedgerPublisher) Close() error {
	return p.writer.Close()
}
