package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"github.com/Allirose140/SmartStackPro/internal/core/port"
)

// Broker stages events in the outbox instead of publishing directly.
// The Handler drains staged entries to the real broker, so a broker
// outage never loses a reorder alert raised by a stock operation.
type Broker struct {
	outbox Repository
}

func NewBroker(outbox Repository) *Broker {
	return &Broker{outbox: outbox}
}

func (b *Broker) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.PublishRaw(ctx, event.GetName(), event.GetEntityName(), data)
}

func (b *Broker) PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error {
	return b.outbox.Insert(ctx, Entry{
		EventName:  eventName,
		EntityName: entityName,
		EventData:  data,
	})
}

func (b *Broker) Close() error { return nil }

var _ port.BrokerPort = (*Broker)(nil)
