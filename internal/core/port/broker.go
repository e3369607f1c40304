package port

import (
	"context"

	"github.com/Allirose140/SmartStackPro/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort receives events emitted by stock operations, e.g. reorder
// alerts. Publishing is best effort from the core's point of view: a
// failed publish never rolls back the stock mutation that triggered it.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error
	Close() error
}
