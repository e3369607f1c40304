package outbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/adapters/outbox"
	outboxmock "github.com/Allirose140/SmartStackPro/internal/adapters/outbox/mock"
	"github.com/Allirose140/SmartStackPro/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestBroker_Publish(t *testing.T) {
	t.Run("stages the marshalled event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		broker := outbox.NewBroker(repo)

		product := &domain.Product{ID: 7, Name: "Laptop Stand", CurrentStock: 4, MinThreshold: 10}
		event := domain.NewReorderAlertEvent(product, 3, 25, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry outbox.Entry) error {
				if entry.EventName != "product.reorder_alert" {
					t.Fatalf("unexpected event name %q", entry.EventName)
				}
				if entry.EntityName != "product" {
					t.Fatalf("unexpected entity name %q", entry.EntityName)
				}
				var decoded domain.ReorderAlertEvent
				if err := json.Unmarshal(entry.EventData, &decoded); err != nil {
					t.Fatalf("event data is not valid JSON: %v", err)
				}
				if decoded.ProductID != 7 || decoded.SuggestedQuantity != 25 {
					t.Fatalf("unexpected payload %+v", decoded)
				}
				return nil
			})

		if err := broker.Publish(context.Background(), event); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxmock.NewMockRepository(ctrl)
		broker := outbox.NewBroker(repo)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("outbox full"))

		product := &domain.Product{ID: 1, Name: "Widget"}
		event := domain.NewReorderAlertEvent(product, 1, 10, time.Now())
		if err := broker.Publish(context.Background(), event); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
