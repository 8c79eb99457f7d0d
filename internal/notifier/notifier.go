// Package notifier publishes price change notifications.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/notification"
)

//go:generate mockery --name Publisher --filename publisher.go

// Publisher publishes messages to routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// RabbitMQNotifier publishes notification.PriceChanged messages.
type RabbitMQNotifier struct {
	publisher  Publisher
	routingKey string
}

// NewRabbitMQNotifier returns new RabbitMQNotifier publishing to routingKey.
func NewRabbitMQNotifier(publisher Publisher, routingKey string) *RabbitMQNotifier {
	return &RabbitMQNotifier{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// Notify publishes price change.
func (n *RabbitMQNotifier) Notify(ctx context.Context, change models.PriceChange) error {
	msg, err := json.Marshal(toMessage(change))
	if err != nil {
		return fmt.Errorf("can't marshal price change of item %d: %w", change.Item.ID, err)
	}

	if err := n.publisher.Publish(ctx, n.routingKey, msg); err != nil {
		return fmt.Errorf("can't publish price change of item %d: %w", change.Item.ID, err)
	}

	return nil
}

func toMessage(change models.PriceChange) notification.PriceChanged {
	return notification.PriceChanged{
		UserID:     change.UserID,
		ChatID:     change.ChatID,
		ItemID:     change.Item.ID,
		VendorCode: change.Item.VendorCode,
		Name:       change.Item.Name,
		NameSite:   change.Item.NameSite,
		Old:        toPrice(change.Old),
		New:        toPrice(change.New),
	}
}

func toPrice(price models.Price) notification.Price {
	return notification.Price{
		Price:        price.Price,
		FinalPrice:   price.FinalPrice,
		PersonalSale: price.PersonalSale,
		SoldOut:      price.SoldOut,
		ParsedAt:     price.ParsedAt,
	}
}
