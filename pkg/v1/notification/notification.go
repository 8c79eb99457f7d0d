// Package notification describes messages tracker publishes for chat bot.
package notification

import (
	"encoding/json"
	"fmt"
	"time"
)

// Price is item price snapshot. Nil fields are unknown.
type Price struct {
	Price        *int      `json:"price"`
	FinalPrice   *int      `json:"finalPrice"`
	PersonalSale *int      `json:"personalSale"`
	SoldOut      bool      `json:"soldOut"`
	ParsedAt     time.Time `json:"parsedAt"`
}

// PriceChanged is message published when final price or personal sale of item changed.
type PriceChanged struct {
	UserID     int    `json:"userId"`
	ChatID     int64  `json:"chatId"`
	ItemID     int    `json:"itemId"`
	VendorCode int    `json:"vendorCode"`
	Name       string `json:"name"`
	NameSite   string `json:"nameSite"`
	Old        Price  `json:"old"`
	New        Price  `json:"new"`
}

// Decode decodes PriceChanged message.
func Decode(msg []byte) (PriceChanged, error) {
	var changed PriceChanged
	if err := json.Unmarshal(msg, &changed); err != nil {
		return PriceChanged{}, fmt.Errorf("can't decode price changed message: %w", err)
	}

	return changed, nil
}
