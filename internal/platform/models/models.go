package models

import "time"

// ParsingType is type of parsing run.
type ParsingType string

const (
	// ParsingTypePrice marks runs producing price snapshots.
	ParsingTypePrice ParsingType = "price"
	// ParsingTypePosition marks runs producing search position snapshots.
	ParsingTypePosition ParsingType = "position"
	// ParsingTypeSellerAPI marks runs synchronizing seller-api prices.
	ParsingTypeSellerAPI ParsingType = "seller-api"
)

// ProductInfo is a product scraped from marketplace product-detail endpoint.
type ProductInfo struct {
	VendorCode int
	NameSite   string
	Reviews    int
	Price      *int
	FinalPrice *int
	SoldOut    bool
}

// User is tracking user model.
type User struct {
	ID          int
	ChatID      int64
	SellerToken *string
}

// Category is product category model.
type Category struct {
	ID           int
	Name         string
	PersonalSale *int
}

// Item is tracked product model.
type Item struct {
	ID         int
	UserID     int
	VendorCode int
	Name       string
	NameSite   string
	CategoryID *int
	Category   *Category
}

// ImportedItem is item row read from spreadsheet.
type ImportedItem struct {
	VendorCode int
	Name       string
	Keywords   []string
}

// Parsing is parsing process run model.
type Parsing struct {
	ID            int
	Type          ParsingType
	CreatedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string
	ParsedItems   *int32
	FailedItems   *int32
}

// Price is item price snapshot model.
type Price struct {
	ID           int
	ItemID       int
	ParsingID    int
	ParsedAt     time.Time
	Reviews      int
	Price        *int
	FinalPrice   *int
	PersonalSale *int
	SoldOut      bool
}

// Keyword is search phrase tracked for item.
type Keyword struct {
	ID     int
	ItemID int
	Value  string
}

// TrackedKeyword is keyword joined with its item.
type TrackedKeyword struct {
	Keyword
	VendorCode int
	UserID     int
}

// Position is keyword search position snapshot model.
type Position struct {
	ID             int
	KeywordID      int
	ParsingID      int
	ParsedAt       time.Time
	City           string
	PageCapacities []int
	Page           *int
	Rank           *int
	PromoPage      *int
	PromoRank      *int
}

// SellerItem is price entered by seller in seller-api.
type SellerItem struct {
	UserID     int
	VendorCode int
	Price      int
	Discount   int
}

// PricePoint is single day value of prepared price view.
type PricePoint struct {
	Price        *int `json:"price"`
	FinalPrice   *int `json:"finalPrice"`
	PersonalSale *int `json:"personalSale"`
	SoldOut      bool `json:"soldOut"`
}

// PreparedPrice is item price history for rolling window of days.
// Days without snapshot have nil value.
type PreparedPrice struct {
	ItemID int
	Prices map[string]*PricePoint
}

// PositionPoint is single day value of prepared position view.
type PositionPoint struct {
	Page         *int `json:"page"`
	Rank         *int `json:"rank"`
	RealPosition *int `json:"realPosition"`
	PromoPage    *int `json:"promoPage"`
	PromoRank    *int `json:"promoRank"`
}

// PreparedPosition is keyword position history in city for rolling window of days.
// Days without snapshot have nil value.
type PreparedPosition struct {
	KeywordID int
	City      string
	Positions map[string]*PositionPoint
}

// PriceChange is notification about changed item price.
type PriceChange struct {
	UserID int
	ChatID int64
	Item   Item
	Old    Price
	New    Price
}

// SearchPage is single page of marketplace search results.
type SearchPage struct {
	// VendorCodes are organic results in page order.
	VendorCodes []int
	// Promoted maps vendor code to absolute catalog position of its ad placement.
	Promoted map[int]int
	// Original is set when marketplace replaced the query with different one.
	Original bool
}
