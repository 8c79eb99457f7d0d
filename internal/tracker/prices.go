package tracker

import (
	"context"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/differ"
	"github.com/MichalMitros/marketplace-tracker/internal/marketplace"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/pricing"
	"github.com/samber/lo"
)

// PriceParser takes price snapshots of tracked items and notifies users about changes.
type PriceParser struct {
	settings
	fetcher    PriceFetcher
	storage    Storage
	dispatcher Dispatcher
	dest       string
	batchSize  uint
}

// NewPriceParser returns new PriceParser.
func NewPriceParser(
	fetcher PriceFetcher,
	storage Storage,
	dispatcher Dispatcher,
	dest string,
	batchSize uint,
	ops ...Option,
) *PriceParser {
	return &PriceParser{
		settings:   newSettings(ops),
		fetcher:    fetcher,
		storage:    storage,
		dispatcher: dispatcher,
		dest:       dest,
		batchSize:  batchSize,
	}
}

type sellerKey struct {
	userID     int
	vendorCode int
}

// Parse takes price snapshot of every tracked item.
func (p *PriceParser) Parse(ctx context.Context) error {
	parsing, err := p.storage.StartParsing(ctx, models.ParsingTypePrice)
	if err != nil {
		return fmt.Errorf("can't start parsing: %w", err)
	}

	parsed, failed, err := p.parse(ctx, parsing)

	return p.finishParsing(ctx, p.storage, parsing, parsed, failed, err)
}

func (p *PriceParser) parse(ctx context.Context, parsing *models.Parsing) (int, int, error) {
	items, err := p.storage.GetItems(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("can't get items: %w", err)
	}

	users, err := p.storage.GetUsers(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("can't get users: %w", err)
	}

	sellerItems, err := p.storage.GetSellerItems(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("can't get seller items: %w", err)
	}

	sellerIndex := lo.KeyBy(sellerItems, func(item models.SellerItem) sellerKey {
		return sellerKey{userID: item.UserID, vendorCode: item.VendorCode}
	})

	codes := lo.Uniq(lo.Map(items, func(item models.Item, _ int) int { return item.VendorCode }))
	products, failures := p.fetcher.FetchPrices(ctx, codes, p.dest)
	if err := ctx.Err(); err != nil {
		return 0, len(items), fmt.Errorf("can't fetch prices: %w", err)
	}

	categories := map[string]*models.Category{}
	prices := make([]models.Price, 0, len(items))
	parsedItems := make([]models.Item, 0, len(items))
	failed := 0

	for _, item := range items {
		product, ok := products[item.VendorCode]
		if !ok {
			failed++
			p.logger.Warn().
				Err(lo.ValueOr(failures, item.VendorCode, marketplace.ErrProductNotFound)).
				Int("vendorCode", item.VendorCode).
				Msg("can't fetch product")
			continue
		}

		category, err := p.category(ctx, product.VendorCode, categories)
		if err != nil {
			return 0, failed, err
		}

		item.NameSite = product.NameSite
		if category != nil {
			item.Category = category
			item.CategoryID = lo.ToPtr(category.ID)
		}

		var seller *models.SellerItem
		if sellerItem, ok := sellerIndex[sellerKey{userID: item.UserID, vendorCode: item.VendorCode}]; ok {
			seller = &sellerItem
		}

		parsedItems = append(parsedItems, item)
		prices = append(prices, p.snapshot(parsing, item, product, seller))
	}

	for _, batch := range lo.Chunk(prices, int(p.batchSize)) {
		if err := p.storage.InsertPrices(ctx, batch); err != nil {
			return 0, failed, fmt.Errorf("can't insert prices: %w", err)
		}
	}

	if err := p.storage.UpdateItems(ctx, parsedItems); err != nil {
		return len(prices), failed, fmt.Errorf("can't update items: %w", err)
	}

	if err := p.notify(ctx, parsing, parsedItems, prices, users); err != nil {
		return len(prices), failed, err
	}

	return len(prices), failed, nil
}

// category resolves category of product once per name.
func (p *PriceParser) category(
	ctx context.Context,
	code int,
	categories map[string]*models.Category,
) (*models.Category, error) {
	name := p.fetcher.ResolveCategory(ctx, code)
	if name == "" {
		return nil, nil
	}

	if category, ok := categories[name]; ok {
		return category, nil
	}

	category, err := p.storage.GetOrCreateCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("can't get category %q: %w", name, err)
	}
	categories[name] = category

	return category, nil
}

func (p *PriceParser) snapshot(
	parsing *models.Parsing,
	item models.Item,
	product models.ProductInfo,
	seller *models.SellerItem,
) models.Price {
	price := models.Price{
		ItemID:     item.ID,
		ParsingID:  parsing.ID,
		ParsedAt:   *p.clock.Now(),
		Reviews:    product.Reviews,
		FinalPrice: product.FinalPrice,
		SoldOut:    product.SoldOut,
	}

	if product.SoldOut || product.FinalPrice == nil {
		return price
	}

	result := pricing.Reconcile(*product.FinalPrice, seller, item.Category)
	price.Price = result.Price
	price.PersonalSale = result.PersonalSale

	return price
}

func (p *PriceParser) notify(
	ctx context.Context,
	parsing *models.Parsing,
	items []models.Item,
	prices []models.Price,
	users []models.User,
) error {
	if len(prices) == 0 {
		return nil
	}

	previous, err := p.storage.GetPreviousPrices(ctx, parsing, lo.Map(prices, func(price models.Price, _ int) int {
		return price.ItemID
	}))
	if err != nil {
		return fmt.Errorf("can't get previous prices: %w", err)
	}

	chats := lo.SliceToMap(users, func(user models.User) (int, int64) { return user.ID, user.ChatID })

	changes := []models.PriceChange{}
	for ix, price := range prices {
		prev, ok := previous[price.ItemID]
		if !ok || !differ.Diff(&prev, price) {
			continue
		}

		changes = append(changes, models.PriceChange{
			UserID: items[ix].UserID,
			ChatID: chats[items[ix].UserID],
			Item:   items[ix],
			Old:    prev,
			New:    price,
		})
	}

	if len(changes) == 0 {
		return nil
	}

	failures := p.dispatcher.Dispatch(ctx, changes)
	for itemID, err := range failures {
		p.logger.Warn().Err(err).Int("itemID", itemID).Msg("can't send price change notification")
	}
	p.observer.ObserveNotifications(len(changes)-len(failures), len(failures))

	return nil
}
