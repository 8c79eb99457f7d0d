package tracker

import (
	"context"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/position"
	"github.com/samber/lo"
)

// City is search region. Dest is marketplace destination of the region.
type City struct {
	Name string
	Dest string
}

// PositionParser takes search position snapshots of tracked keywords in every city.
type PositionParser struct {
	settings
	finder    PositionFinder
	storage   Storage
	cities    []City
	batchSize uint
}

// NewPositionParser returns new PositionParser.
func NewPositionParser(
	finder PositionFinder,
	storage Storage,
	cities []City,
	batchSize uint,
	ops ...Option,
) *PositionParser {
	return &PositionParser{
		settings:  newSettings(ops),
		finder:    finder,
		storage:   storage,
		cities:    cities,
		batchSize: batchSize,
	}
}

// Parse takes position snapshot of every tracked keyword.
func (p *PositionParser) Parse(ctx context.Context) error {
	parsing, err := p.storage.StartParsing(ctx, models.ParsingTypePosition)
	if err != nil {
		return fmt.Errorf("can't start parsing: %w", err)
	}

	parsed, failed, err := p.parse(ctx, parsing)

	return p.finishParsing(ctx, p.storage, parsing, parsed, failed, err)
}

func (p *PositionParser) parse(ctx context.Context, parsing *models.Parsing) (int, int, error) {
	keywords, err := p.storage.GetKeywords(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("can't get keywords: %w", err)
	}

	latest, err := p.storage.GetLatestPrices(ctx, lo.Uniq(lo.Map(keywords, func(kw models.TrackedKeyword, _ int) int {
		return kw.ItemID
	})))
	if err != nil {
		return 0, 0, fmt.Errorf("can't get latest prices: %w", err)
	}

	batch := make([]models.Position, 0, p.batchSize)
	parsed, failed := 0, 0

	for _, keyword := range keywords {
		soldOut := latest[keyword.ItemID].SoldOut

		for _, city := range p.cities {
			pos := models.Position{
				KeywordID:      keyword.ID,
				ParsingID:      parsing.ID,
				ParsedAt:       *p.clock.Now(),
				City:           city.Name,
				PageCapacities: []int{},
			}

			if !soldOut {
				result, err := p.finder.Find(ctx, keyword.VendorCode, keyword.Value, city.Dest)
				if err != nil {
					return parsed, failed, fmt.Errorf(
						"can't find position of %d for %q in %s: %w",
						keyword.VendorCode, keyword.Value, city.Name, err,
					)
				}

				if result.State == position.StateError {
					failed++
					p.logger.Warn().
						Int("vendorCode", keyword.VendorCode).
						Str("keyword", keyword.Value).
						Str("city", city.Name).
						Msg("search attempts exceeded")
				}

				pos.PageCapacities = result.PageCapacities
				pos.Page = result.Page
				pos.Rank = result.Rank
				pos.PromoPage = result.PromoPage
				pos.PromoRank = result.PromoRank
			}

			batch = append(batch, pos)
			if uint(len(batch)) >= p.batchSize {
				if err := p.storage.InsertPositions(ctx, batch); err != nil {
					return parsed, failed, fmt.Errorf("can't insert positions: %w", err)
				}
				parsed += len(batch)
				batch = make([]models.Position, 0, p.batchSize)
			}
		}
	}

	if len(batch) > 0 {
		if err := p.storage.InsertPositions(ctx, batch); err != nil {
			return parsed, failed, fmt.Errorf("can't insert positions: %w", err)
		}
		parsed += len(batch)
	}

	return parsed, failed, nil
}
