// Package prepared builds per-day views of price and position history for rolling window of days.
package prepared

import (
	"sort"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/position"
	"github.com/samber/lo"
)

// DateLayout is layout of view keys.
const DateLayout = "2006-01-02"

// Window is trailing range of calendar days in location, oldest first, ending with today.
type Window struct {
	Dates    []string
	Location *time.Location
	start    time.Time
}

// NewWindow returns window of days ending at day of now.
func NewWindow(now time.Time, days int, loc *time.Location) Window {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(days - 1))

	return Window{
		Dates: lo.Times(days, func(ix int) string {
			return start.AddDate(0, 0, ix).Format(DateLayout)
		}),
		Location: loc,
		start:    start,
	}
}

// Start returns beginning of the first day of window.
func (w Window) Start() time.Time {
	return w.start
}

// DateOf returns view key of day t belongs to.
func (w Window) DateOf(t time.Time) string {
	return t.In(w.Location).Format(DateLayout)
}

// BuildPrices builds price views of items. For every day the latest snapshot wins.
// Snapshots outside window or of unknown items are ignored.
func BuildPrices(items []models.Item, snapshots []models.Price, window Window) []models.PreparedPrice {
	views := make(map[int]*dayPicker[models.Price], len(items))
	for _, item := range items {
		views[item.ID] = newDayPicker[models.Price](window)
	}

	for _, snapshot := range snapshots {
		if view, ok := views[snapshot.ItemID]; ok {
			view.add(window.DateOf(snapshot.ParsedAt), snapshot.ParsedAt, snapshot)
		}
	}

	ids := lo.Keys(views)
	sort.Ints(ids)

	return lo.Map(ids, func(id int, _ int) models.PreparedPrice {
		return models.PreparedPrice{
			ItemID: id,
			Prices: mapPoints(views[id], func(p models.Price) *models.PricePoint {
				return &models.PricePoint{
					Price:        p.Price,
					FinalPrice:   p.FinalPrice,
					PersonalSale: p.PersonalSale,
					SoldOut:      p.SoldOut,
				}
			}),
		}
	})
}

// BuildPositions builds position views of every keyword in every city. For every day the latest snapshot wins.
// Snapshots outside window, of unknown keywords or cities are ignored.
func BuildPositions(
	keywords []models.TrackedKeyword,
	cities []string,
	snapshots []models.Position,
	window Window,
) []models.PreparedPosition {
	type key struct {
		keywordID int
		city      string
	}

	views := make(map[key]*dayPicker[models.Position], len(keywords)*len(cities))
	for _, keyword := range keywords {
		for _, city := range cities {
			views[key{keyword.ID, city}] = newDayPicker[models.Position](window)
		}
	}

	for _, snapshot := range snapshots {
		if view, ok := views[key{snapshot.KeywordID, snapshot.City}]; ok {
			view.add(window.DateOf(snapshot.ParsedAt), snapshot.ParsedAt, snapshot)
		}
	}

	keys := lo.Keys(views)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].keywordID != keys[j].keywordID {
			return keys[i].keywordID < keys[j].keywordID
		}
		return keys[i].city < keys[j].city
	})

	return lo.Map(keys, func(k key, _ int) models.PreparedPosition {
		return models.PreparedPosition{
			KeywordID: k.keywordID,
			City:      k.city,
			Positions: mapPoints(views[k], toPositionPoint),
		}
	})
}

func toPositionPoint(p models.Position) *models.PositionPoint {
	point := &models.PositionPoint{
		Page:      p.Page,
		Rank:      p.Rank,
		PromoPage: p.PromoPage,
		PromoRank: p.PromoRank,
	}

	if p.Page != nil && p.Rank != nil {
		point.RealPosition = lo.ToPtr(position.RealPosition(p.PageCapacities, *p.Page, *p.Rank))
	}

	return point
}

type picked[T any] struct {
	at    time.Time
	value T
}

// dayPicker keeps the latest value of every day of window.
type dayPicker[T any] struct {
	days map[string]*picked[T]
}

func newDayPicker[T any](window Window) *dayPicker[T] {
	days := make(map[string]*picked[T], len(window.Dates))
	for _, date := range window.Dates {
		days[date] = nil
	}
	return &dayPicker[T]{days: days}
}

func (d *dayPicker[T]) add(date string, at time.Time, value T) {
	current, ok := d.days[date]
	if !ok {
		return
	}
	if current == nil || at.After(current.at) {
		d.days[date] = &picked[T]{at: at, value: value}
	}
}

func mapPoints[T any, P any](d *dayPicker[T], convert func(T) *P) map[string]*P {
	points := make(map[string]*P, len(d.days))
	for date, day := range d.days {
		if day == nil {
			points[date] = nil
			continue
		}
		points[date] = convert(day.value)
	}
	return points
}
