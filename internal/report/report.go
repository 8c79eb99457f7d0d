// Package report renders prepared views as text tables and spreadsheets.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// Column is named value extractor of row.
type Column[T any] struct {
	Key   string
	Value func(row T) string
}

// PriceRow is prepared price view of item.
type PriceRow struct {
	Item models.Item
	View models.PreparedPrice
}

// PositionRow is prepared position view of keyword.
type PositionRow struct {
	Keyword models.TrackedKeyword
	View    models.PreparedPosition
}

const empty = "-"

// PriceRows joins views with their items. Views of unknown items are skipped.
func PriceRows(items []models.Item, views []models.PreparedPrice) []PriceRow {
	byID := lo.KeyBy(items, func(item models.Item) int { return item.ID })

	return lo.FilterMap(views, func(view models.PreparedPrice, _ int) (PriceRow, bool) {
		item, ok := byID[view.ItemID]
		return PriceRow{Item: item, View: view}, ok
	})
}

// PositionRows joins views with their keywords. Views of unknown keywords are skipped.
func PositionRows(keywords []models.TrackedKeyword, views []models.PreparedPosition) []PositionRow {
	byID := lo.KeyBy(keywords, func(keyword models.TrackedKeyword) int { return keyword.ID })

	return lo.FilterMap(views, func(view models.PreparedPosition, _ int) (PositionRow, bool) {
		keyword, ok := byID[view.KeywordID]
		return PositionRow{Keyword: keyword, View: view}, ok
	})
}

// Dates returns sorted union of view dates.
func Dates[P any](views ...map[string]*P) []string {
	dates := lo.Uniq(lo.Flatten(lo.Map(views, func(view map[string]*P, _ int) []string {
		return lo.Keys(view)
	})))
	sort.Strings(dates)

	return dates
}

// PriceColumns returns columns of price report with one column per date.
func PriceColumns(dates []string) []Column[PriceRow] {
	columns := []Column[PriceRow]{
		{Key: "vendor code", Value: func(row PriceRow) string { return strconv.Itoa(row.Item.VendorCode) }},
		{Key: "name", Value: func(row PriceRow) string { return row.Item.Name }},
	}

	for _, date := range dates {
		columns = append(columns, Column[PriceRow]{
			Key:   date,
			Value: func(row PriceRow) string { return formatPrice(row.View.Prices[date]) },
		})
	}

	return columns
}

// PositionColumns returns columns of position report with one column per date.
func PositionColumns(dates []string) []Column[PositionRow] {
	columns := []Column[PositionRow]{
		{Key: "vendor code", Value: func(row PositionRow) string { return strconv.Itoa(row.Keyword.VendorCode) }},
		{Key: "keyword", Value: func(row PositionRow) string { return row.Keyword.Value }},
		{Key: "city", Value: func(row PositionRow) string { return row.View.City }},
	}

	for _, date := range dates {
		columns = append(columns, Column[PositionRow]{
			Key:   date,
			Value: func(row PositionRow) string { return formatPosition(row.View.Positions[date]) },
		})
	}

	return columns
}

// RenderText writes rows as text table.
func RenderText[T any](w io.Writer, columns []Column[T], rows []T) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)

	header := table.Row{}
	for _, column := range columns {
		header = append(header, column.Key)
	}
	t.AppendHeader(header)

	for _, row := range rows {
		values := table.Row{}
		for _, column := range columns {
			values = append(values, column.Value(row))
		}
		t.AppendRow(values)
	}

	t.Render()
}

// RenderXLSX writes rows as single sheet spreadsheet.
func RenderXLSX[T any](w io.Writer, sheet string, columns []Column[T], rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("can't name sheet: %w", err)
	}

	header := lo.Map(columns, func(column Column[T], _ int) any { return column.Key })
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("can't write header: %w", err)
	}

	for ix, row := range rows {
		values := lo.Map(columns, func(column Column[T], _ int) any { return column.Value(row) })

		cell, err := excelize.CoordinatesToCellName(1, ix+2)
		if err != nil {
			return fmt.Errorf("can't get cell name: %w", err)
		}

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("can't write row %d: %w", ix+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("can't write spreadsheet: %w", err)
	}

	return nil
}

func formatPrice(point *models.PricePoint) string {
	switch {
	case point == nil:
		return empty
	case point.SoldOut:
		return "sold out"
	case point.FinalPrice == nil:
		return empty
	case point.PersonalSale != nil:
		return fmt.Sprintf("%d (-%d%%)", *point.FinalPrice, *point.PersonalSale)
	default:
		return strconv.Itoa(*point.FinalPrice)
	}
}

func formatPosition(point *models.PositionPoint) string {
	switch {
	case point == nil:
		return empty
	case point.Page == nil || point.Rank == nil:
		return "not found"
	case point.RealPosition != nil:
		return fmt.Sprintf("%d/%d (%d)", *point.Page, *point.Rank, *point.RealPosition)
	default:
		return fmt.Sprintf("%d/%d", *point.Page, *point.Rank)
	}
}
