// Package importer reads tracked items from spreadsheets.
//
// The first sheet is read from the second row on: column A holds vendor code, column B item name
// and every next column one search keyword. The first row with blank vendor code ends the data.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoSheets is returned for spreadsheet without any sheet.
	ErrNoSheets = errors.New("spreadsheet has no sheets")
	// ErrInvalidVendorCode is returned when vendor code cell isn't positive integer.
	ErrInvalidVendorCode = errors.New("invalid vendor code")
)

// Read reads items from spreadsheet.
func Read(r io.Reader) ([]models.ImportedItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("can't open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("can't read sheet %q: %w", sheets[0], err)
	}

	items := []models.ImportedItem{}
	for ix, row := range rows {
		// header
		if ix == 0 {
			continue
		}

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			break
		}

		item, err := readRow(row)
		if err != nil {
			return nil, fmt.Errorf("can't read row %d: %w", ix+1, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func readRow(row []string) (models.ImportedItem, error) {
	code, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil || code <= 0 {
		return models.ImportedItem{}, fmt.Errorf("%w: %q", ErrInvalidVendorCode, row[0])
	}

	item := models.ImportedItem{
		VendorCode: code,
		Keywords:   []string{},
	}

	if len(row) > 1 {
		item.Name = strings.TrimSpace(row[1])
	}

	if len(row) > 2 {
		item.Keywords = lo.Uniq(lo.Compact(lo.Map(row[2:], func(cell string, _ int) string {
			return strings.TrimSpace(cell)
		})))
	}

	return item, nil
}
