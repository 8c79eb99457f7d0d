package importer_test

import (
	"bytes"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/importer"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestUnitRead(t *testing.T) {
	tests := map[string]struct {
		rows    [][]any
		want    []models.ImportedItem
		wantErr error
	}{
		"items with keywords": {
			rows: [][]any{
				{"vendor code", "name", "keywords"},
				{146972802, "Sweatshirt", "sweatshirt", " hoodie ", "", "sweatshirt"},
				{"15548200", "Mug"},
			},
			want: []models.ImportedItem{
				{VendorCode: 146972802, Name: "Sweatshirt", Keywords: []string{"sweatshirt", "hoodie"}},
				{VendorCode: 15548200, Name: "Mug", Keywords: []string{}},
			},
		},
		"blank vendor code ends data": {
			rows: [][]any{
				{"vendor code", "name"},
				{101, "First", "first"},
				{nil, "ignored"},
				{102, "Second", "second"},
			},
			want: []models.ImportedItem{
				{VendorCode: 101, Name: "First", Keywords: []string{"first"}},
			},
		},
		"header only": {
			rows: [][]any{{"vendor code", "name"}},
			want: []models.ImportedItem{},
		},
		"invalid vendor code": {
			rows: [][]any{
				{"vendor code", "name"},
				{"abc", "Broken"},
			},
			wantErr: importer.ErrInvalidVendorCode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items, err := importer.Read(spreadsheet(t, tt.rows))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return expected error")
				return
			}
			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, items, "should return items")
		})
	}
}

func TestUnitReadNotSpreadsheet(t *testing.T) {
	_, err := importer.Read(bytes.NewBufferString("vendor code;name"))

	require.ErrorContains(t, err, "can't open spreadsheet", "should return error about invalid file")
}

func spreadsheet(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for ix, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, ix+1)
		require.NoError(t, err, "can't get cell name")
		require.NoError(t, f.SetSheetRow(sheet, cell, &row), "can't write row")
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err, "can't write spreadsheet")

	return buf
}
