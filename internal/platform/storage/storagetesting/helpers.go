package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	pgmodels "github.com/MichalMitros/marketplace-tracker/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertUsers is a helper test function to insert users.
func InsertUsers(t *testing.T, exc qrm.Executable, users ...pgmodels.TrackerUser) {
	t.Helper()

	if len(users) == 0 {
		return
	}

	_, err := table.TrackerUser.INSERT(table.TrackerUser.AllColumns).MODELS(users).Exec(exc)
	if err != nil {
		t.Fatal("can't insert users", err)
	}
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Category) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.Category.INSERT(table.Category.AllColumns).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// InsertItems is a helper test function to insert items.
func InsertItems(t *testing.T, exc qrm.Executable, items ...pgmodels.Item) {
	t.Helper()

	if len(items) == 0 {
		return
	}

	_, err := table.Item.INSERT(table.Item.AllColumns).MODELS(items).Exec(exc)
	if err != nil {
		t.Fatal("can't insert items", err)
	}
}

// InsertKeywords is a helper test function to insert keywords.
func InsertKeywords(t *testing.T, exc qrm.Executable, keywords ...pgmodels.Keyword) {
	t.Helper()

	if len(keywords) == 0 {
		return
	}

	_, err := table.Keyword.INSERT(table.Keyword.AllColumns).MODELS(keywords).Exec(exc)
	if err != nil {
		t.Fatal("can't insert keywords", err)
	}
}

// InsertParsings is a helper test function to insert parsings.
func InsertParsings(t *testing.T, exc qrm.Executable, parsings ...pgmodels.Parsing) {
	t.Helper()

	if len(parsings) == 0 {
		return
	}

	_, err := table.Parsing.INSERT(table.Parsing.AllColumns).MODELS(parsings).Exec(exc)
	if err != nil {
		t.Fatal("can't insert parsings", err)
	}
}

// InsertPrices is a helper test function to insert prices.
func InsertPrices(t *testing.T, exc qrm.Executable, prices ...pgmodels.Price) {
	t.Helper()

	if len(prices) == 0 {
		return
	}

	_, err := table.Price.INSERT(table.Price.AllColumns).MODELS(prices).Exec(exc)
	if err != nil {
		t.Fatal("can't insert prices", err)
	}
}

// InsertSellerItems is a helper test function to insert seller items.
func InsertSellerItems(t *testing.T, exc qrm.Executable, items ...pgmodels.SellerItem) {
	t.Helper()

	if len(items) == 0 {
		return
	}

	_, err := table.SellerItem.INSERT(table.SellerItem.MutableColumns).MODELS(items).Exec(exc)
	if err != nil {
		t.Fatal("can't insert seller items", err)
	}
}

// GetParsings is a helper test function to get all parsings.
func GetParsings(t *testing.T, queryable qrm.Queryable) []pgmodels.Parsing {
	t.Helper()

	parsings := []pgmodels.Parsing{}
	err := table.Parsing.SELECT(table.Parsing.AllColumns).
		WHERE(table.Parsing.ID.IS_NOT_NULL()).
		Query(queryable, &parsings)
	if err != nil {
		t.Fatal("can't get parsings", err)
	}

	return parsings
}

// GetLatestParsing is a helper test function to get latest parsing of provided type.
func GetLatestParsing(t *testing.T, queryable qrm.Queryable, parsingType models.ParsingType) *models.Parsing {
	t.Helper()

	var parsings []pgmodels.Parsing
	err := table.Parsing.SELECT(table.Parsing.AllColumns).
		WHERE(table.Parsing.Type.EQ(pg.String(string(parsingType)))).
		ORDER_BY(table.Parsing.CreatedAt.DESC()).
		LIMIT(1).
		Query(queryable, &parsings)

	if err != nil || len(parsings) == 0 {
		t.Fatal("can't get latest parsing", err)
	}

	return &models.Parsing{
		ID:            int(parsings[0].ID),
		Type:          models.ParsingType(parsings[0].Type),
		CreatedAt:     parsings[0].CreatedAt,
		FinishedAt:    parsings[0].FinishedAt,
		IsSuccess:     parsings[0].IsSuccess,
		StatusMessage: parsings[0].StatusMessage,
		ParsedItems:   parsings[0].ParsedItems,
		FailedItems:   parsings[0].FailedItems,
	}
}

// GetItems is a helper test function to get all items.
func GetItems(t *testing.T, queryable qrm.Queryable) []pgmodels.Item {
	t.Helper()

	items := []pgmodels.Item{}
	err := table.Item.SELECT(table.Item.AllColumns).
		WHERE(table.Item.ID.IS_NOT_NULL()).
		ORDER_BY(table.Item.VendorCode.ASC()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get items", err)
	}

	return items
}

// GetKeywords is a helper test function to get all keywords.
func GetKeywords(t *testing.T, queryable qrm.Queryable) []pgmodels.Keyword {
	t.Helper()

	keywords := []pgmodels.Keyword{}
	err := table.Keyword.SELECT(table.Keyword.AllColumns).
		WHERE(table.Keyword.ID.IS_NOT_NULL()).
		ORDER_BY(table.Keyword.ItemID.ASC(), table.Keyword.Value.ASC()).
		Query(queryable, &keywords)
	if err != nil {
		t.Fatal("can't get keywords", err)
	}

	return keywords
}

// GetPricesByItemID is a helper test function to get prices of item.
func GetPricesByItemID(t *testing.T, queryable qrm.Queryable, itemID int) []pgmodels.Price {
	t.Helper()

	prices := []pgmodels.Price{}
	err := table.Price.SELECT(table.Price.AllColumns).
		WHERE(table.Price.ItemID.EQ(pg.Int32(int32(itemID)))).
		ORDER_BY(table.Price.ID.ASC()).
		Query(queryable, &prices)
	if err != nil {
		t.Fatal("can't get prices", err)
	}

	return prices
}

// GetSellerItems is a helper test function to get all seller items.
func GetSellerItems(t *testing.T, queryable qrm.Queryable) []pgmodels.SellerItem {
	t.Helper()

	items := []pgmodels.SellerItem{}
	err := table.SellerItem.SELECT(table.SellerItem.AllColumns).
		WHERE(table.SellerItem.ID.IS_NOT_NULL()).
		ORDER_BY(table.SellerItem.UserID.ASC(), table.SellerItem.VendorCode.ASC()).
		Query(queryable, &items)
	if err != nil {
		t.Fatal("can't get seller items", err)
	}

	return items
}

// GetUsers is a helper test function to get all users.
func GetUsers(t *testing.T, queryable qrm.Queryable) []pgmodels.TrackerUser {
	t.Helper()

	users := []pgmodels.TrackerUser{}
	err := table.TrackerUser.SELECT(table.TrackerUser.AllColumns).
		WHERE(table.TrackerUser.ID.IS_NOT_NULL()).
		ORDER_BY(table.TrackerUser.ID.ASC()).
		Query(queryable, &users)
	if err != nil {
		t.Fatal("can't get users", err)
	}

	return users
}

// CleanupData is a helper test function to delete data from all tables.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	// order matters because of foreign keys
	statements := []struct {
		name string
		stmt pg.Statement
	}{
		{"prepared positions", table.PreparedPosition.DELETE().WHERE(table.PreparedPosition.ID.IS_NOT_NULL())},
		{"prepared prices", table.PreparedPrice.DELETE().WHERE(table.PreparedPrice.ItemID.IS_NOT_NULL())},
		{"positions", table.SearchPosition.DELETE().WHERE(table.SearchPosition.ID.IS_NOT_NULL())},
		{"prices", table.Price.DELETE().WHERE(table.Price.ID.IS_NOT_NULL())},
		{"parsings", table.Parsing.DELETE().WHERE(table.Parsing.ID.IS_NOT_NULL())},
		{"seller items", table.SellerItem.DELETE().WHERE(table.SellerItem.ID.IS_NOT_NULL())},
		{"keywords", table.Keyword.DELETE().WHERE(table.Keyword.ID.IS_NOT_NULL())},
		{"items", table.Item.DELETE().WHERE(table.Item.ID.IS_NOT_NULL())},
		{"categories", table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL())},
		{"users", table.TrackerUser.DELETE().WHERE(table.TrackerUser.ID.IS_NOT_NULL())},
	}

	for _, statement := range statements {
		if _, err := statement.stmt.Exec(exc); err != nil {
			t.Fatalf("can't delete %s data: %s", statement.name, err)
		}
	}
}
