package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/platform"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/marketplace-tracker/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for users, items, parsings, snapshots and prepared views.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartParsing creates new unfinished parsing of provided type and returns it.
// It returns ErrAlreadyRunning if previous parsing of the same type is not finished yet.
func (p Postgres) StartParsing(ctx context.Context, parsingType models.ParsingType) (*models.Parsing, error) {
	var parsing *models.Parsing

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastParsing, err := getLastParsing(ctx, tx, parsingType)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last parsing from database: %w", err)
		}

		if lastParsing != nil && lastParsing.FinishedAt == nil && lastParsing.IsSuccess == nil {
			return platform.ErrAlreadyRunning
		}

		newParsing := pgmodels.Parsing{Type: string(parsingType)}
		err = table.Parsing.INSERT(table.Parsing.Type).
			MODEL(newParsing).
			RETURNING(table.Parsing.AllColumns).
			QueryContext(ctx, tx, &newParsing)
		if err != nil {
			return fmt.Errorf("can't insert parsing into database: %w", err)
		}

		parsing = toParsing(&newParsing)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add parsing: %w", err)
	}

	return parsing, nil
}

// FinishParsing sets parsing as finished and updates its statistics.
func (p Postgres) FinishParsing(ctx context.Context, parsing *models.Parsing) error {
	columnList := table.Parsing.AllColumns.Except(table.Parsing.ID, table.Parsing.Type, table.Parsing.CreatedAt)

	result, err := table.Parsing.UPDATE(columnList).
		MODEL(toDBParsing(parsing)).
		WHERE(table.Parsing.ID.EQ(pg.Int32(int32(parsing.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update parsing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't get number of updated parsings: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't update parsing: parsing %d not found", parsing.ID)
	}

	return nil
}

// UpsertUser creates user with provided chat id or updates seller token of existing one.
// Nil token keeps token of existing user.
func (p Postgres) UpsertUser(ctx context.Context, chatID int64, sellerToken *string) (models.User, error) {
	var user pgmodels.TrackerUser

	err := table.TrackerUser.INSERT(table.TrackerUser.ChatID, table.TrackerUser.SellerToken).
		MODEL(pgmodels.TrackerUser{ChatID: chatID, SellerToken: sellerToken}).
		ON_CONFLICT(table.TrackerUser.ChatID).
		DO_UPDATE(pg.SET(
			table.TrackerUser.SellerToken.SET(pg.StringExp(
				pg.COALESCE(table.TrackerUser.EXCLUDED.SellerToken, table.TrackerUser.SellerToken),
			)),
		)).
		RETURNING(table.TrackerUser.AllColumns).
		QueryContext(ctx, p.db, &user)
	if err != nil {
		return models.User{}, fmt.Errorf("can't upsert user: %w", err)
	}

	return toUser(user), nil
}

// GetUsers returns all users.
func (p Postgres) GetUsers(ctx context.Context) ([]models.User, error) {
	users := []pgmodels.TrackerUser{}

	err := table.TrackerUser.SELECT(table.TrackerUser.AllColumns).
		ORDER_BY(table.TrackerUser.ID.ASC()).
		QueryContext(ctx, p.db, &users)
	if err != nil {
		return nil, fmt.Errorf("can't get users: %w", err)
	}

	return lo.Map(users, func(user pgmodels.TrackerUser, _ int) models.User {
		return toUser(user)
	}), nil
}

// ClearSellerTokens removes seller tokens of provided users.
func (p Postgres) ClearSellerTokens(ctx context.Context, userIDs []int) error {
	if len(userIDs) == 0 {
		return nil
	}

	_, err := table.TrackerUser.UPDATE(table.TrackerUser.SellerToken).
		MODEL(pgmodels.TrackerUser{}).
		WHERE(table.TrackerUser.ID.IN(int32Expressions(userIDs)...)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't clear seller tokens: %w", err)
	}

	return nil
}

// GetItems returns all tracked items with their categories.
func (p Postgres) GetItems(ctx context.Context) ([]models.Item, error) {
	rows := []struct {
		pgmodels.Item
		Category *pgmodels.Category
	}{}

	err := pg.SELECT(table.Item.AllColumns, table.Category.AllColumns).
		FROM(table.Item.LEFT_JOIN(table.Category, table.Category.ID.EQ(table.Item.CategoryID))).
		ORDER_BY(table.Item.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get items: %w", err)
	}

	items := make([]models.Item, 0, len(rows))
	for ix := range rows {
		items = append(items, toItem(rows[ix].Item, rows[ix].Category))
	}

	return items, nil
}

// UpdateItems updates site names and categories of provided items.
func (p Postgres) UpdateItems(ctx context.Context, items []models.Item) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for ix := range items {
			_, err := table.Item.UPDATE(table.Item.NameSite, table.Item.CategoryID).
				MODEL(pgmodels.Item{
					NameSite:   items[ix].NameSite,
					CategoryID: toInt32Ptr(items[ix].CategoryID),
				}).
				WHERE(table.Item.ID.EQ(pg.Int32(int32(items[ix].ID)))).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't update item %d: %w", items[ix].ID, err)
			}
		}

		return nil
	})
}

// ImportItems upserts user items by vendor code and replaces their keywords.
// It returns number of imported items.
func (p Postgres) ImportItems(ctx context.Context, userID int, items []models.ImportedItem) (int, error) {
	items = lo.UniqBy(items, func(item models.ImportedItem) int { return item.VendorCode })
	if len(items) == 0 {
		return 0, nil
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		dbItems := lo.Map(items, func(item models.ImportedItem, _ int) pgmodels.Item {
			return pgmodels.Item{
				UserID:     int32(userID),
				VendorCode: int32(item.VendorCode),
				Name:       item.Name,
			}
		})

		upserted := []pgmodels.Item{}
		err := table.Item.INSERT(table.Item.UserID, table.Item.VendorCode, table.Item.Name).
			MODELS(dbItems).
			ON_CONFLICT(table.Item.UserID, table.Item.VendorCode).
			DO_UPDATE(pg.SET(
				table.Item.Name.SET(table.Item.EXCLUDED.Name),
			)).
			RETURNING(table.Item.ID, table.Item.VendorCode).
			QueryContext(ctx, tx, &upserted)
		if err != nil {
			return fmt.Errorf("can't upsert items: %w", err)
		}

		itemIDs := lo.SliceToMap(upserted, func(item pgmodels.Item) (int, int32) {
			return int(item.VendorCode), item.ID
		})

		_, err = table.Keyword.DELETE().
			WHERE(table.Keyword.ItemID.IN(lo.Map(upserted, func(item pgmodels.Item, _ int) pg.Expression {
				return pg.Int32(item.ID)
			})...)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete outdated keywords: %w", err)
		}

		keywords := []pgmodels.Keyword{}
		for _, item := range items {
			for _, value := range lo.Uniq(item.Keywords) {
				keywords = append(keywords, pgmodels.Keyword{
					ItemID: itemIDs[item.VendorCode],
					Value:  value,
				})
			}
		}

		if len(keywords) == 0 {
			return nil
		}

		_, err = table.Keyword.INSERT(table.Keyword.ItemID, table.Keyword.Value).
			MODELS(keywords).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert keywords: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("can't import items: %w", err)
	}

	return len(items), nil
}

// GetOrCreateCategory returns category with provided name, creating it if it doesn't exist.
func (p Postgres) GetOrCreateCategory(ctx context.Context, name string) (*models.Category, error) {
	_, err := table.Category.INSERT(table.Category.Name).
		MODEL(pgmodels.Category{Name: name}).
		ON_CONFLICT(table.Category.Name).
		DO_NOTHING().
		ExecContext(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("can't add category: %w", err)
	}

	var category pgmodels.Category
	err = table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.Name.EQ(pg.String(name))).
		QueryContext(ctx, p.db, &category)
	if err != nil {
		return nil, fmt.Errorf("can't get category: %w", err)
	}

	return toCategory(category), nil
}

// InsertPrices inserts price snapshots.
func (p Postgres) InsertPrices(ctx context.Context, prices []models.Price) error {
	if len(prices) == 0 {
		return nil
	}

	_, err := table.Price.INSERT(table.Price.MutableColumns).
		MODELS(lo.Map(prices, func(price models.Price, _ int) pgmodels.Price {
			return ToDBPrice(price)
		})).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert prices: %w", err)
	}

	return nil
}

// GetPreviousPrices returns the latest price snapshot of every provided item taken by parsing created before provided one.
// Items without such snapshot are missing from result.
func (p Postgres) GetPreviousPrices(
	ctx context.Context,
	parsing *models.Parsing,
	itemIDs []int,
) (map[int]models.Price, error) {
	if len(itemIDs) == 0 {
		return map[int]models.Price{}, nil
	}

	rows := []struct {
		pgmodels.Price
		Parsing pgmodels.Parsing
	}{}

	err := pg.SELECT(table.Price.AllColumns, table.Parsing.ID, table.Parsing.CreatedAt).
		DISTINCT(table.Price.ItemID).
		FROM(table.Price.INNER_JOIN(table.Parsing, table.Parsing.ID.EQ(table.Price.ParsingID))).
		WHERE(pg.AND(
			table.Price.ItemID.IN(int32Expressions(itemIDs)...),
			table.Parsing.ID.NOT_EQ(pg.Int32(int32(parsing.ID))),
			table.Parsing.CreatedAt.LT(pg.TimestampzT(parsing.CreatedAt)),
		)).
		ORDER_BY(table.Price.ItemID.ASC(), table.Parsing.CreatedAt.DESC(), table.Price.ID.DESC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get previous prices: %w", err)
	}

	prices := make(map[int]models.Price, len(rows))
	for ix := range rows {
		prices[int(rows[ix].ItemID)] = toPrice(rows[ix].Price)
	}

	return prices, nil
}

// GetLatestPrices returns the latest price snapshot of every provided item.
// Items without any snapshot are missing from result.
func (p Postgres) GetLatestPrices(ctx context.Context, itemIDs []int) (map[int]models.Price, error) {
	if len(itemIDs) == 0 {
		return map[int]models.Price{}, nil
	}

	rows := []pgmodels.Price{}
	err := table.Price.SELECT(table.Price.AllColumns).
		DISTINCT(table.Price.ItemID).
		WHERE(table.Price.ItemID.IN(int32Expressions(itemIDs)...)).
		ORDER_BY(table.Price.ItemID.ASC(), table.Price.ParsedAt.DESC(), table.Price.ID.DESC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get latest prices: %w", err)
	}

	prices := make(map[int]models.Price, len(rows))
	for ix := range rows {
		prices[int(rows[ix].ItemID)] = toPrice(rows[ix])
	}

	return prices, nil
}

// GetPricesSince returns price snapshots parsed at or after since.
func (p Postgres) GetPricesSince(ctx context.Context, since time.Time) ([]models.Price, error) {
	rows := []pgmodels.Price{}
	err := table.Price.SELECT(table.Price.AllColumns).
		WHERE(table.Price.ParsedAt.GT_EQ(pg.TimestampzT(since))).
		ORDER_BY(table.Price.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get prices: %w", err)
	}

	return lo.Map(rows, func(price pgmodels.Price, _ int) models.Price {
		return toPrice(price)
	}), nil
}

// GetSellerItems returns seller items of all users.
func (p Postgres) GetSellerItems(ctx context.Context) ([]models.SellerItem, error) {
	rows := []pgmodels.SellerItem{}
	err := table.SellerItem.SELECT(table.SellerItem.AllColumns).
		ORDER_BY(table.SellerItem.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get seller items: %w", err)
	}

	return lo.Map(rows, func(item pgmodels.SellerItem, _ int) models.SellerItem {
		return toSellerItem(item)
	}), nil
}

// ReplaceSellerItems replaces all seller items of user with provided ones.
func (p Postgres) ReplaceSellerItems(ctx context.Context, userID int, items []models.SellerItem) error {
	items = lo.UniqBy(items, func(item models.SellerItem) int { return item.VendorCode })

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.SellerItem.DELETE().
			WHERE(table.SellerItem.UserID.EQ(pg.Int32(int32(userID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete seller items: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		_, err = table.SellerItem.INSERT(table.SellerItem.MutableColumns).
			MODELS(lo.Map(items, func(item models.SellerItem, _ int) pgmodels.SellerItem {
				item.UserID = userID
				return ToDBSellerItem(item)
			})).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert seller items: %w", err)
		}

		return nil
	})
}

// GetKeywords returns all keywords joined with their items.
func (p Postgres) GetKeywords(ctx context.Context) ([]models.TrackedKeyword, error) {
	rows := []struct {
		pgmodels.Keyword
		Item pgmodels.Item
	}{}

	err := pg.SELECT(table.Keyword.AllColumns, table.Item.ID, table.Item.UserID, table.Item.VendorCode).
		FROM(table.Keyword.INNER_JOIN(table.Item, table.Item.ID.EQ(table.Keyword.ItemID))).
		ORDER_BY(table.Keyword.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get keywords: %w", err)
	}

	keywords := make([]models.TrackedKeyword, 0, len(rows))
	for ix := range rows {
		keywords = append(keywords, models.TrackedKeyword{
			Keyword: models.Keyword{
				ID:     int(rows[ix].Keyword.ID),
				ItemID: int(rows[ix].Keyword.ItemID),
				Value:  rows[ix].Keyword.Value,
			},
			VendorCode: int(rows[ix].Item.VendorCode),
			UserID:     int(rows[ix].Item.UserID),
		})
	}

	return keywords, nil
}

// InsertPositions inserts position snapshots.
func (p Postgres) InsertPositions(ctx context.Context, positions []models.Position) error {
	if len(positions) == 0 {
		return nil
	}

	_, err := table.SearchPosition.INSERT(table.SearchPosition.MutableColumns).
		MODELS(lo.Map(positions, func(position models.Position, _ int) pgmodels.SearchPosition {
			return ToDBPosition(position)
		})).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert positions: %w", err)
	}

	return nil
}

// GetPositionsSince returns position snapshots parsed at or after since.
func (p Postgres) GetPositionsSince(ctx context.Context, since time.Time) ([]models.Position, error) {
	rows := []pgmodels.SearchPosition{}
	err := table.SearchPosition.SELECT(table.SearchPosition.AllColumns).
		WHERE(table.SearchPosition.ParsedAt.GT_EQ(pg.TimestampzT(since))).
		ORDER_BY(table.SearchPosition.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get positions: %w", err)
	}

	positions := make([]models.Position, 0, len(rows))
	for ix := range rows {
		position, err := toPosition(rows[ix])
		if err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return positions, nil
}

// ReplacePreparedPrices deletes all prepared price views and inserts provided ones.
func (p Postgres) ReplacePreparedPrices(ctx context.Context, prices []models.PreparedPrice) error {
	rows := make([]pgmodels.PreparedPrice, 0, len(prices))
	for _, price := range prices {
		row, err := toDBPreparedPrice(price)
		if err != nil {
			return fmt.Errorf("can't encode prepared price of item %d: %w", price.ItemID, err)
		}
		rows = append(rows, row)
	}

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.PreparedPrice.DELETE().
			WHERE(table.PreparedPrice.ItemID.IS_NOT_NULL()).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete prepared prices: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		_, err = table.PreparedPrice.INSERT(table.PreparedPrice.AllColumns).
			MODELS(rows).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert prepared prices: %w", err)
		}

		return nil
	})
}

// ReplacePreparedPositions deletes all prepared position views and inserts provided ones.
func (p Postgres) ReplacePreparedPositions(ctx context.Context, positions []models.PreparedPosition) error {
	rows := make([]pgmodels.PreparedPosition, 0, len(positions))
	for _, position := range positions {
		row, err := toDBPreparedPosition(position)
		if err != nil {
			return fmt.Errorf("can't encode prepared position of keyword %d: %w", position.KeywordID, err)
		}
		rows = append(rows, row)
	}

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.PreparedPosition.DELETE().
			WHERE(table.PreparedPosition.ID.IS_NOT_NULL()).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete prepared positions: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		_, err = table.PreparedPosition.INSERT(table.PreparedPosition.MutableColumns).
			MODELS(rows).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert prepared positions: %w", err)
		}

		return nil
	})
}

// GetPreparedPrices returns all prepared price views.
func (p Postgres) GetPreparedPrices(ctx context.Context) ([]models.PreparedPrice, error) {
	rows := []pgmodels.PreparedPrice{}
	err := table.PreparedPrice.SELECT(table.PreparedPrice.AllColumns).
		ORDER_BY(table.PreparedPrice.ItemID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get prepared prices: %w", err)
	}

	prices := make([]models.PreparedPrice, 0, len(rows))
	for ix := range rows {
		price, err := toPreparedPrice(rows[ix])
		if err != nil {
			return nil, fmt.Errorf("can't decode prepared price of item %d: %w", rows[ix].ItemID, err)
		}
		prices = append(prices, price)
	}

	return prices, nil
}

// GetPreparedPositions returns all prepared position views.
func (p Postgres) GetPreparedPositions(ctx context.Context) ([]models.PreparedPosition, error) {
	rows := []pgmodels.PreparedPosition{}
	err := table.PreparedPosition.SELECT(table.PreparedPosition.AllColumns).
		ORDER_BY(table.PreparedPosition.KeywordID.ASC(), table.PreparedPosition.City.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get prepared positions: %w", err)
	}

	positions := make([]models.PreparedPosition, 0, len(rows))
	for ix := range rows {
		position, err := toPreparedPosition(rows[ix])
		if err != nil {
			return nil, fmt.Errorf("can't decode prepared position of keyword %d: %w", rows[ix].KeywordID, err)
		}
		positions = append(positions, position)
	}

	return positions, nil
}

func getLastParsing(ctx context.Context, db qrm.DB, parsingType models.ParsingType) (*pgmodels.Parsing, error) {
	var parsing pgmodels.Parsing
	err := table.Parsing.SELECT(table.Parsing.AllColumns).
		WHERE(table.Parsing.Type.EQ(pg.String(string(parsingType)))).
		ORDER_BY(table.Parsing.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &parsing)
	if err != nil {
		return nil, err
	}

	return &parsing, nil
}

func int32Expressions(ids []int) []pg.Expression {
	return lo.Map(ids, func(id int, _ int) pg.Expression {
		return pg.Int32(int32(id))
	})
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
