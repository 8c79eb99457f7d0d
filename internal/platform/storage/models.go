package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/marketplace-tracker/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBParsing(parsing *models.Parsing) *pgmodels.Parsing {
	return &pgmodels.Parsing{
		ID:            int32(parsing.ID),
		Type:          string(parsing.Type),
		CreatedAt:     parsing.CreatedAt,
		FinishedAt:    parsing.FinishedAt,
		IsSuccess:     parsing.IsSuccess,
		StatusMessage: parsing.StatusMessage,
		ParsedItems:   parsing.ParsedItems,
		FailedItems:   parsing.FailedItems,
	}
}

func toParsing(parsing *pgmodels.Parsing) *models.Parsing {
	return &models.Parsing{
		ID:            int(parsing.ID),
		Type:          models.ParsingType(parsing.Type),
		CreatedAt:     parsing.CreatedAt,
		FinishedAt:    parsing.FinishedAt,
		IsSuccess:     parsing.IsSuccess,
		StatusMessage: parsing.StatusMessage,
		ParsedItems:   parsing.ParsedItems,
		FailedItems:   parsing.FailedItems,
	}
}

func toUser(user pgmodels.TrackerUser) models.User {
	return models.User{
		ID:          int(user.ID),
		ChatID:      user.ChatID,
		SellerToken: user.SellerToken,
	}
}

func toCategory(category pgmodels.Category) *models.Category {
	return &models.Category{
		ID:           int(category.ID),
		Name:         category.Name,
		PersonalSale: toIntPtr(category.PersonalSale),
	}
}

func toItem(item pgmodels.Item, category *pgmodels.Category) models.Item {
	result := models.Item{
		ID:         int(item.ID),
		UserID:     int(item.UserID),
		VendorCode: int(item.VendorCode),
		Name:       item.Name,
		NameSite:   item.NameSite,
		CategoryID: toIntPtr(item.CategoryID),
	}

	if category != nil {
		result.Category = toCategory(*category)
	}

	return result
}

// ToDBPrice converts models.Price into postgres price model.
func ToDBPrice(price models.Price) pgmodels.Price {
	return pgmodels.Price{
		ID:           int32(price.ID),
		ItemID:       int32(price.ItemID),
		ParsingID:    int32(price.ParsingID),
		ParsedAt:     price.ParsedAt,
		Reviews:      int32(price.Reviews),
		Price:        toInt32Ptr(price.Price),
		FinalPrice:   toInt32Ptr(price.FinalPrice),
		PersonalSale: toInt32Ptr(price.PersonalSale),
		SoldOut:      price.SoldOut,
	}
}

func toPrice(price pgmodels.Price) models.Price {
	return models.Price{
		ID:           int(price.ID),
		ItemID:       int(price.ItemID),
		ParsingID:    int(price.ParsingID),
		ParsedAt:     price.ParsedAt,
		Reviews:      int(price.Reviews),
		Price:        toIntPtr(price.Price),
		FinalPrice:   toIntPtr(price.FinalPrice),
		PersonalSale: toIntPtr(price.PersonalSale),
		SoldOut:      price.SoldOut,
	}
}

// ToDBPosition converts models.Position into postgres search position model.
func ToDBPosition(position models.Position) pgmodels.SearchPosition {
	return pgmodels.SearchPosition{
		ID:             int32(position.ID),
		KeywordID:      int32(position.KeywordID),
		ParsingID:      int32(position.ParsingID),
		ParsedAt:       position.ParsedAt,
		City:           position.City,
		PageCapacities: toDBPageCapacities(position.PageCapacities),
		Page:           toInt32Ptr(position.Page),
		Rank:           toInt32Ptr(position.Rank),
		PromoPage:      toInt32Ptr(position.PromoPage),
		PromoRank:      toInt32Ptr(position.PromoRank),
	}
}

func toPosition(position pgmodels.SearchPosition) (models.Position, error) {
	capacities, err := fromDBPageCapacities(position.PageCapacities)
	if err != nil {
		return models.Position{}, fmt.Errorf("can't decode page capacities of position %d: %w", position.ID, err)
	}

	return models.Position{
		ID:             int(position.ID),
		KeywordID:      int(position.KeywordID),
		ParsingID:      int(position.ParsingID),
		ParsedAt:       position.ParsedAt,
		City:           position.City,
		PageCapacities: capacities,
		Page:           toIntPtr(position.Page),
		Rank:           toIntPtr(position.Rank),
		PromoPage:      toIntPtr(position.PromoPage),
		PromoRank:      toIntPtr(position.PromoRank),
	}, nil
}

// ToDBSellerItem converts models.SellerItem into postgres seller item model.
func ToDBSellerItem(item models.SellerItem) pgmodels.SellerItem {
	return pgmodels.SellerItem{
		UserID:     int32(item.UserID),
		VendorCode: int32(item.VendorCode),
		Price:      int32(item.Price),
		Discount:   int32(item.Discount),
	}
}

func toSellerItem(item pgmodels.SellerItem) models.SellerItem {
	return models.SellerItem{
		UserID:     int(item.UserID),
		VendorCode: int(item.VendorCode),
		Price:      int(item.Price),
		Discount:   int(item.Discount),
	}
}

func toDBPreparedPrice(price models.PreparedPrice) (pgmodels.PreparedPrice, error) {
	prices, err := json.Marshal(price.Prices)
	if err != nil {
		return pgmodels.PreparedPrice{}, err
	}

	return pgmodels.PreparedPrice{
		ItemID: int32(price.ItemID),
		Prices: string(prices),
	}, nil
}

func toPreparedPrice(price pgmodels.PreparedPrice) (models.PreparedPrice, error) {
	result := models.PreparedPrice{
		ItemID: int(price.ItemID),
	}

	if err := json.Unmarshal([]byte(price.Prices), &result.Prices); err != nil {
		return models.PreparedPrice{}, err
	}

	return result, nil
}

func toDBPreparedPosition(position models.PreparedPosition) (pgmodels.PreparedPosition, error) {
	positions, err := json.Marshal(position.Positions)
	if err != nil {
		return pgmodels.PreparedPosition{}, err
	}

	return pgmodels.PreparedPosition{
		KeywordID: int32(position.KeywordID),
		City:      position.City,
		Positions: string(positions),
	}, nil
}

func toPreparedPosition(position pgmodels.PreparedPosition) (models.PreparedPosition, error) {
	result := models.PreparedPosition{
		KeywordID: int(position.KeywordID),
		City:      position.City,
	}

	if err := json.Unmarshal([]byte(position.Positions), &result.Positions); err != nil {
		return models.PreparedPosition{}, err
	}

	return result, nil
}

func toDBPageCapacities(capacities []int) string {
	return strings.Join(lo.Map(capacities, func(capacity int, _ int) string {
		return strconv.Itoa(capacity)
	}), ",")
}

func fromDBPageCapacities(raw string) ([]int, error) {
	if raw == "" {
		return []int{}, nil
	}

	parts := strings.Split(raw, ",")
	capacities := make([]int, 0, len(parts))
	for _, part := range parts {
		capacity, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		capacities = append(capacities, capacity)
	}

	return capacities, nil
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	return lo.ToPtr(int32(*v))
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	return lo.ToPtr(int(*v))
}
