package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/seller"
	"github.com/samber/lo"
)

// SellerSync synchronizes prices users entered in seller-api.
type SellerSync struct {
	settings
	client  SellerClient
	storage Storage
}

// NewSellerSync returns new SellerSync.
func NewSellerSync(client SellerClient, storage Storage, ops ...Option) *SellerSync {
	return &SellerSync{
		settings: newSettings(ops),
		client:   client,
		storage:  storage,
	}
}

// Sync replaces seller items of every user with seller token.
//
// Tokens rejected by seller-api are cleared only when less than half of users failed,
// otherwise the failure is more likely on the seller-api side.
func (s *SellerSync) Sync(ctx context.Context) error {
	parsing, err := s.storage.StartParsing(ctx, models.ParsingTypeSellerAPI)
	if err != nil {
		return fmt.Errorf("can't start parsing: %w", err)
	}

	parsed, failed, err := s.sync(ctx)

	return s.finishParsing(ctx, s.storage, parsing, parsed, failed, err)
}

func (s *SellerSync) sync(ctx context.Context) (int, int, error) {
	users, err := s.storage.GetUsers(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("can't get users: %w", err)
	}

	users = lo.Filter(users, func(user models.User, _ int) bool {
		return user.SellerToken != nil && *user.SellerToken != ""
	})

	unauthorized := []int{}
	parsed, failed := 0, 0

	for _, user := range users {
		items, err := s.client.FetchItems(ctx, user.ID, *user.SellerToken)
		if errors.Is(err, seller.ErrUnauthorized) {
			failed++
			unauthorized = append(unauthorized, user.ID)
			s.logger.Warn().Err(err).Int("userID", user.ID).Msg("seller token rejected")
			continue
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return parsed, failed, fmt.Errorf("can't fetch seller items: %w", ctxErr)
			}
			failed++
			s.logger.Warn().Err(err).Int("userID", user.ID).Msg("can't fetch seller items")
			continue
		}

		if err := s.storage.ReplaceSellerItems(ctx, user.ID, items); err != nil {
			return parsed, failed, fmt.Errorf("can't replace seller items of user %d: %w", user.ID, err)
		}
		parsed += len(items)
	}

	if len(unauthorized) == 0 {
		return parsed, failed, nil
	}

	if len(unauthorized)*2 >= len(users) {
		s.logger.Warn().
			Int("unauthorized", len(unauthorized)).
			Int("users", len(users)).
			Msg("too many tokens rejected, keeping them")
		return parsed, failed, nil
	}

	if err := s.storage.ClearSellerTokens(ctx, unauthorized); err != nil {
		return parsed, failed, fmt.Errorf("can't clear seller tokens: %w", err)
	}

	return parsed, failed, nil
}
