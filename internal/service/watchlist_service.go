package service

import (
	"context"
	"strings"
	"time"

	"github.com/gil10101/sokin-sub000/internal/cqrs"
	"github.com/gil10101/sokin-sub000/internal/models"
	"github.com/gil10101/sokin-sub000/internal/repository"
	"github.com/gil10101/sokin-sub000/internal/utils"
)

// WatchlistService maintains each user's symbol watchlist. Writes
// replace the whole list.
type WatchlistService struct {
	watchlists *repository.WatchlistRepository
}

func NewWatchlistService(watchlists *repository.WatchlistRepository) *WatchlistService {
	return &WatchlistService{watchlists: watchlists}
}

// Get returns the user's watchlist. A user who never saved one gets an
// empty list rather than a not-found error.
func (s *WatchlistService) Get(ctx context.Context, q cqrs.WatchlistQuery) (*models.Watchlist, error) {
	watchlist, err := s.watchlists.GetByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	if watchlist == nil {
		return &models.Watchlist{UserID: q.UserID, Symbols: []string{}}, nil
	}
	return watchlist, nil
}

// Replace swaps the entire symbol list. Symbols are uppercased and
// deduplicated; an empty list clears the watchlist.
func (s *WatchlistService) Replace(ctx context.Context, cmd cqrs.ReplaceWatchlistCommand) (*models.Watchlist, error) {
	now := time.Now().UTC()
	watchlist := &models.Watchlist{
		ID:        utils.GenerateID(utils.WatchlistPrefix),
		UserID:    cmd.UserID,
		Symbols:   normalizeSymbols(cmd.Symbols),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.watchlists.Upsert(ctx, watchlist); err != nil {
		return nil, err
	}
	return watchlist, nil
}

// normalizeSymbols uppercases, trims and deduplicates while keeping the
// caller's ordering.
func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := []string{}
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		out = append(out, symbol)
	}
	return out
}
