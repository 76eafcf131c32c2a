package handlers

import (
	"context"

	repo "github.com/hidestyle/storefront/internal/repo"
)

// RefreshTokens is the slice of the auth refresh store the handlers use.
type RefreshTokens interface {
	Issue(ctx context.Context, username string) (string, error)
	Redeem(ctx context.Context, token string) (string, error)
}

var (
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	statsRepo    repo.StatsRepository
	refreshStore RefreshTokens
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

func SetRefreshStore(s RefreshTokens) {
	refreshStore = s
}
