//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/catalog-api/internal/user/delivery/http"
	"github.com/tair/catalog-api/internal/user/domain"
	"github.com/tair/catalog-api/internal/user/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

// InitializeAuthHandler initializes the auth HTTP handler
func InitializeAuthHandler(db *gorm.DB) (*http.AuthHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewAuthHandler,
	)
	return nil, nil
}
