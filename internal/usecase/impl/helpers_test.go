package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bakeandtaste/config"
	"bakeandtaste/internal/domain/entity"
	"bakeandtaste/internal/domain/repository"
	mockRepo "bakeandtaste/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Catalog: &config.CatalogConfig{
			DefaultPageSize: 20,
			MaxPageSize:     50,
		},
	}
}

// txRepos are the transaction-bound repositories handed to txManager.Execute callbacks.
type txRepos struct {
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
	accountRepo *mockRepo.MockAccountRepository
	bakeryRepo  *mockRepo.MockBakeryRepository
	cakeRepo    *mockRepo.MockCakeRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func newTxRepos(t *testing.T) txRepos {
	repos := txRepos{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		bakeryRepo:  mockRepo.NewMockBakeryRepository(t),
		cakeRepo:    mockRepo.NewMockCakeRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}

	repos.factory.EXPECT().ProfileRepo().Return(repos.profileRepo).Maybe()
	repos.factory.EXPECT().AccountRepo().Return(repos.accountRepo).Maybe()
	repos.factory.EXPECT().BakeryRepo().Return(repos.bakeryRepo).Maybe()
	repos.factory.EXPECT().CakeRepo().Return(repos.cakeRepo).Maybe()
	repos.factory.EXPECT().OrderRepo().Return(repos.orderRepo).Maybe()

	return repos
}

// expectTransaction makes txManager run the callback against the transaction-bound repositories.
func expectTransaction(txManager *mockRepo.MockTransactionManager, repos txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func newProfile(role entity.Role) *entity.Profile {
	return &entity.Profile{
		ID:          uuid.New(),
		PrincipalID: uuid.New(),
		Role:        role,
		DisplayName: "Test " + role.String(),
		Email:       role.String() + "@example.com",
	}
}

func newBakery(ownerID uuid.UUID) *entity.Bakery {
	return &entity.Bakery{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Sweet Crumbs",
		Address: "12 Baker Street",
	}
}
