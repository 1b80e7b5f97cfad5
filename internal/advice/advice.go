// Package advice answers how long a food type keeps and where to store
// it. The database is authoritative; the remote advisor fills gaps and
// a fixed default covers everything else, so a lookup never fails.
package advice

import (
	"context"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/repository"
	"wastenot/planner/internal/resolver"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	repo   repository.StorageRepository
	client resolver.RemoteClient
}

func NewService(repo repository.StorageRepository, client resolver.RemoteClient) *Service {
	return &Service{
		repo:   repo,
		client: client,
	}
}

// Advice resolves storage recommendations for a food type through the
// database, then the remote advisor, then the built-in default.
func (s *Service) Advice(ctx context.Context, foodType string) domain.StorageAdvice {
	a, found, err := s.repo.Advice(ctx, foodType)
	if err != nil {
		log.Errorf("Storage advice lookup failed for %q: %v", foodType, err)
	}
	if found {
		return *a
	}

	remote, err := s.client.ExpiryInfo(ctx, foodType)
	if err == nil && remote != nil {
		return *remote
	}
	if err != nil {
		log.Warnf("Remote expiry lookup failed for %q, using defaults: %v", foodType, err)
	}

	return domain.DefaultStorageAdvice(foodType)
}

func (s *Service) FoodTypes(ctx context.Context) ([]string, error) {
	return s.repo.FoodTypes(ctx)
}
