package advice

import (
	"context"
	"errors"
	"testing"

	"wastenot/planner/internal/domain"
)

type fakeStorageRepo struct {
	advice map[string]domain.StorageAdvice
	err    error
}

func (f *fakeStorageRepo) Advice(ctx context.Context, foodType string) (*domain.StorageAdvice, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	a, ok := f.advice[foodType]
	if !ok {
		return nil, false, nil
	}
	return &a, true, nil
}

func (f *fakeStorageRepo) FoodTypes(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	types := make([]string, 0, len(f.advice))
	for t := range f.advice {
		types = append(types, t)
	}
	return types, nil
}

type fakeAdvisor struct {
	advice *domain.StorageAdvice
	err    error
}

func (f *fakeAdvisor) DishIngredients(ctx context.Context, dish string) ([]domain.Ingredient, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAdvisor) ExpiryInfo(ctx context.Context, foodType string) (*domain.StorageAdvice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.advice, nil
}

func TestAdviceFromDatabase(t *testing.T) {
	repo := &fakeStorageRepo{advice: map[string]domain.StorageAdvice{
		"apples": {Type: "Apples", PantryDays: 21, FridgeDays: 42, Method: domain.StorageMethodFridge, Source: domain.AdviceSourceDatabase},
	}}
	svc := NewService(repo, &fakeAdvisor{err: errors.New("must not be called")})

	got := svc.Advice(context.Background(), "apples")
	if got.Source != domain.AdviceSourceDatabase {
		t.Fatalf("expected database source, got %s", got.Source)
	}
	if got.Days() != 42 {
		t.Fatalf("expected 42 days, got %d", got.Days())
	}
}

func TestAdviceFallsBackToRemote(t *testing.T) {
	remote := &fakeAdvisor{advice: &domain.StorageAdvice{
		Type: "dragonfruit", FridgeDays: 5, Method: domain.StorageMethodFridge, Source: domain.AdviceSourceRemote,
	}}
	svc := NewService(&fakeStorageRepo{}, remote)

	got := svc.Advice(context.Background(), "dragonfruit")
	if got.Source != domain.AdviceSourceRemote {
		t.Fatalf("expected remote source, got %s", got.Source)
	}
}

func TestAdviceDefaultsWhenEverythingFails(t *testing.T) {
	svc := NewService(&fakeStorageRepo{}, &fakeAdvisor{err: errors.New("advisor down")})

	got := svc.Advice(context.Background(), "dragonfruit")
	if got.Source != domain.AdviceSourceDefault {
		t.Fatalf("expected default source, got %s", got.Source)
	}
	if got.PantryDays != 14 || got.FridgeDays != 7 || got.Method != domain.StorageMethodFridge {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestAdviceDatabaseErrorStillAnswers(t *testing.T) {
	repo := &fakeStorageRepo{err: errors.New("db down")}
	svc := NewService(repo, &fakeAdvisor{err: errors.New("advisor down")})

	got := svc.Advice(context.Background(), "apples")
	if got.Source != domain.AdviceSourceDefault {
		t.Fatalf("expected default advice, got %+v", got)
	}
}
