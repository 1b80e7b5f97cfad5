package resolver

import (
	"context"
	"fmt"
	"time"

	"wastenot/planner/internal/config"
	"wastenot/planner/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// RemoteClient talks to the remote generation API that backs dish
// resolution and expiry lookups when the local database has no answer.
type RemoteClient interface {
	DishIngredients(ctx context.Context, dishName string) ([]domain.Ingredient, error)
	ExpiryInfo(ctx context.Context, foodType string) (*domain.StorageAdvice, error)
}

type remoteClient struct {
	rl         ratelimit.Limiter
	config     config.ResolverConfig
	baseURL    string
	httpClient *resty.Client
}

func NewRemoteClient(cfg config.ResolverConfig) RemoteClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if cfg.APIKey != "" {
		client.SetHeader("X-Api-Key", cfg.APIKey)
	}

	return &remoteClient{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		config:     cfg,
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

type ingredientsResponse struct {
	Dish        string              `json:"dish"`
	Ingredients []domain.Ingredient `json:"ingredients"`
	MatchType   string              `json:"match_type"`
	Error       string              `json:"error"`
}

func (c *remoteClient) DishIngredients(ctx context.Context, dishName string) ([]domain.Ingredient, error) {
	c.rl.Take()

	var out ingredientsResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"dish_name": dishName}).
		SetResult(&out).
		Post(c.baseURL + "/dishes/ingredients")

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to resolve dish %q: %w", dishName, err)
	}

	if resp.StatusCode() == 404 {
		return nil, domain.ErrDishNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("resolver API error: %d %s", resp.StatusCode(), resp.Status())
	}
	if out.Error != "" {
		return nil, domain.ErrDishNotFound
	}

	log.Debugf("Resolved %d ingredients for dish %q remotely", len(out.Ingredients), dishName)
	return out.Ingredients, nil
}

type expiryResponse struct {
	Days   int    `json:"days"`
	Method string `json:"method"`
	Error  string `json:"error"`
}

func (c *remoteClient) ExpiryInfo(ctx context.Context, foodType string) (*domain.StorageAdvice, error) {
	c.rl.Take()

	var out expiryResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"food_type": foodType}).
		SetResult(&out).
		Post(c.baseURL + "/storage/expiry")

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch expiry info for %q: %w", foodType, err)
	}

	if resp.IsError() || out.Error != "" {
		return nil, fmt.Errorf("advisor API error: %d %s", resp.StatusCode(), resp.Status())
	}

	advice := &domain.StorageAdvice{
		Type:   foodType,
		Method: domain.StorageMethodPantry,
		Source: domain.AdviceSourceRemote,
	}
	switch out.Method {
	case "fridge":
		advice.Method = domain.StorageMethodFridge
		advice.FridgeDays = out.Days
	case "pantry":
		advice.PantryDays = out.Days
	default:
		return nil, fmt.Errorf("advisor returned unknown storage method %q", out.Method)
	}

	return advice, nil
}
