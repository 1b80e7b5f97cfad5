package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"wastenot/planner/internal/advice"
	"wastenot/planner/internal/config"
	"wastenot/planner/internal/handlers"
	"wastenot/planner/internal/inventory"
	"wastenot/planner/internal/planner"
	"wastenot/planner/internal/repository"
	"wastenot/planner/internal/resolver"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Resolver  *resolver.Resolver
	Inventory inventory.Store
	Planner   *planner.Service
	Advice    *advice.Service

	server *http.Server
	db     *pgxpool.Pool
	redis  *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	db, err := pgxpool.New(context.Background(),
		fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
		))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	container.db = db

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	container.redis = rdb
	log.Info("Connected to Redis successfully")

	dishRepo := repository.NewDishRepository(db)
	storageRepo := repository.NewStorageRepository(db)
	secondLifeRepo := repository.NewSecondLifeRepository(db)

	remoteClient := resolver.NewRemoteClient(cfg.Resolver)

	dishResolver := resolver.New(dishRepo, remoteClient)
	if err := dishResolver.LoadCache(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load dish cache: %w", err)
	}
	container.Resolver = dishResolver

	store := inventory.NewRedisStore(rdb, cfg.Redis)
	container.Inventory = store

	adviceService := advice.NewService(storageRepo, remoteClient)
	container.Advice = adviceService

	plannerService := planner.NewService(dishResolver, store)
	container.Planner = plannerService

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	mux := handlers.Routes(
		&handlers.PlanHandler{Planner: plannerService},
		&handlers.InventoryHandler{Store: store, Advice: adviceService},
		&handlers.SecondLifeHandler{Repo: secondLifeRepo},
		&handlers.AdviceHandler{Advice: adviceService},
		&handlers.DishHandler{Repo: dishRepo},
	)

	container.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      c.Handler(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return container, nil
}

// Run serves the API until the context is cancelled
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Listening on %s", c.server.Addr)
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return c.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	c.db.Close()
	c.redis.Close()

	log.Info("Container shut down successfully")
	return nil
}
