package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/noovas/games-catalog-api/api"
	"github.com/noovas/games-catalog-api/api/types"
	"github.com/noovas/games-catalog-api/internal/database"
	"github.com/noovas/games-catalog-api/internal/services/cache"
	"github.com/noovas/games-catalog-api/internal/services/catalog"
	"github.com/noovas/games-catalog-api/internal/services/cleanup"
	"github.com/noovas/games-catalog-api/internal/services/search"
	"github.com/noovas/games-catalog-api/internal/services/suggestions"
	"github.com/noovas/games-catalog-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Games Catalog API server with the configured settings.

The server listens for HTTP requests and serves catalog search,
typeahead suggestions, popular search terms and genre listings.

Example:
  catalog-api serve
  catalog-api serve --port 9090
  catalog-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// Catalog store
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Durable cache tier: Redis when configured and reachable, in-memory
	// otherwise. A broken tier never fails a search, but starting on the
	// memory tier avoids a warning per request.
	store := buildCacheStore(cfg)

	// Services
	catalogRepo := catalog.NewRepository(db.DB)
	termRepo := suggestions.NewTermRepository(db.DB)
	tracker := suggestions.NewTracker(termRepo, suggestions.WithPopularLimit(cfg.Search.PopularLimit))
	suggestionService := suggestions.NewService(tracker, catalogRepo)
	resultCache := search.NewResultCache(store, cfg.Cache.ResultTTL)
	searchService := search.NewService(catalogRepo, resultCache, tracker,
		search.WithTimeout(cfg.Search.Timeout))

	// Periodic pruning of stale search terms
	pruneMaxAge := time.Duration(cfg.Search.PruneMaxAgeDays) * 24 * time.Hour
	cleanupService := cleanup.NewService(tracker, pruneMaxAge, cfg.Search.PruneInterval)
	cleanupService.Start(context.Background())
	defer cleanupService.Stop()

	// HTTP server
	var rateLimiter *api.RateLimiter
	if cfg.RateLimiting.Enabled {
		rateLimiter = api.NewRateLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst)
	}

	srv := api.NewServer(api.ServerOptions{
		Address:        fmt.Sprintf("%s:%d", serverHost, serverPort),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		RateLimiter:    rateLimiter,
	})
	srv.SetDependencies(&types.Dependencies{
		DB:                db,
		SearchService:     searchService,
		SuggestionService: suggestionService,
		Catalog:           catalogRepo,
		Store:             store,
	})
	srv.Initialize()

	fmt.Printf("Starting Games Catalog API server on %s:%d\n", serverHost, serverPort)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildCacheStore picks the durable cache tier based on configuration
func buildCacheStore(cfg *config.Config) cache.Store {
	if cfg.Cache.RedisAddress != "" {
		redisStore := cache.NewRedisStore(cache.RedisOptions{
			Address:  cfg.Cache.RedisAddress,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := redisStore.Ping(ctx); err == nil {
			log.Printf("[INFO] Using Redis cache store at %s", cfg.Cache.RedisAddress)
			return redisStore
		}
		log.Printf("[WARN] Redis unreachable at %s, falling back to in-memory cache", cfg.Cache.RedisAddress)
		_ = redisStore.Close()
	}

	return cache.NewMemoryStore(cfg.Cache.MemoryMaxMB)
}
