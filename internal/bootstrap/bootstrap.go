// Package bootstrap assembles the application from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/internhub/internal/app/controllers"
	"github.com/minhvu/internhub/internal/app/migrations"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/app/routes"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/config"
	"github.com/minhvu/internhub/internal/db"
	"github.com/minhvu/internhub/internal/pkg/auth"
	"github.com/minhvu/internhub/internal/pkg/filestorage"
	"github.com/minhvu/internhub/internal/pkg/logger"
	"github.com/minhvu/internhub/internal/seed"
	"github.com/minhvu/internhub/internal/server"
)

// App holds the assembled application
type App struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Server *server.Server
}

// New loads config, connects storage and wires the full HTTP stack
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	pool, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	storage, err := filestorage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		pool.Close()
		return nil, err
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.SecretKey,
		AccessTokenExp:  cfg.JWT.AccessTokenDuration(),
		RefreshTokenExp: cfg.JWT.RefreshTokenDuration(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(pool)
	svcs := services.NewServices(repos, jwtService, storage)
	ctrls := controllers.NewControllers(svcs, cfg.Import.MaxFileSizeBytes())

	if err := seed.EnsureAdmin(ctx, repos.UserRepository, cfg.Seed); err != nil {
		pool.Close()
		return nil, fmt.Errorf("admin seeding failed: %w", err)
	}

	go cleanExpiredTokens(repos)

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Import.MaxFileSizeBytes()
	router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(router, ctrls, jwtService)

	return &App{
		Config: cfg,
		Pool:   pool,
		Server: server.New(cfg.Server, router),
	}, nil
}

// cleanExpiredTokens periodically prunes dead refresh tokens
func cleanExpiredTokens(repos *repositories.Repositories) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if err := repos.TokenRepository.DeleteExpiredTokens(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("Expired token cleanup failed")
		}
	}
}

// Close releases held resources
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
