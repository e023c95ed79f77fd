// Package app assembles repositories, services and the HTTP surface
// from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/lucasveiga/palpiteiro/internal/config"
	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/user"
	"github.com/lucasveiga/palpiteiro/internal/infrastructure/repository/file"
	"github.com/lucasveiga/palpiteiro/internal/infrastructure/repository/memory"
	"github.com/lucasveiga/palpiteiro/internal/infrastructure/repository/postgres"
	"github.com/lucasveiga/palpiteiro/internal/infrastructure/source/academia"
	"github.com/lucasveiga/palpiteiro/internal/interfaces/httpapi"
	"github.com/lucasveiga/palpiteiro/internal/platform/logging"
	"github.com/lucasveiga/palpiteiro/internal/textparse"
	"github.com/lucasveiga/palpiteiro/internal/usecase"
)

// Services bundles the wired use cases so both binaries share one
// construction path.
type Services struct {
	Reports     *usecase.ReportService
	Predictions *usecase.PredictionService
	Auth        *usecase.AuthService
	Collect     *usecase.CollectService
}

func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (Services, error) {
	matchRepo, userRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		return Services{}, err
	}

	parser := textparse.New()
	reportSvc := usecase.NewReportService(parser, matchRepo)
	predictionSvc := usecase.NewPredictionService(matchRepo)

	authSvc := usecase.NewAuthService(userRepo, cfg.AuthTokenSecret)
	if cfg.AdminPassword != "" {
		if err := authSvc.Bootstrap(ctx, cfg.AdminPassword); err != nil {
			return Services{}, fmt.Errorf("bootstrap admin account: %w", err)
		}
	}

	source := academia.NewClient(academia.ClientConfig{
		BaseURL:         cfg.ScrapeBaseURL,
		CompetitionPath: cfg.ScrapeCompetitionPath,
		Timeout:         cfg.ScrapeTimeout,
		MaxRetries:      cfg.ScrapeMaxRetries,
		Logger:          logger,
		BreakerFailures: cfg.ScrapeCircuitFailureCount,
		BreakerCooldown: cfg.ScrapeCircuitOpenTimeout,
	})
	collectSvc := usecase.NewCollectService(source, reportSvc, matchRepo)

	return Services{
		Reports:     reportSvc,
		Predictions: predictionSvc,
		Auth:        authSvc,
		Collect:     collectSvc,
	}, nil
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger, slogger *slog.Logger) (*http.Server, error) {
	svcs, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(svcs.Reports, svcs.Predictions, svcs.Auth, svcs.Collect, logger)
	router := httpapi.NewRouter(handler, svcs.Auth, slogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (match.Repository, user.Repository, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.NewMatchRepository(), memory.NewUserRepository(), nil

	case config.StorageFile:
		dir := filepath.Dir(cfg.DataFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
		matchRepo, err := file.NewMatchRepository(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		userRepo, err := file.NewUserRepository(filepath.Join(dir, "usuarios.json"))
		if err != nil {
			return nil, nil, err
		}
		return matchRepo, userRepo, nil

	case config.StoragePostgres:
		db, err := postgres.Open(ctx, cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewMatchRepository(db), postgres.NewUserRepository(db), nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
