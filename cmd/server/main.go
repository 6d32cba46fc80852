package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Connor-Kenway3/AmbassadorHub/internal/handler"
	"github.com/Connor-Kenway3/AmbassadorHub/internal/repository"
	"github.com/Connor-Kenway3/AmbassadorHub/internal/server"
	"github.com/Connor-Kenway3/AmbassadorHub/internal/service"
	"github.com/Connor-Kenway3/AmbassadorHub/pkg/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	dotenv, err := config.DotenvPath()
	if err != nil {
		log.Fatalf("locate .env: %v", err)
	}
	cfg, err := config.Load(dotenv)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	src, err := repository.ParseSource(cfg.ProgramsSource, cfg.DefaultProgramsPath())
	if err != nil {
		return err
	}
	if src.Kind == repository.SourceFile {
		src.Path = cfg.Resolve(src.Path)
	}

	repo, closeRepo, err := repository.Open(ctx, src, cfg.ProjectID)
	if err != nil {
		return fmt.Errorf("open programs source: %w", err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warn("close programs source", zap.Error(err))
		}
	}()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	result := service.NewCatalogLoader(repo).Load(loadCtx)
	cancel()
	catalog := catalogFromResult(logger, result)

	tmpl, err := handler.LoadTemplates(cfg.TemplateDir)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	httpHandler := handler.NewHTTPHandler(catalog, tmpl, handler.Options{
		Title:     cfg.SiteTitle,
		StaticDir: cfg.StaticDir,
	})
	router := handler.NewRouter(httpHandler, logger)

	return server.New(cfg.Addr(), router, logger, cfg.ShutdownTimeout).ListenAndServe(ctx)
}

// catalogFromResult logs the startup load and falls back to an empty
// catalog when it failed.
func catalogFromResult(logger *zap.Logger, result service.LoadResult) *service.ProgramCatalog {
	switch {
	case !result.OK():
		logger.Error("load programs failed, serving an empty list",
			zap.String("source", result.Source),
			zap.Error(result.Err))
	case result.Absent:
		logger.Info("program store not found, serving an empty list",
			zap.String("source", result.Source))
	default:
		logger.Info("programs loaded",
			zap.String("source", result.Source),
			zap.Int("count", len(result.Programs)))
	}
	return service.NewProgramCatalog(result.ProgramsOrEmpty())
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
