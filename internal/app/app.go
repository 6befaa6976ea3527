package app

import (
	"context"
	"fmt"

	gxcfg "galaxia/internal/config"
	"galaxia/internal/logger"
	"galaxia/internal/store"
	apihttp "galaxia/internal/transport/http"

	"golang.org/x/sync/errgroup"
)

// App orquestra o ciclo de vida: configuração → dependências → HTTP.
type App struct {
	cfg    *gxcfg.Config
	store  store.Store
	server *apihttp.Server
}

// NewApp builds the application from config, without starting it.
func NewApp(cfg *gxcfg.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	return buildAppWithWire(context.Background(), cfg)
}

// Run serves HTTP until ctx is canceled, then closes the store.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.server == nil {
		return fmt.Errorf("http server not initialized")
	}
	logger.Infof("✓ Galáxia Gourmet escutando em %s", a.cfg.App.HTTPAddr)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.server.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	err := group.Wait()

	if a.store != nil {
		if cerr := a.store.Close(); cerr != nil {
			logger.Warnf("falha ao fechar o banco: %v", cerr)
		}
	}
	return err
}

// Server exposes the HTTP server (for testing harnesses).
func (a *App) Server() *apihttp.Server {
	if a == nil {
		return nil
	}
	return a.server
}
