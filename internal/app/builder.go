package app

import (
	"context"
	"fmt"

	"galaxia/internal/catalog"
	gxcfg "galaxia/internal/config"
	cfgloader "galaxia/internal/config/loader"
	"galaxia/internal/gateway/notifier"
	"galaxia/internal/insights"
	"galaxia/internal/logger"
	"galaxia/internal/orders"
	"galaxia/internal/reports"
	"galaxia/internal/store"
	"galaxia/internal/store/sqlite"
	"galaxia/internal/tenant"
	apihttp "galaxia/internal/transport/http"

	"github.com/shopspring/decimal"
)

// AppBuilder monta as dependências. Os hooks substituíveis existem
// para os testes trocarem store e notifier sem tocar no resto.
type AppBuilder struct {
	cfg *gxcfg.Config

	storeFn    func(*gxcfg.Config) (store.Store, error)
	notifierFn func(*gxcfg.Config) notifier.TextNotifier
	settingsFn func(*gxcfg.Config) (*cfgloader.AssistantLoader, error)
}

type AppBuilderOption func(*AppBuilder)

// WithStore overrides the persistence layer.
func WithStore(st store.Store) AppBuilderOption {
	return func(b *AppBuilder) {
		b.storeFn = func(*gxcfg.Config) (store.Store, error) { return st, nil }
	}
}

// WithNotifier overrides the outbound notifier.
func WithNotifier(tn notifier.TextNotifier) AppBuilderOption {
	return func(b *AppBuilder) {
		b.notifierFn = func(*gxcfg.Config) notifier.TextNotifier { return tn }
	}
}

func NewAppBuilder(cfg *gxcfg.Config, opts ...AppBuilderOption) *AppBuilder {
	b := &AppBuilder{
		cfg:        cfg,
		storeFn:    buildStore,
		notifierFn: buildNotifier,
		settingsFn: buildAssistantLoader,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func buildStore(cfg *gxcfg.Config) (store.Store, error) {
	return sqlite.NewSqliteStore(cfg.DB.Path)
}

func buildNotifier(cfg *gxcfg.Config) notifier.TextNotifier {
	tg := cfg.Notify.Telegram
	if !tg.Enabled {
		logger.Infof("Telegram desativado; notificações serão descartadas")
		return notifier.Noop{}
	}
	return notifier.NewTelegram(tg.BotToken, tg.ChatID)
}

func buildAssistantLoader(cfg *gxcfg.Config) (*cfgloader.AssistantLoader, error) {
	fallback := cfgloader.AssistantSettings{
		DefaultFeePercent:   decimal.NewFromFloat(cfg.Assistant.DefaultFeePercent),
		TargetMarginPercent: decimal.NewFromFloat(cfg.Assistant.TargetMarginPercent),
	}
	return cfgloader.NewAssistantLoader(cfg.Assistant.SettingsPath, fallback)
}

func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	cfg := b.cfg

	st, err := b.storeFn(cfg)
	if err != nil {
		return nil, fmt.Errorf("inicializando banco: %w", err)
	}
	if err := st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("banco indisponível: %w", err)
	}
	logger.Infof("✓ Banco pronto em %s", cfg.DB.Path)

	settings, err := b.settingsFn(cfg)
	if err != nil {
		return nil, fmt.Errorf("carregando configurações do assistente: %w", err)
	}
	settings.Subscribe(func(s cfgloader.AssistantSettings) {
		logger.Infof("configurações do assistente recarregadas: taxa=%s margem=%s",
			s.DefaultFeePercent.String(), s.TargetMarginPercent.String())
	})

	tn := b.notifierFn(cfg)
	resolver := tenant.NewResolver(st, cfg.Tenant.DefaultTenantID)

	router := &apihttp.Router{
		Catalog:     catalog.NewService(st),
		Orders:      orders.NewService(st, tn),
		Insights:    insights.NewService(st, settings),
		Reports:     reports.NewService(st),
		Store:       st,
		Resolver:    resolver,
		Settings:    settings,
		SeedFixture: cfg.Seed.FixturePath,
	}
	server, err := apihttp.NewServer(apihttp.ServerConfig{
		Addr:   cfg.App.HTTPAddr,
		Router: router,
		Store:  st,
	})
	if err != nil {
		return nil, err
	}

	return &App{cfg: cfg, store: st, server: server}, nil
}
