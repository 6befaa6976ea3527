package config

// Config é a configuração principal da Galáxia Gourmet.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	DB        DBConfig        `mapstructure:"db"`
	Tenant    TenantConfig    `mapstructure:"tenant"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	HTTPAddr string `mapstructure:"http_addr"`
	LogPath  string `mapstructure:"log_path"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// TenantConfig configures the single-tenant resolution stub.
// DefaultTenantID pins a tenant explicitly; when empty, the resolver
// falls back to the oldest active tenant in the store.
type TenantConfig struct {
	DefaultTenantID string `mapstructure:"default_tenant_id"`
}

type NotifyConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// AssistantConfig points at the hot-reloadable assistant settings file
// and carries the fallbacks used when the file is absent.
type AssistantConfig struct {
	SettingsPath        string  `mapstructure:"settings_path"`
	DefaultFeePercent   float64 `mapstructure:"default_fee_percent"`
	TargetMarginPercent float64 `mapstructure:"target_margin_percent"`
}

type SeedConfig struct {
	FixturePath string `mapstructure:"fixture_path"`
}
