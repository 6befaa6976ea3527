package config

import "strings"

const (
	defaultAppEnv            = "dev"
	defaultAppLogLevel       = "info"
	defaultAppHTTPAddr       = ":8080"
	defaultDBPath            = "data/galaxia.db"
	defaultAssistantSettings = "configs/assistant.yaml"
	defaultSeedFixture       = "configs/seed.yaml"

	// iFood-style default fee, used when the tenant has no platform yet.
	defaultFeePercent = 0.23
	// Target margin the assistant aims for.
	defaultTargetMarginPercent = 30
)

func (c *Config) applyDefaults() {
	c.App.applyDefaults()
	c.DB.applyDefaults()
	c.Assistant.applyDefaults()
	c.Seed.applyDefaults()
}

func (a *AppConfig) applyDefaults() {
	if strings.TrimSpace(a.Env) == "" {
		a.Env = defaultAppEnv
	}
	if strings.TrimSpace(a.LogLevel) == "" {
		a.LogLevel = defaultAppLogLevel
	}
	if strings.TrimSpace(a.HTTPAddr) == "" {
		a.HTTPAddr = defaultAppHTTPAddr
	}
}

func (d *DBConfig) applyDefaults() {
	if strings.TrimSpace(d.Path) == "" {
		d.Path = defaultDBPath
	}
}

func (a *AssistantConfig) applyDefaults() {
	if strings.TrimSpace(a.SettingsPath) == "" {
		a.SettingsPath = defaultAssistantSettings
	}
	if a.DefaultFeePercent <= 0 {
		a.DefaultFeePercent = defaultFeePercent
	}
	if a.TargetMarginPercent <= 0 {
		a.TargetMarginPercent = defaultTargetMarginPercent
	}
}

func (s *SeedConfig) applyDefaults() {
	if strings.TrimSpace(s.FixturePath) == "" {
		s.FixturePath = defaultSeedFixture
	}
}
