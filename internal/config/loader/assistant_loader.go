package loader

import (
	"fmt"
	"strings"
	"sync"

	"galaxia/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// AssistantSettings são os parâmetros do assistente financeiro,
// editáveis em tempo de execução via arquivo YAML.
type AssistantSettings struct {
	DefaultFeePercent   decimal.Decimal
	TargetMarginPercent decimal.Decimal
}

type rawSettings struct {
	DefaultFeePercent   float64 `mapstructure:"default_fee_percent"`
	TargetMarginPercent float64 `mapstructure:"target_margin_percent"`
}

// ChangeListener is invoked after every successful reload.
type ChangeListener func(AssistantSettings)

// AssistantLoader reads the assistant settings file and watches it for
// changes, so fee and margin targets can be tuned without a restart.
type AssistantLoader struct {
	path     string
	fallback AssistantSettings

	mu        sync.RWMutex
	snapshot  AssistantSettings
	listeners []ChangeListener
}

// NewAssistantLoader loads the settings file and starts watching it.
// A missing file is not an error: the fallback settings stay active
// until the file shows up with valid content.
func NewAssistantLoader(path string, fallback AssistantSettings) (*AssistantLoader, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("assistant loader requires a settings path")
	}
	l := &AssistantLoader{path: path, fallback: fallback, snapshot: fallback}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		logger.Warnf("assistant settings unavailable (%s), using defaults: %v", path, err)
		return l, nil
	}
	if err := l.reload(v); err != nil {
		return nil, err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := l.reload(v); err != nil {
			logger.Errorf("assistant settings reload failed (%s): %v", evt.Name, err)
			return
		}
		logger.Infof("assistant settings reloaded from %s", evt.Name)
		l.notify()
	})
	v.WatchConfig()
	return l, nil
}

func (l *AssistantLoader) reload(v *viper.Viper) error {
	var raw rawSettings
	if err := v.Unmarshal(&raw); err != nil {
		return fmt.Errorf("parsing assistant settings failed: %w", err)
	}
	next := l.fallback
	if raw.DefaultFeePercent > 0 && raw.DefaultFeePercent <= 1 {
		next.DefaultFeePercent = decimal.NewFromFloat(raw.DefaultFeePercent)
	}
	if raw.TargetMarginPercent > 0 && raw.TargetMarginPercent < 100 {
		next.TargetMarginPercent = decimal.NewFromFloat(raw.TargetMarginPercent)
	}
	l.mu.Lock()
	l.snapshot = next
	l.mu.Unlock()
	return nil
}

// Snapshot returns the currently active settings.
func (l *AssistantLoader) Snapshot() AssistantSettings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot
}

// Subscribe registers a listener for future reloads.
func (l *AssistantLoader) Subscribe(fn ChangeListener) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	l.mu.Unlock()
}

func (l *AssistantLoader) notify() {
	l.mu.RLock()
	snap := l.snapshot
	listeners := append([]ChangeListener(nil), l.listeners...)
	l.mu.RUnlock()
	for _, fn := range listeners {
		go func(cb ChangeListener) {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("assistant settings listener panic: %v", r)
				}
			}()
			cb(snap)
		}(fn)
	}
}
