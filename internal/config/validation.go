package config

import (
	"fmt"
	"strings"
)

func validate(c *Config) error {
	if err := c.Assistant.validate(); err != nil {
		return err
	}
	if err := c.Notify.validate(); err != nil {
		return err
	}
	return nil
}

func (a *AssistantConfig) validate() error {
	if a.DefaultFeePercent < 0 || a.DefaultFeePercent > 1 {
		return fmt.Errorf("assistant.default_fee_percent must be a fraction in [0,1], got %v", a.DefaultFeePercent)
	}
	if a.TargetMarginPercent < 0 || a.TargetMarginPercent >= 100 {
		return fmt.Errorf("assistant.target_margin_percent must be in [0,100), got %v", a.TargetMarginPercent)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	t := n.Telegram
	if !t.Enabled {
		return nil
	}
	if strings.TrimSpace(t.BotToken) == "" {
		return fmt.Errorf("notify.telegram.bot_token is required when telegram is enabled")
	}
	if strings.TrimSpace(t.ChatID) == "" {
		return fmt.Errorf("notify.telegram.chat_id is required when telegram is enabled")
	}
	return nil
}
