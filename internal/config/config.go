// Package config loads the service configuration.
//
// Configuration starts from Default, which reproduces the MBA constants, and is
// optionally overlaid with a YAML file. Values not present in the file keep their
// defaults; leagues listed in the file are added to the default table.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/mba-calendar/internal/calendar"
	"github.com/pfrederiksen/mba-calendar/internal/league"
	"github.com/pfrederiksen/mba-calendar/internal/logger"
	"github.com/pfrederiksen/mba-calendar/internal/scraper"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for the calendar service
type Config struct {
	Listen   string           `yaml:"listen"`
	LogLevel string           `yaml:"log_level"`
	Source   SourceConfig     `yaml:"source"`
	Feed     FeedConfig       `yaml:"feed"`
	Leagues  map[string]int   `yaml:"leagues"`
	Locators scraper.Locators `yaml:"locators"`
}

// SourceConfig describes the schedule host
type SourceConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// FeedConfig holds the calendar metadata and event timing
type FeedConfig struct {
	ProductID       string        `yaml:"product_id"`
	NamePrefix      string        `yaml:"name_prefix"`
	SummaryPrefix   string        `yaml:"summary_prefix"`
	TimeZone        string        `yaml:"time_zone"`
	RefreshInterval string        `yaml:"refresh_interval"`
	EventDuration   time.Duration `yaml:"event_duration"`
}

// Default returns the configuration for the MBA leagues
func Default() *Config {
	cal := calendar.DefaultConfig()
	return &Config{
		Listen:   ":8080",
		LogLevel: string(logger.LevelInfo),
		Source: SourceConfig{
			BaseURL:   scraper.DefaultBaseURL,
			UserAgent: scraper.UserAgent,
			Timeout:   scraper.Timeout,
		},
		Feed: FeedConfig{
			ProductID:       cal.ProductID,
			NamePrefix:      cal.NamePrefix,
			SummaryPrefix:   cal.SummaryPrefix,
			TimeZone:        cal.TimeZone,
			RefreshInterval: cal.RefreshInterval,
			EventDuration:   cal.Duration,
		},
		Leagues:  league.DefaultTable(),
		Locators: scraper.DefaultLocators(),
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive, got %v", c.Source.Timeout)
	}
	if c.Feed.EventDuration <= 0 {
		return fmt.Errorf("feed.event_duration must be positive, got %v", c.Feed.EventDuration)
	}
	if _, err := time.LoadLocation(c.Feed.TimeZone); err != nil {
		return fmt.Errorf("feed.time_zone: %w", err)
	}
	if _, err := league.NewTable(c.Leagues); err != nil {
		return fmt.Errorf("leagues: %w", err)
	}
	if err := c.Locators.Validate(); err != nil {
		return fmt.Errorf("locators: %w", err)
	}
	return nil
}

// Calendar returns the calendar builder settings
func (c *Config) Calendar() calendar.Config {
	return calendar.Config{
		ProductID:       c.Feed.ProductID,
		NamePrefix:      c.Feed.NamePrefix,
		SummaryPrefix:   c.Feed.SummaryPrefix,
		TimeZone:        c.Feed.TimeZone,
		RefreshInterval: c.Feed.RefreshInterval,
		Duration:        c.Feed.EventDuration,
	}
}
