package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/roster"
	"github.com/diegoclair/weekly-signup-bot/internal/scheduler"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	TransportSlack    = "slack"
	TransportTelegram = "telegram"
)

type Config struct {
	Transport string `env:"TRANSPORT" envDefault:"slack"`

	SlackBotToken      string `env:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`
	SlackChannelID     string `env:"SLACK_CHANNEL_ID"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	GroupChatID      int64  `env:"GROUP_CHAT_ID"`

	DatabasePath       string   `env:"DATABASE_PATH" envDefault:"./signups.db"`
	Port               string   `env:"PORT" envDefault:"3000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Timezone    string         `env:"TIMEZONE" envDefault:"America/New_York"`
	SignupDays  []string       `env:"SIGNUP_DAYS" envSeparator:"," envDefault:"Monday,Tuesday,Wednesday,Thursday"`
	DayCapacity int            `env:"DAY_CAPACITY" envDefault:"2"`
	DayLimits   map[string]int `env:"DAY_LIMITS"`

	OpenAt     string `env:"OPEN_AT" envDefault:"fri 09:00"`
	RemindAt   string `env:"REMIND_AT" envDefault:"sun 12:00"`
	FinalizeAt string `env:"FINALIZE_AT" envDefault:"sun 21:00"`

	ActivityName    string        `env:"ACTIVITY_NAME" envDefault:"Bible Study"`
	MeetingInfo     string        `env:"MEETING_INFO"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"10s"`

	// RosterFile points to an optional YAML file overriding the roster settings.
	RosterFile string `env:"ROSTER_FILE"`
}

// rosterFile is the YAML layout of ROSTER_FILE. Missing keys keep the env values.
type rosterFile struct {
	Activity    string         `yaml:"activity"`
	MeetingInfo string         `yaml:"meeting_info"`
	Timezone    string         `yaml:"timezone"`
	Days        []string       `yaml:"days"`
	Capacity    *int           `yaml:"capacity"`
	Limits      map[string]int `yaml:"limits"`
	Schedule    struct {
		Open     string `yaml:"open"`
		Reminder string `yaml:"reminder"`
		Finalize string `yaml:"finalize"`
	} `yaml:"schedule"`
}

// Load reads .env when present, then the environment and the optional roster file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if cfg.RosterFile != "" {
		if err := cfg.applyRosterFile(cfg.RosterFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyRosterFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	if file.Activity != "" {
		c.ActivityName = file.Activity
	}
	if file.MeetingInfo != "" {
		c.MeetingInfo = file.MeetingInfo
	}
	if file.Timezone != "" {
		c.Timezone = file.Timezone
	}
	if len(file.Days) > 0 {
		c.SignupDays = file.Days
	}
	if file.Capacity != nil {
		c.DayCapacity = *file.Capacity
	}
	if len(file.Limits) > 0 {
		c.DayLimits = file.Limits
	}
	if file.Schedule.Open != "" {
		c.OpenAt = file.Schedule.Open
	}
	if file.Schedule.Reminder != "" {
		c.RemindAt = file.Schedule.Reminder
	}
	if file.Schedule.Finalize != "" {
		c.FinalizeAt = file.Schedule.Finalize
	}

	return nil
}

// Validate checks transport credentials and the roster settings.
func (c *Config) Validate() error {
	var errs []error

	switch c.Transport {
	case TransportSlack:
		if c.SlackBotToken == "" {
			errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
		}
		if c.SlackSigningSecret == "" {
			errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required"))
		}
		if c.SlackChannelID == "" {
			errs = append(errs, errors.New("SLACK_CHANNEL_ID is required"))
		}
	case TransportTelegram:
		if c.TelegramBotToken == "" {
			errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN is required"))
		}
		if c.GroupChatID == 0 {
			errs = append(errs, errors.New("GROUP_CHAT_ID is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown transport %q, expected %s or %s", c.Transport, TransportSlack, TransportTelegram))
	}

	days := c.Days()
	if len(days) == 0 {
		errs = append(errs, errors.New("at least one signup day is required"))
	}
	seen := make(map[string]bool, len(days))
	for _, day := range days {
		key := strings.ToLower(string(day))
		if strings.EqualFold(string(day), string(domain.Unavailable)) {
			errs = append(errs, fmt.Errorf("%s can't be used as a signup day", domain.Unavailable))
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("signup day %s is listed twice", day))
		}
		seen[key] = true
	}

	if c.DayCapacity < 0 {
		errs = append(errs, errors.New("DAY_CAPACITY can't be negative"))
	}
	for day := range c.DayLimits {
		if !seen[strings.ToLower(strings.TrimSpace(day))] {
			errs = append(errs, fmt.Errorf("limit set for unknown day %s", day))
		}
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.TriggerRules(); err != nil {
		errs = append(errs, err)
	}

	if c.DeliveryTimeout <= 0 {
		errs = append(errs, errors.New("DELIVERY_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Days returns the claimable days with blank entries removed.
func (c *Config) Days() []domain.Day {
	var days []domain.Day
	for _, day := range c.SignupDays {
		if day = strings.TrimSpace(day); day != "" {
			days = append(days, domain.Day(day))
		}
	}
	return days
}

// Capacity returns the default limit plus the per-day overrides keyed by the configured day names.
func (c *Config) Capacity() roster.Capacity {
	capacity := roster.Capacity{Default: c.DayCapacity}
	if len(c.DayLimits) == 0 {
		return capacity
	}

	capacity.PerDay = make(map[domain.Day]int, len(c.DayLimits))
	for name, limit := range c.DayLimits {
		for _, day := range c.Days() {
			if strings.EqualFold(strings.TrimSpace(name), string(day)) {
				capacity.PerDay[day] = limit
			}
		}
	}
	return capacity
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// TriggerRules returns the weekly open, reminder and finalize rules.
func (c *Config) TriggerRules() ([]entity.TriggerRule, error) {
	values := map[domain.Trigger]string{
		domain.TriggerOpen:     c.OpenAt,
		domain.TriggerReminder: c.RemindAt,
		domain.TriggerFinalize: c.FinalizeAt,
	}

	rules := make([]entity.TriggerRule, 0, len(domain.Triggers))
	for _, trigger := range domain.Triggers {
		rule, err := scheduler.ParseRule(trigger, values[trigger])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
