// Package config loads scenario files and turns them into simulation
// engines.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/settle/calendar"
	"github.com/rustyeddy/settle/sim"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvJournalType = "SETTLE_JOURNAL_TYPE"
	EnvDBPath      = "SETTLE_DB_PATH"
)

// Journal types.
const (
	JournalCSV    = "csv"
	JournalSQLite = "sqlite"
	JournalNone   = "none"
)

// Config represents a complete scenario.
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Periods    []PeriodConfig   `json:"periods,omitempty" yaml:"periods,omitempty"`
	Payments   []PaymentConfig  `json:"payments,omitempty" yaml:"payments,omitempty"`
	Schedules  []ScheduleConfig `json:"schedules,omitempty" yaml:"schedules,omitempty"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// AccountConfig holds the opening state of the account.
type AccountConfig struct {
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name,omitempty" yaml:"name,omitempty"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// SimulationConfig is the simulated range. End is exclusive.
type SimulationConfig struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type PeriodConfig struct {
	Start string          `json:"start" yaml:"start"`
	End   string          `json:"end" yaml:"end"`
	Rate  decimal.Decimal `json:"rate" yaml:"rate"`
}

type PaymentConfig struct {
	Date        string          `json:"date" yaml:"date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// ScheduleConfig is a recurring payment. Every takes values such as "14d",
// "2w", "1m" or "1y".
type ScheduleConfig struct {
	First       string          `json:"first" yaml:"first"`
	Until       string          `json:"until" yaml:"until"`
	Every       string          `json:"every" yaml:"every"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	RunsFile      string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	SnapshotsFile string `json:"snapshots_file,omitempty" yaml:"snapshots_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads and validates configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load parses a YAML or JSON file without validating it, so environment
// overrides can be applied first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		*cfg = Config{}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks every date, interval and journal setting.
func (c *Config) Validate() error {
	if c.Account.ID == "" {
		return fmt.Errorf("account.id is required")
	}

	if _, _, err := c.Range(); err != nil {
		return err
	}

	for i, p := range c.Periods {
		if _, err := p.period(); err != nil {
			return fmt.Errorf("periods[%d]: %w", i, err)
		}
	}
	for i, p := range c.Payments {
		if _, err := p.payment(); err != nil {
			return fmt.Errorf("payments[%d]: %w", i, err)
		}
	}
	for i, s := range c.Schedules {
		sched, err := s.schedule()
		if err != nil {
			return fmt.Errorf("schedules[%d]: %w", i, err)
		}
		if _, err := sched.Payments(); err != nil {
			return fmt.Errorf("schedules[%d]: %w", i, err)
		}
	}

	switch c.Journal.Type {
	case JournalNone:
	case JournalCSV:
		if c.Journal.RunsFile == "" || c.Journal.SnapshotsFile == "" {
			return fmt.Errorf("journal runs_file and snapshots_file required for CSV type")
		}
	case JournalSQLite:
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Range returns the simulated range [start, end).
func (c *Config) Range() (time.Time, time.Time, error) {
	start, err := calendar.ParseDay(c.Simulation.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("simulation.start: %w", err)
	}
	end, err := calendar.ParseDay(c.Simulation.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("simulation.end: %w", err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("simulation.end %s is not after start %s: %w",
			c.Simulation.End, c.Simulation.Start, sim.ErrInvalidRange)
	}
	return start, end, nil
}

// Engine builds a simulation engine holding every period, payment and
// expanded schedule of the scenario.
func (c *Config) Engine() (*sim.Engine, error) {
	e := sim.NewEngine()

	for i, pc := range c.Periods {
		p, err := pc.period()
		if err != nil {
			return nil, fmt.Errorf("periods[%d]: %w", i, err)
		}
		e.AddInterestPeriod(p)
	}
	for i, pc := range c.Payments {
		p, err := pc.payment()
		if err != nil {
			return nil, fmt.Errorf("payments[%d]: %w", i, err)
		}
		e.AddPayment(p)
	}
	for i, sc := range c.Schedules {
		s, err := sc.schedule()
		if err != nil {
			return nil, fmt.Errorf("schedules[%d]: %w", i, err)
		}
		if err := e.AddSchedule(s); err != nil {
			return nil, fmt.Errorf("schedules[%d]: %w", i, err)
		}
	}
	return e, nil
}

func (p PeriodConfig) period() (sim.InterestPeriod, error) {
	start, err := calendar.ParseDay(p.Start)
	if err != nil {
		return sim.InterestPeriod{}, err
	}
	end, err := calendar.ParseDay(p.End)
	if err != nil {
		return sim.InterestPeriod{}, err
	}
	return sim.NewInterestPeriod(start, end, p.Rate)
}

func (p PaymentConfig) payment() (sim.Payment, error) {
	date, err := calendar.ParseDay(p.Date)
	if err != nil {
		return sim.Payment{}, err
	}
	return sim.NewPayment(date, p.Amount, p.Description), nil
}

func (s ScheduleConfig) schedule() (sim.Schedule, error) {
	first, err := calendar.ParseDay(s.First)
	if err != nil {
		return sim.Schedule{}, err
	}
	until, err := calendar.ParseDay(s.Until)
	if err != nil {
		return sim.Schedule{}, err
	}
	every, err := sim.ParseInterval(s.Every)
	if err != nil {
		return sim.Schedule{}, err
	}
	return sim.Schedule{
		First:       first,
		Until:       until,
		Every:       every,
		Amount:      s.Amount,
		Description: s.Description,
	}, nil
}

// LoadEnv loads variables from the given .env files. With no paths it reads
// ./.env when present.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// ApplyEnv overrides journal settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvJournalType); v != "" {
		c.Journal.Type = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Journal.DBPath = v
	}
}

// Default returns a one-year savings scenario.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:      "SAV-001",
			Name:    "savings",
			Balance: decimal.NewFromInt(10000),
		},
		Simulation: SimulationConfig{
			Start: "2024-01-01",
			End:   "2025-01-01",
		},
		Periods: []PeriodConfig{
			{Start: "2024-01-01", End: "2025-01-01", Rate: decimal.RequireFromString("0.05")},
		},
		Schedules: []ScheduleConfig{
			{First: "2024-01-05", Until: "2024-12-31", Every: "14d", Amount: decimal.NewFromInt(200), Description: "savings transfer"},
		},
		Journal: JournalConfig{
			Type:          JournalCSV,
			RunsFile:      "./runs.csv",
			SnapshotsFile: "./snapshots.csv",
		},
	}
}
