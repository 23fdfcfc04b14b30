// Package config loads the application configuration from the
// environment (optionally a .env file) and an optional tuning.yaml
// carrying the gameplay constants.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	SaveDir     string
	ArchivePath string
	TuningPath  string
	// Seed is 0 for wall-clock seeding.
	Seed   int64
	Tuning Tuning
}

// Tuning is the gameplay constant set. Zero values fall back to
// Defaults at load time.
type Tuning struct {
	PreSeasonWeeks        int `yaml:"pre_season_weeks"`
	WeeklyHours           int `yaml:"weekly_hours"`
	CommitteeMeetingWeeks int `yaml:"committee_meeting_weeks"`
	RandomEventPct        int `yaml:"random_event_pct"`
	HomeAdvantage         int `yaml:"home_advantage"`
	StartingBalance       int `yaml:"starting_balance"`
	LeagueSize            int `yaml:"league_size"`
	PromotedTeams         int `yaml:"promoted_teams"`
	RelegatedTeams        int `yaml:"relegated_teams"`
	PlayerClubTier        int `yaml:"player_club_tier"`
}

// Defaults is the shipped tuning.
func Defaults() Tuning {
	return Tuning{
		PreSeasonWeeks:        4,
		WeeklyHours:           20,
		CommitteeMeetingWeeks: 4,
		RandomEventPct:        30,
		HomeAdvantage:         2,
		StartingBalance:       500,
		LeagueSize:            12,
		PromotedTeams:         1,
		RelegatedTeams:        2,
		PlayerClubTier:        4,
	}
}

// Load reads .env if present, then the environment, then tuning.
func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		SaveDir:     envOr("TOUCHLINE_SAVE_DIR", ".saves"),
		ArchivePath: os.Getenv("TOUCHLINE_ARCHIVE_DB"),
		TuningPath:  os.Getenv("TOUCHLINE_TUNING"),
	}

	if raw := os.Getenv("TOUCHLINE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TOUCHLINE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	tuning, err := LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}
	cfg.Tuning = tuning
	return cfg, nil
}

// LoadTuning reads a tuning file, filling unset fields from Defaults.
// An empty path returns Defaults untouched.
func LoadTuning(path string) (Tuning, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	var loaded Tuning
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	merge(&t, loaded)
	return t, nil
}

func merge(dst *Tuning, src Tuning) {
	if src.PreSeasonWeeks > 0 {
		dst.PreSeasonWeeks = src.PreSeasonWeeks
	}
	if src.WeeklyHours > 0 {
		dst.WeeklyHours = src.WeeklyHours
	}
	if src.CommitteeMeetingWeeks > 0 {
		dst.CommitteeMeetingWeeks = src.CommitteeMeetingWeeks
	}
	if src.RandomEventPct > 0 {
		dst.RandomEventPct = src.RandomEventPct
	}
	if src.HomeAdvantage > 0 {
		dst.HomeAdvantage = src.HomeAdvantage
	}
	if src.StartingBalance > 0 {
		dst.StartingBalance = src.StartingBalance
	}
	if src.LeagueSize > 0 {
		dst.LeagueSize = src.LeagueSize
	}
	if src.PromotedTeams > 0 {
		dst.PromotedTeams = src.PromotedTeams
	}
	if src.RelegatedTeams > 0 {
		dst.RelegatedTeams = src.RelegatedTeams
	}
	if src.PlayerClubTier > 0 {
		dst.PlayerClubTier = src.PlayerClubTier
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
