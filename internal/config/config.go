package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"printbot/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	OwnerID  int64

	// ReportChatID receives the daily report and owner alerts; defaults to
	// the owner's own chat
	ReportChatID int64

	ReportPeriod    time.Duration
	WelcomeCooldown time.Duration
	ScratchDir      string

	Prices domain.PriceTable
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		ScratchDir: getEnv("SCRATCH_DIR", "temp"),
		Prices:     domain.DefaultPriceTable(),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	ownerID, err := strconv.ParseInt(os.Getenv("OWNER_ID"), 10, 64)
	if err != nil || ownerID == 0 {
		return nil, fmt.Errorf("OWNER_ID is required and must be a numeric chat id")
	}
	cfg.OwnerID = ownerID

	cfg.ReportChatID = ownerID
	if raw := os.Getenv("REPORT_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("REPORT_CHAT_ID must be a numeric chat id: %w", err)
		}
		cfg.ReportChatID = id
	}

	cfg.ReportPeriod, err = getDuration("REPORT_PERIOD", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.WelcomeCooldown, err = getDuration("WELCOME_COOLDOWN", 12*time.Hour)
	if err != nil {
		return nil, err
	}

	if cfg.Prices.RateBelow50, err = getInt("PRICE_PER_PAGE_LT50", cfg.Prices.RateBelow50); err != nil {
		return nil, err
	}
	if cfg.Prices.RateAtOrAbove50, err = getInt("PRICE_PER_PAGE_GTE50", cfg.Prices.RateAtOrAbove50); err != nil {
		return nil, err
	}
	if cfg.Prices.CoverCost, err = getInt("COVER_BINDING_COST", cfg.Prices.CoverCost); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 24h: %w", key, err)
	}
	return d, nil
}
