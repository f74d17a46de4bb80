package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/alfredjeanlab/bdayd/internal/countdown"
	"github.com/alfredjeanlab/bdayd/internal/gate"
)

type Config struct {
	HTTPAddr     string // BDAY_HTTP_ADDR (default ":8080")
	SMTPHost     string // BDAY_SMTP_HOST (default "smtp.gmail.com")
	SMTPPort     int    // BDAY_SMTP_PORT (default 587)
	SMTPUser     string // BDAY_SMTP_USER (required)
	SMTPPassword string // BDAY_SMTP_PASSWORD (required)
	APIKey       string // BDAY_API_KEY (required; guards POST /trigger-email)
	NATSURL      string // BDAY_NATS_URL (optional, empty = no events)

	Timezone   string   // BDAY_TIMEZONE (default "Asia/Kolkata")
	TargetDate string   // BDAY_TARGET_DATE (default "2025-03-28", YYYY-MM-DD)
	Name       string   // BDAY_NAME (default "Rudrry")
	Recipients []string // BDAY_RECIPIENTS (comma separated; default SMTP user)
	Operator   string   // BDAY_OPERATOR_EMAIL (default SMTP user)

	CatalogPath string        // BDAY_CATALOG (optional TOML catalog override)
	SessionTTL  time.Duration // BDAY_SESSION_TTL (default 30m)

	// DailySendTime is the HH:MM wall-clock time (in Timezone) of the daily
	// countdown email; the preparation notice goes out five minutes earlier.
	DailySendTime string // BDAY_DAILY_SEND (default "17:55")

	// Gate secrets for the secret-page flow.
	GatePassword string // BDAY_GATE_PASSWORD
	GateAnswer1  string // BDAY_GATE_ANSWER1
	GateAnswer2  string // BDAY_GATE_ANSWER2
	GateAnswer3  string // BDAY_GATE_ANSWER3
}

func Load() (*Config, error) {
	// Mirror dotenv: a .env file fills in anything the environment lacks.
	_ = godotenv.Load()

	c := &Config{
		HTTPAddr:      envOrDefault("BDAY_HTTP_ADDR", ":8080"),
		SMTPHost:      envOrDefault("BDAY_SMTP_HOST", "smtp.gmail.com"),
		SMTPUser:      os.Getenv("BDAY_SMTP_USER"),
		SMTPPassword:  os.Getenv("BDAY_SMTP_PASSWORD"),
		APIKey:        os.Getenv("BDAY_API_KEY"),
		NATSURL:       os.Getenv("BDAY_NATS_URL"),
		Timezone:      envOrDefault("BDAY_TIMEZONE", countdown.DefaultTimezone),
		TargetDate:    envOrDefault("BDAY_TARGET_DATE", "2025-03-28"),
		Name:          envOrDefault("BDAY_NAME", "Rudrry"),
		Operator:      os.Getenv("BDAY_OPERATOR_EMAIL"),
		CatalogPath:   os.Getenv("BDAY_CATALOG"),
		DailySendTime: envOrDefault("BDAY_DAILY_SEND", "17:55"),
		GatePassword:  os.Getenv("BDAY_GATE_PASSWORD"),
		GateAnswer1:   os.Getenv("BDAY_GATE_ANSWER1"),
		GateAnswer2:   os.Getenv("BDAY_GATE_ANSWER2"),
		GateAnswer3:   os.Getenv("BDAY_GATE_ANSWER3"),
	}
	if c.SMTPUser == "" {
		return nil, fmt.Errorf("BDAY_SMTP_USER is required")
	}
	if c.SMTPPassword == "" {
		return nil, fmt.Errorf("BDAY_SMTP_PASSWORD is required")
	}
	if c.APIKey == "" {
		return nil, fmt.Errorf("BDAY_API_KEY is required")
	}

	portStr := envOrDefault("BDAY_SMTP_PORT", "587")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("BDAY_SMTP_PORT: %w", err)
	}
	c.SMTPPort = port

	if raw := os.Getenv("BDAY_RECIPIENTS"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				c.Recipients = append(c.Recipients, addr)
			}
		}
	}
	if len(c.Recipients) == 0 {
		c.Recipients = []string{c.SMTPUser}
	}
	if c.Operator == "" {
		c.Operator = c.SMTPUser
	}

	ttlStr := envOrDefault("BDAY_SESSION_TTL", "30m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("BDAY_SESSION_TTL: %w", err)
	}
	c.SessionTTL = ttl

	if _, _, err := ParseClock(c.DailySendTime); err != nil {
		return nil, fmt.Errorf("BDAY_DAILY_SEND: %w", err)
	}

	return c, nil
}

// GateSecrets builds the gate configuration, falling back to the stock
// secrets for any value left unset.
func (c *Config) GateSecrets() gate.Secrets {
	s := gate.DefaultSecrets()
	if c.GatePassword != "" {
		s.Password = c.GatePassword
	}
	if c.GateAnswer1 != "" {
		s.Answer1 = c.GateAnswer1
	}
	if c.GateAnswer2 != "" {
		s.Answer2 = c.GateAnswer2
	}
	if c.GateAnswer3 != "" {
		s.Answer3 = c.GateAnswer3
	}
	return s
}

// ParseClock parses an "HH:MM" wall-clock time.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid HH:MM time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
