// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Backend selection: memory, sheets or sqlite
	DataBackend string

	// SQLite
	SQLiteDBPath string

	// Google Sheets
	GoogleSpreadsheetID string

	// AMQP (optional: empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Business day
	OpenHour        int
	CloseHour       int
	SlotIntervalMin int

	// Slot policy
	AllowQuickShare bool
	QuickService    string

	// Rosters
	Staff          []string
	Services       []string
	PaymentMethods []string

	// Login allow-list, "user:pass,user2:pass2"
	AuthUsers string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8081"),
		DataBackend: getEnv("DATA_BACKEND", "memory"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/registro.db"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "registro"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "day_saved"),

		OpenHour:        getEnvInt("OPEN_HOUR", 8),
		CloseHour:       getEnvInt("CLOSE_HOUR", 22),
		SlotIntervalMin: getEnvInt("SLOT_INTERVAL_MIN", 30),

		AllowQuickShare: getEnvBool("SLOT_ALLOW_QUICK_SHARE", false),
		QuickService:    getEnv("QUICK_SERVICE", "Pezim"),

		Staff:          getEnvList("STAFF", []string{"Aluízio", "Lucas Borges"}),
		Services:       getEnvList("SERVICES", []string{"Degradê", "Pezim", "Social", "Tradicional", "Visagismo"}),
		PaymentMethods: getEnvList("PAYMENT_METHODS", []string{"Pix", "Dinheiro", "Cartão"}),

		AuthUsers: getEnv("AUTH_USERS", "lb:cortesnobres"),
	}
}

// Validate checks the configuration and returns a combined error when
// anything is off.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sheets", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be one of [memory sheets sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		problems = append(problems, "SQLite database path cannot be empty when using sqlite backend")
	}
	if c.DataBackend == "sheets" && c.GoogleSpreadsheetID == "" {
		problems = append(problems, "Google Spreadsheet ID is required when using sheets backend")
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL %q: %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme %q: must be amqp or amqps", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.OpenHour < 0 || c.OpenHour > 23 {
		problems = append(problems, fmt.Sprintf("invalid opening hour %d", c.OpenHour))
	}
	if c.CloseHour < 0 || c.CloseHour > 23 {
		problems = append(problems, fmt.Sprintf("invalid closing hour %d", c.CloseHour))
	}
	if c.CloseHour < c.OpenHour {
		problems = append(problems, fmt.Sprintf("closing hour %d before opening hour %d", c.CloseHour, c.OpenHour))
	}
	if c.SlotIntervalMin < 5 || c.SlotIntervalMin > 240 {
		problems = append(problems, fmt.Sprintf("invalid slot interval %d: must be between 5 and 240 minutes", c.SlotIntervalMin))
	}

	if len(c.Staff) == 0 {
		problems = append(problems, "staff roster cannot be empty")
	}
	if len(c.Services) == 0 {
		problems = append(problems, "service list cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
