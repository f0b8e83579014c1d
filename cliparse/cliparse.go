package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	OrgName       string
	BootstrapUser string
	BootstrapPass string
}

// DriverName maps the configured database type to its database/sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ward-survey", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.OrgName, "org", "", "Organisation name")

	// Bootstrap account (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.BootstrapUser, "bootstrap-user", "", "Operator account to create at startup (prefer env)")
	fs.StringVar(&cfg.BootstrapPass, "bootstrap-pass", "", "Password for the bootstrap account (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4180 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:wardsurvey.db"
	}

	if cfg.OrgName == "" {
		cfg.OrgName = os.Getenv("ORG_NAME")
		if cfg.OrgName == "" {
			cfg.OrgName = "Municipal Corporation"
		}
	}

	if cfg.BootstrapUser == "" {
		cfg.BootstrapUser = os.Getenv("BOOTSTRAP_USER")
	}
	if cfg.BootstrapPass == "" {
		cfg.BootstrapPass = os.Getenv("BOOTSTRAP_PASS")
	}
	if cfg.BootstrapUser != "" && cfg.BootstrapPass == "" {
		return Config{}, errors.New("BOOTSTRAP_PASS required when BOOTSTRAP_USER is set")
	}

	return cfg, nil
}
