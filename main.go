package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/opencivic/ward-survey/auth"
	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/db"
	"github.com/opencivic/ward-survey/router"
)

func main() {
	var err error

	// Load .env if present; real environment always wins
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (sqlite by default, postgres in production)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.DatabaseType == "sqlite" {
		// modernc sqlite: a single writer avoids SQLITE_BUSY under load
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Provision the bootstrap operator account if configured
	if cfg.BootstrapUser != "" {
		if err := db.EnsureUser(dbConn, cfg.BootstrapUser, cfg.BootstrapPass, cfg.OrgName); err != nil {
			slog.Error("bootstrap user creation failed", "error", err)
			os.Exit(1)
		}
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// Background sweeper: sessions lapse after 7 days even without a request
	stopSweep := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := auth.DeleteExpiredSessions(dbConn, time.Now())
				if err != nil {
					slog.Error("session sweep failed", "error", err)
				} else if n > 0 {
					slog.Info("expired sessions removed", "count", n)
				}
			case <-stopSweep:
				return
			}
		}
	}()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		close(stopSweep)
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
