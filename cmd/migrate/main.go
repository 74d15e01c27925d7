package main

import (
	"paycoin_backend/internal/config" // Custom import path (Config)
	"paycoin_backend/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration against the configured database
}
