// Package config provides configuration management for the order reconciler.
//
// It utilizes Viper for loading configuration from environment variables,
// config files (config.yaml), and command-line flags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: local order database (sqlite file or MySQL)
//   - Storage: S3/MinIO credentials and snapshot bucket settings
//   - Sheets: spreadsheet ledger identifiers and ranges
//   - Credentials: spreadsheet service-account identity and key
//   - OrderAPI: order-management API application credentials
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
