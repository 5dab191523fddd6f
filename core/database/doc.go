// Package database handles connections to the local order database.
//
// It wraps GORM and supports two drivers: sqlite (the default), where the
// whole store is a single on-disk file owned by this process, and mysql for
// deployments that already run one.
//
// # Connect
//
// Connect establishes the connection according to Config. For sqlite the
// parent directory of the database file is created on demand and the
// connection pool is capped at a single connection so write transactions
// never contend at the driver level.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
