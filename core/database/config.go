package database

// Config holds configuration for the local database.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	// sqlite is the default: the order store is a single on-disk file
	// owned by this process.
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"data/orders.db"`
	// Host is the database host (mysql only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql only).
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the connection timeout in seconds (mysql only).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
