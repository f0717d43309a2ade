package config

// Credential store backends.
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds runtime settings for the portal.
//
// Fields:
//   - AccountsFile: JSON credential file used by the json backend.
//   - UsersDir: root of the per-user workspaces holding the CSV ledgers.
//   - StoreBackend: one of BackendJSON, BackendSQLite, BackendPostgres.
//   - DatabaseDSN: DSN for the SQL backends (file path for sqlite).
//   - LogLevel: slog level name.
//   - S3*: object storage used by the export command.
type Config struct {
	AccountsFile   string
	UsersDir       string
	StoreBackend   string
	DatabaseDSN    string
	LogLevel       string
	S3Bucket       string
	S3Region       string
	S3RootUser     string
	S3RootPassword string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with the layout the portal has always used:
// user_data.json next to a users/ directory.
func (c *Config) LoadDefaults() {
	c.AccountsFile = "user_data.json"
	c.UsersDir = "users"
	c.StoreBackend = BackendJSON
	c.DatabaseDSN = "gophmarks.db"
	c.LogLevel = "info"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3BaseEndpoint = ""
}

// ExportEnabled reports whether a bucket is configured.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
