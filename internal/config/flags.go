package config

import (
	"flag"
	"fmt"
	"os"
)

// parseFlags populates Config fields from command-line flags. See the
// package documentation for the flag list. Unknown backends cause a panic,
// as do malformed flags.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], "-a", "-w", "-s", "-d", "-l", "-b", "-g", "-u", "-p", "-e")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AccountsFile, "a", cfg.AccountsFile, "credential file (json backend)")
	fs.StringVar(&cfg.UsersDir, "w", cfg.UsersDir, "users workspace directory")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "credential backend: json, sqlite, postgres")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for ledger export")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 password")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	switch cfg.StoreBackend {
	case BackendJSON, BackendSQLite, BackendPostgres:
	default:
		panic(fmt.Sprintf("unknown store backend %q", cfg.StoreBackend))
	}
}
