// Package config loads runtime configuration for the gophmarks portal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   path of the JSON credential file
//	-w string   root directory of per-user workspaces
//	-s string   credential backend: json, sqlite or postgres
//	-d string   database DSN for the sqlite/postgres backends
//	-l string   log level: debug, info, warn, error
//	-b string   S3 bucket for ledger export (empty disables export)
//	-g string   S3 region
//	-u string   S3 access user
//	-p string   S3 access password
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//
// # JSON schema
//
//	{
//	  "accounts_file": "user_data.json",
//	  "users_dir": "users",
//	  "store_backend": "json",
//	  "database_dsn": "gophmarks.db",
//	  "log_level": "info",
//	  "s3_bucket": "marks",
//	  "s3_region": "us-east-1",
//	  "s3_root_user": "admin",
//	  "s3_root_password": "secretpassword",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/"
//	}
//
// Keys missing from the JSON file keep their previous value.
package config
