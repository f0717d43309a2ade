package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used only for unmarshalling the config file. Pointer
// fields distinguish "absent" from "empty" so a partial file does not wipe
// defaults.
type JsonConfig struct {
	AccountsFile   *string `json:"accounts_file"`
	UsersDir       *string `json:"users_dir"`
	StoreBackend   *string `json:"store_backend"`
	DatabaseDSN    *string `json:"database_dsn"`
	LogLevel       *string `json:"log_level"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3RootUser     *string `json:"s3_root_user"`
	S3RootPassword *string `json:"s3_root_password"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Panics on read or unmarshal errors: a config file that was asked for
// but cannot be used is a start-up failure.
func parseJson(cfg *Config) {
	path := configFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.AccountsFile, jc.AccountsFile)
	overlay(&cfg.UsersDir, jc.UsersDir)
	overlay(&cfg.StoreBackend, jc.StoreBackend)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3RootUser, jc.S3RootUser)
	overlay(&cfg.S3RootPassword, jc.S3RootPassword)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
