package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	LogJSON  bool   `toml:"log_json"`

	Database   DatabaseConfigs   `toml:"database"`
	ScyllaDB   ScyllaDBConfigs   `toml:"scylladb"`
	Redis      RedisConfigs      `toml:"redis"`
	ApiServer  APIServerConfigs  `toml:"api_server"`
	Auth       AuthConfigs       `toml:"auth"`
	Message    MessageConfigs    `toml:"message"`
	Permission PermissionConfigs `toml:"permission"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ScyllaDBConfigs struct {
	Addr              []string `toml:"addr"`
	KeySpace          string   `toml:"keyspace"`
	Timeout           Duration `toml:"timeout"`
	ReplicationFactor int      `toml:"replication_factor"`
}

type RedisConfigs struct {
	Addr         string   `toml:"addr"`
	UserCacheTTL Duration `toml:"user_cache_ttl"`
}

type APIServerConfigs struct {
	Host         string   `toml:"host"`
	Port         string   `toml:"port"`
	DefaultLimit int      `toml:"default_limit"`
	MaxLimit     int      `toml:"max_limit"`
	AllowOrigins []string `toml:"allow_origins"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Expiration Duration `toml:"expiration"`
}

type MessageConfigs struct {
	// MaxScanBuckets bounds how many buckets a single page request may query.
	MaxScanBuckets int `toml:"max_scan_buckets"`
}

type PermissionConfigs struct {
	// RoleResolution is either "merge" or "first".
	RoleResolution string `toml:"role_resolution"`
}

// Duration is a time.Duration read from strings like "10s" or "1h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "ekranoplan",
			User:     "mysql",
			Password: "mysql",
		},
		ScyllaDB: ScyllaDBConfigs{
			Addr:              []string{"localhost:9042"},
			KeySpace:          "ekranoplan",
			Timeout:           Duration{5 * time.Second},
			ReplicationFactor: 1,
		},
		Redis: RedisConfigs{
			Addr:         "localhost:6379",
			UserCacheTTL: Duration{time.Minute},
		},
		ApiServer: APIServerConfigs{
			Host:         "localhost",
			Port:         "8080",
			DefaultLimit: 50,
			MaxLimit:     100,
			AllowOrigins: []string{"*"},
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: Duration{24 * time.Hour},
			},
		},
		Message: MessageConfigs{
			MaxScanBuckets: 64,
		},
		Permission: PermissionConfigs{
			RoleResolution: "merge",
		},
	}
}

// Load reads the TOML file at path on top of Default. An empty path returns
// the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	return cfg, nil
}
