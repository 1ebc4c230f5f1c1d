package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
	JWT   struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Auth struct {
		// TrustTokenRole skips the per-request role lookup and trusts the
		// role claim embedded in the token. Default is the fresh lookup.
		TrustTokenRole bool
	}
	Admin struct {
		Name     string
		Email    string
		Password string
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 3001)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "booking")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP:  HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB:    DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		Redis: Redis{Addr: v.GetString("redis.addr"), Password: v.GetString("redis.password"), DB: v.GetInt("redis.db")},
	}
	// The signing key is a deployment secret; there is no default on purpose.
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret is required (generate one with cmd/gensecret)")
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "booking-backend"
	}
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	cfg.Auth.TrustTokenRole = v.GetBool("auth.trust_token_role")
	cfg.Admin.Name = v.GetString("admin.name")
	cfg.Admin.Email = v.GetString("admin.email")
	cfg.Admin.Password = v.GetString("admin.password")
	return cfg, nil
}
