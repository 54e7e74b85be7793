package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/swasthya-setu/backend/internal/pg"

	"gopkg.in/yaml.v3"
)

type Server struct {
	HTTPAddr        string        `yaml:"httpAddr"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

func (s Server) Validate() error {
	if s.HTTPAddr == "" {
		return errors.New("server.httpAddr is required")
	}

	return nil
}

type Logging struct {
	Env       string `yaml:"env"`
	Service   string `yaml:"service"`
	Version   string `yaml:"version"`
	Backend   string `yaml:"backend"`
	AddSource bool   `yaml:"addSource"`
	Debug     bool   `yaml:"debug"`
}

type Postgres struct {
	DSN               string        `yaml:"dsn"`
	MaxConns          int32         `yaml:"maxConns"`
	MinConns          int32         `yaml:"minConns"`
	MaxConnLifetime   time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime   time.Duration `yaml:"maxConnIdleTime"`
	HealthCheckPeriod time.Duration `yaml:"healthCheckPeriod"`
	ApplicationName   string        `yaml:"applicationName"`
}

func (p Postgres) Validate() error {
	if p.DSN == "" {
		return errors.New("postgres.dsn is required")
	}

	return nil
}

func (p Postgres) ToPGConfig() pg.Config {
	return pg.Config{
		DSN:               p.DSN,
		MaxConns:          p.MaxConns,
		MinConns:          p.MinConns,
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		ApplicationName:   p.ApplicationName,
	}
}

type Password struct {
	MinLength  int `yaml:"minLength"`
	BcryptCost int `yaml:"bcryptCost"`
}

func (p Password) Validate() error {
	if p.MinLength < 6 {
		return errors.New("security.password.minLength must be >= 6")
	}
	if p.BcryptCost != 0 && (p.BcryptCost < 4 || p.BcryptCost > 18) {
		return errors.New("security.password.bcryptCost must be in [4..18]")
	}

	return nil
}

type JWT struct {
	PrivateKeyPath string        `yaml:"privateKeyPath"` // обязательно
	PublicKeyPath  string        `yaml:"publicKeyPath"`  // обязательно
	Issuer         string        `yaml:"issuer"`         // обязательно
	Audience       string        `yaml:"audience"`
	AccessTTL      time.Duration `yaml:"accessTTL"`  // напр. 15m
	RefreshTTL     time.Duration `yaml:"refreshTTL"` // напр. 720h
	ClockSkew      time.Duration `yaml:"clockSkew"`  // напр. 30s
}

func (j JWT) Validate() error {
	if j.PrivateKeyPath == "" {
		return errors.New("security.jwt.privateKeyPath is required")
	}
	if j.PublicKeyPath == "" {
		return errors.New("security.jwt.publicKeyPath is required")
	}
	if j.Issuer == "" {
		return errors.New("security.jwt.issuer is required")
	}
	if j.AccessTTL <= 0 {
		return errors.New("security.jwt.accessTTL must be > 0")
	}
	if j.RefreshTTL <= 0 {
		return errors.New("security.jwt.refreshTTL must be > 0")
	}
	if j.ClockSkew < 0 || j.ClockSkew > time.Minute {
		return errors.New("security.jwt.clockSkew must be in [0..1m]")
	}

	return nil
}

type Security struct {
	Password Password `yaml:"password"`
	JWT      JWT      `yaml:"jwt"`
}

func (s Security) Validate() error {
	if err := s.Password.Validate(); err != nil {
		return err
	}
	if err := s.JWT.Validate(); err != nil {
		return err
	}

	return nil
}

type Signaling struct {
	PingEvery time.Duration `yaml:"pingEvery"`
}

func (s Signaling) Validate() error {
	if s.PingEvery < 0 {
		return errors.New("signaling.pingEvery must be >= 0")
	}

	return nil
}

type Config struct {
	Server    Server    `yaml:"server"`
	Security  Security  `yaml:"security"`
	Postgres  Postgres  `yaml:"postgres"`
	Logging   Logging   `yaml:"logging"`
	Signaling Signaling `yaml:"signaling"`
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Security.Validate(); err != nil {
		return err
	}
	if err := c.Postgres.Validate(); err != nil {
		return err
	}
	if err := c.Signaling.Validate(); err != nil {
		return err
	}

	return nil
}

func LoadConfig(path ...string) (*Config, error) {
	filename := "config/config.yaml"
	if len(path) > 0 && strings.TrimSpace(path[0]) != "" {
		filename = path[0]
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
