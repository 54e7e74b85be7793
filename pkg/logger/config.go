package logger

import "log/slog"

type Backend string

const (
	BackendStd Backend = "std" // text handler, readable in dev
	BackendZap Backend = "zap" // JSON via slog-zap, sampled
)

type Config struct {
	// Common attrs stamped on every record
	Service    string
	Version    string
	InstanceID string

	// Output control
	Level   slog.Level
	Env     Env
	Backend Backend // default: zap for stage/prod, std for dev
	Debug   bool

	// Zap sampling
	SampleInitial    int
	SampleThereafter int

	AddSource bool
}
