package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries runtime options for sysdash. The command takes no flags;
// the only overrides come from the environment.
type Config struct {
	Interval    time.Duration
	PollTimeout time.Duration
	Plain       bool
	Debug       bool
}

func Default() Config {
	return Config{
		Interval:    2 * time.Second,
		PollTimeout: 200 * time.Millisecond,
		Plain:       false,
		Debug:       false,
	}
}

// FromEnv applies SYSDASH_PLAIN and SYSDASH_DEBUG to Default.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()
	if v, ok := lookup("SYSDASH_PLAIN"); ok {
		cfg.Plain = parseBool(v)
	}
	if v, ok := lookup("SYSDASH_DEBUG"); ok {
		cfg.Debug = parseBool(v)
	}
	return cfg
}

// Interactive reports whether the full-screen dashboard should run. It needs
// a terminal on stdout and must not have been turned off.
func (c Config) Interactive(stdoutIsTTY bool) bool {
	return stdoutIsTTY && !c.Plain
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
