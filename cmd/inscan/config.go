package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docker/go-units"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/adrian-budau/input-stream/inputstream"
)

// Built-in defaults; a config file overrides these, flags override both.
const (
	defaultLimit  = "1MiB"
	defaultBuffer = "64KiB"
)

// fileConfig is the TOML config file shape.
type fileConfig struct {
	Limit  string `toml:"limit"`
	Buffer string `toml:"buffer"`
	Delims string `toml:"delims"`
}

// settings is resolved configuration, sizes parsed into byte counts.
type settings struct {
	limit  int // per-token scan budget, 0 = unlimited
	buffer int
	delims string
}

// rawOptions holds the global flag values before resolution.
type rawOptions struct {
	limit   string
	buffer  string
	delims  string
	config  string
	verbose bool
}

// resolve layers flag > config file > default and parses sizes.
func (o *rawOptions) resolve(flags *pflag.FlagSet) (settings, error) {
	limit := defaultLimit
	buffer := defaultBuffer
	delims := inputstream.DefaultDelimiters

	if o.config != "" {
		data, err := os.ReadFile(o.config)
		if err != nil {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			return settings{}, fmt.Errorf("parse config %s: %w", o.config, err)
		}
		if fc.Limit != "" {
			limit = fc.Limit
		}
		if fc.Buffer != "" {
			buffer = fc.Buffer
		}
		if fc.Delims != "" {
			delims = fc.Delims
		}
		logrus.WithField("path", o.config).Debug("loaded config file")
	}

	if flags.Changed("limit") {
		limit = o.limit
	}
	if flags.Changed("buffer") {
		buffer = o.buffer
	}
	if flags.Changed("delims") {
		delims = o.delims
	}

	s := settings{delims: delims}

	if limit == "0" {
		s.limit = 0
	} else {
		n, err := units.RAMInBytes(limit)
		if err != nil || n < 0 {
			return settings{}, fmt.Errorf("invalid limit %q", limit)
		}
		s.limit = int(n)
	}

	n, err := units.RAMInBytes(buffer)
	if err != nil || n <= 0 {
		return settings{}, fmt.Errorf("invalid buffer size %q", buffer)
	}
	s.buffer = int(n)

	if s.delims == "" {
		return settings{}, fmt.Errorf("delimiter set must not be empty")
	}

	logrus.WithFields(logrus.Fields{
		"limit":  s.limit,
		"buffer": s.buffer,
	}).Debug("resolved settings")
	return s, nil
}

// newStream builds a scanning stream with the resolved settings.
func (s settings) newStream(r io.Reader) *inputstream.Stream {
	return inputstream.NewStream(r,
		inputstream.WithBufferSize(s.buffer),
		inputstream.WithDelimiters(s.delims),
	)
}

// scanString reads one token, honoring the configured budget.
func (s settings) scanString(in *inputstream.Stream) (string, error) {
	if s.limit == 0 {
		return inputstream.Scan[string](in)
	}
	return inputstream.ScanWithLimit[string](in, s.limit)
}
