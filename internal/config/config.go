// Package config resolves knightpath settings from command-line flags with
// environment fallbacks. Flags always win over the environment.
//
// Environment:
//
//	KNIGHTPATH_BOARD       board file ("-" for stdin)
//	KNIGHTPATH_ADDR        listen address; enables serve mode
//	PORT                   listen port, used when KNIGHTPATH_ADDR is unset
//	KNIGHTPATH_LOG_LEVEL   logrus level name
//	KNIGHTPATH_LOG_FORMAT  "text" or "json"
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/route"
)

// ErrMissingEnd indicates a one-shot search was requested without -end.
var ErrMissingEnd = errors.New("config: -end is required unless serving")

// Config holds resolved settings.
type Config struct {
	BoardPath string
	Start     board.Position
	End       board.Position
	Strategy  route.Strategy
	Sight     board.SightMode
	Show      bool

	// Addr, when non-empty, runs the HTTP API instead of a one-shot search.
	Addr string

	LogLevel  logrus.Level
	LogFormat string
}

// Serving reports whether the HTTP API should be started.
func (c Config) Serving() bool { return c.Addr != "" }

// Load parses args (without the program name). getenv supplies environment
// fallbacks; pass os.Getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("knightpath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addrDefault := getenv("KNIGHTPATH_ADDR")
	if addrDefault == "" && getenv("PORT") != "" {
		addrDefault = ":" + getenv("PORT")
	}

	boardPath := fs.String("board", envOr(getenv, "KNIGHTPATH_BOARD", "-"), `board file, "-" for stdin`)
	start := fs.String("start", "0,0", "start position x,y")
	end := fs.String("end", "", "end position x,y")
	strategy := fs.String("strategy", "shortest", "search strategy: any|shortest|fewest")
	sight := fs.String("sight", "rect", "line of sight: rect|line|none")
	show := fs.Bool("show", false, "print a board frame for every move")
	addr := fs.String("serve", addrDefault, "serve the HTTP API on this address")
	level := fs.String("log-level", envOr(getenv, "KNIGHTPATH_LOG_LEVEL", "info"), "log level")
	format := fs.String("log-format", envOr(getenv, "KNIGHTPATH_LOG_FORMAT", "text"), "log format: text|json")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Config{
		BoardPath: *boardPath,
		Show:      *show,
		Addr:      *addr,
		LogFormat: strings.ToLower(*format),
	}

	var err error
	if cfg.LogLevel, err = logrus.ParseLevel(*level); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("config: unknown log format %q", *format)
	}
	if cfg.Strategy, err = route.ParseStrategy(*strategy); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Sight, err = board.ParseSightMode(*sight); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Start, err = ParsePosition(*start); err != nil {
		return Config{}, fmt.Errorf("config: -start: %w", err)
	}
	if *end == "" {
		if !cfg.Serving() {
			return Config{}, ErrMissingEnd
		}
	} else if cfg.End, err = ParsePosition(*end); err != nil {
		return Config{}, fmt.Errorf("config: -end: %w", err)
	}

	return cfg, nil
}

// ParsePosition parses "x,y" into a Position.
func ParsePosition(s string) (board.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return board.Position{}, fmt.Errorf("position %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: %w", s, err)
	}

	return board.Pos(x, y), nil
}

// NewLogger builds a logrus logger writing to w at the configured level and format.
func (c Config) NewLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return l
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}

	return def
}
