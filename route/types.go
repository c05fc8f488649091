package route

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/knightpath/board"
)

var (
	// ErrNoPath indicates the end cell has no predecessor chain to the start.
	ErrNoPath = errors.New("route: no path found")

	// ErrReconstructionCycle indicates the predecessor walk did not reach the
	// start within the step limit. Only a malformed map can cause it.
	ErrReconstructionCycle = errors.New("route: predecessor walk exceeded step limit")

	// ErrInvalidSequence indicates a reconstructed sequence failed validation.
	ErrInvalidSequence = errors.New("route: sequence failed validation")

	// ErrUnknownStrategy indicates an unrecognised search strategy.
	ErrUnknownStrategy = errors.New("route: unknown strategy")

	// ErrNilGraph indicates that a nil *board.Graph was passed to Find.
	ErrNilGraph = errors.New("route: graph is nil")
)

// Strategy selects the search used by Find.
type Strategy int

const (
	// Any finds some route using depth-first reachability.
	Any Strategy = iota
	// Shortest finds a least-cost route.
	Shortest
	// Fewest finds a route with the fewest jumps, ignoring terrain cost.
	Fewest
)

func (s Strategy) String() string {
	switch s {
	case Any:
		return "any"
	case Shortest:
		return "shortest"
	case Fewest:
		return "fewest"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "any"/"dfs", "shortest"/"dijkstra" or "fewest"/"bfs"
// (case-insensitive).
// The empty string selects Shortest.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "dfs":
		return Any, nil
	case "shortest", "dijkstra", "":
		return Shortest, nil
	case "fewest", "bfs":
		return Fewest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// StepHook is called for each position the knight lands on during validation.
// Returning an error stops validation.
type StepHook func(current board.Position) error

// Options configures Find and Validate.
type Options struct {
	Ctx    context.Context
	Logger logrus.FieldLogger
	Sight  board.SightMode
	OnStep StepHook
}

// Option represents a functional option for Find and Validate.
type Option func(*Options)

// DefaultOptions returns a background context, a silent logger, rectangle
// sight and no step hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: discardLogger(),
		Sight:  board.SightRectangle,
	}
}

// WithContext sets the context passed to the searches. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger Find reports to. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSight selects the line-of-sight rule for the Shortest and Fewest
// strategies.
func WithSight(mode board.SightMode) Option {
	return func(o *Options) { o.Sight = mode }
}

// WithStepHook installs fn to observe every validated step.
func WithStepHook(fn StepHook) Option {
	return func(o *Options) { o.OnStep = fn }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Result is the outcome of Find.
type Result struct {
	// RunID identifies this search in logs.
	RunID string
	// Strategy is the search that produced Sequence.
	Strategy Strategy
	// Sequence lists the landings from (excluding) start to (including) end.
	Sequence board.Sequence
	// Cost sums the terrain cost of every landing in Sequence.
	Cost int64
	// Explored counts cells the search reached.
	Explored int
}
