package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/knightpath/board"
)

// Sentinel errors returned by ShortestPath and its options.
var (
	// ErrNilGraph indicates that a nil *board.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfThreshold was set to zero or negative,
	// which would make every cell impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfThreshold must be positive")
)

// Options configures ShortestPath.
//
// Sight        – line-of-sight rule applied to every geometric move.
// MaxDistance  – cells costing more than this are not explored. Default math.MaxInt64.
// InfThreshold – targets with cost ≥ this are impassable. Default board.Impassable.
// Ctx          – checked between settlements. Default context.Background().
type Options struct {
	Sight        board.SightMode
	MaxDistance  int64
	InfThreshold int64
	Ctx          context.Context
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithSight selects the line-of-sight rule.
func WithSight(mode board.SightMode) Option {
	return func(o *Options) {
		o.Sight = mode
	}
}

// WithMaxDistance caps the cost explored from the start.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfThreshold treats targets whose cost is ≥ threshold as impassable.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfThreshold = threshold
	}
}

// WithContext sets the context checked between settlements.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns rectangle sight, no distance cap, Rock and Barrier
// impassable and a background context.
func DefaultOptions() Options {
	return Options{
		Sight:        board.SightRectangle,
		MaxDistance:  math.MaxInt64,
		InfThreshold: board.Impassable,
		Ctx:          context.Background(),
	}
}

// Result holds the outcome of one ShortestPath call.
type Result struct {
	// Dist maps every reached cell to its least cost from the start (start = 0).
	// Unreached cells have no entry.
	Dist map[board.Position]int64

	// Prev maps every reached cell except the start to its predecessor on a
	// least-cost route.
	Prev board.Predecessors

	// Settled counts cells whose distance was finalized.
	Settled int
}

// Distance returns the least cost of reaching p and whether p was reached.
func (r *Result) Distance(p board.Position) (int64, bool) {
	d, ok := r.Dist[p]

	return d, ok
}
