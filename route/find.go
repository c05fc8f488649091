package route

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/dfs"
	"github.com/katalvlaran/knightpath/dijkstra"
)

// Find searches g for a knight route from start to end.
//
// The chosen strategy produces a predecessor map, Reconstruct turns it into a
// Sequence and Validate accepts or rejects it. The teleport exemption is
// enabled during validation only when g has a teleporter pair.
//
// Returns ErrNoPath when end is unreachable; callers may retry with another
// strategy or report it. ErrReconstructionCycle and ErrInvalidSequence point
// at a defect and are logged at error level.
func Find(g *board.Graph, start, end board.Position, strategy Strategy, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, p := range [...]board.Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("route: %s on %dx%d board: %w", p, g.Width(), g.Height(), board.ErrOutOfBounds)
		}
	}

	runID := uuid.NewString()
	log := cfg.Logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"strategy": strategy.String(),
		"start":    start.String(),
		"end":      end.String(),
	})

	// 2) Regions that share no knight jump cannot be bridged by any search.
	if start != end && g.Terrain(start).Passable() && !g.Connected(start, end) {
		log.Debug("end lies outside the start region")
		return nil, fmt.Errorf("%w: %s and %s are not connected", ErrNoPath, start, end)
	}

	// 3) Search
	var (
		prev     board.Predecessors
		explored int
	)
	switch strategy {
	case Any:
		res, err := dfs.Explore(g, start, dfs.WithContext(cfg.Ctx))
		if err != nil {
			return nil, fmt.Errorf("route: explore: %w", err)
		}
		prev, explored = res.Parent, res.Visited.Size()
	case Shortest:
		res, err := dijkstra.ShortestPath(g, start,
			dijkstra.WithSight(cfg.Sight),
			dijkstra.WithContext(cfg.Ctx),
		)
		if err != nil {
			return nil, fmt.Errorf("route: shortest path: %w", err)
		}
		prev, explored = res.Prev, len(res.Dist)
	case Fewest:
		res, err := bfs.BFS(g, start,
			bfs.WithFilterNeighbor(func(from, to board.Position) bool {
				return g.IsTeleportEdge(from, to) || cfg.Sight.Clear(from, to, g)
			}),
			bfs.WithContext(cfg.Ctx),
		)
		if err != nil {
			return nil, fmt.Errorf("route: fewest jumps: %w", err)
		}
		prev, explored = res.Parent, len(res.Order)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	log = log.WithField("explored", explored)

	// 4) Reconstruct
	seq, err := Reconstruct(prev, start, end, g.Size())
	if err != nil {
		if errors.Is(err, ErrReconstructionCycle) {
			log.WithError(err).Error("predecessor map is malformed")
		} else {
			log.Debug("end unreachable")
		}
		return nil, err
	}

	// 5) Acceptance gate
	_, _, teleport := g.Teleport()
	if !Validate(seq, start, end, g, teleport, WithStepHook(cfg.OnStep)) {
		log.WithField("sequence", seq).Error("search produced an illegal sequence")
		return nil, fmt.Errorf("%w: %v", ErrInvalidSequence, seq)
	}

	res := &Result{
		RunID:    runID,
		Strategy: strategy,
		Sequence: seq,
		Cost:     Cost(seq, g),
		Explored: explored,
	}
	log.WithFields(logrus.Fields{"moves": len(seq), "cost": res.Cost}).Debug("route found")

	return res, nil
}
