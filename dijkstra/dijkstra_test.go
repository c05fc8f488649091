package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/dijkstra"
	"github.com/katalvlaran/knightpath/route"
)

func buildFrom(t testing.TB, src string) *board.Graph {
	g, err := board.Load(board.StringProvider(src))
	require.NoError(t, err)

	return g
}

func buildOpen(t testing.TB, w, h int) *board.Graph {
	g, err := board.FromLayout(board.Uniform(w, h, board.Open))
	require.NoError(t, err)

	return g
}

// knightHops returns unweighted knight distances from start by BFS.
func knightHops(g *board.Graph, start board.Position) map[board.Position]int64 {
	hops := map[board.Position]int64{start: 0}
	queue := []board.Position{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range board.CandidateMoves(u, g.Bounds()) {
			if _, ok := hops[v]; !ok {
				hops[v] = hops[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return hops
}

// relaxAll is a Bellman-Ford reference applying the same move rules.
func relaxAll(g *board.Graph, start board.Position, sight board.SightMode) map[board.Position]int64 {
	dist := map[board.Position]int64{start: 0}
	for changed := true; changed; {
		changed = false
		for _, u := range g.Positions() {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, v := range g.Moves(u) {
				if !g.Terrain(v).Passable() {
					continue
				}
				if !g.IsTeleportEdge(u, v) && !sight.Clear(u, v, g) {
					continue
				}
				nd := du + g.Cost(v)
				if dv, ok := dist[v]; !ok || nd < dv {
					dist[v] = nd
					changed = true
				}
			}
		}
	}

	return dist
}

func randomBoard(t testing.TB, rng *rand.Rand, w, h int) *board.Graph {
	kinds := []board.Terrain{board.Open, board.Open, board.Open, board.Water, board.Lava, board.Rock, board.Barrier}
	g, err := board.Build(w, h, func(board.Position) board.Terrain {
		return kinds[rng.Intn(len(kinds))]
	})
	require.NoError(t, err)

	return g
}

func TestShortestPath_Errors(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, board.Pos(0, 0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(buildOpen(t, 4, 4), board.Pos(4, 0))
	assert.ErrorIs(t, err, board.ErrOutOfBounds)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfThreshold(0)(&dijkstra.Options{}) })
}

func TestShortestPath_UniformBoardMatchesKnightDistance(t *testing.T) {
	g := buildOpen(t, 8, 8)
	start := board.Pos(0, 0)
	res, err := dijkstra.ShortestPath(g, start)
	require.NoError(t, err)

	for p, want := range knightHops(g, start) {
		got, ok := res.Distance(p)
		require.True(t, ok, "%s unreached", p)
		assert.Equal(t, want, got, "cost to %s", p)
	}
	assert.Equal(t, 64, res.Settled)

	seq, err := route.Reconstruct(res.Prev, start, board.Pos(1, 2), g.Size())
	require.NoError(t, err)
	assert.Len(t, seq, 1)

	seq, err = route.Reconstruct(res.Prev, start, board.Pos(3, 3), g.Size())
	require.NoError(t, err)
	assert.Len(t, seq, 2)
	assert.True(t, route.Validate(seq, start, board.Pos(3, 3), g, false))
}

func TestShortestPath_PrefersCheaperTerrain(t *testing.T) {
	g := buildFrom(t, ""+
		". . . . . . . .\n"+
		". . W . . . . .\n"+
		". L . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n")
	res, err := dijkstra.ShortestPath(g, board.Pos(0, 0))
	require.NoError(t, err)

	d, ok := res.Distance(board.Pos(3, 3))
	require.True(t, ok)
	assert.EqualValues(t, 3, d, "water (2) then open (1)")
	assert.Equal(t, board.Pos(2, 1), res.Prev[board.Pos(3, 3)])
	assert.EqualValues(t, 5, res.Dist[board.Pos(1, 2)])
}

func TestShortestPath_NeverThroughBarrier(t *testing.T) {
	src := "" +
		". . . . . . . .\n" +
		". . . B . . . .\n" +
		". . . . . . B .\n" +
		". B . . . . . .\n" +
		". . . . B . . .\n" +
		". . . . . . . .\n" +
		". . B . . . . .\n" +
		". . . . . . . .\n"
	g := buildFrom(t, src)
	open := buildOpen(t, 8, 8)
	start := board.Pos(0, 0)

	with, err := dijkstra.ShortestPath(g, start)
	require.NoError(t, err)
	without, err := dijkstra.ShortestPath(open, start)
	require.NoError(t, err)

	for p, d := range with.Dist {
		assert.NotEqual(t, board.Barrier, g.Terrain(p), "barrier %s reached", p)
		seq, err := route.Reconstruct(with.Prev, start, p, g.Size())
		require.NoError(t, err)
		for _, q := range seq {
			assert.NotEqual(t, board.Barrier, g.Terrain(q), "route to %s crosses %s", p, q)
		}

		// Removing barriers never makes a route more expensive.
		d2, ok := without.Distance(p)
		require.True(t, ok)
		assert.LessOrEqual(t, d2, d, "cost to %s", p)
	}
}

func TestShortestPath_SightModes(t *testing.T) {
	// (1,0) sits inside the bounding box of both moves out of the corner but
	// on neither segment.
	g := buildFrom(t, ""+
		". B . .\n"+
		". . . .\n"+
		". . . .\n"+
		". . . .\n")
	start := board.Pos(0, 0)

	rect, err := dijkstra.ShortestPath(g, start)
	require.NoError(t, err)
	assert.Len(t, rect.Dist, 1, "rectangle rule boxes the corner in")

	line, err := dijkstra.ShortestPath(g, start, dijkstra.WithSight(board.SightLine))
	require.NoError(t, err)
	d, ok := line.Distance(board.Pos(1, 2))
	require.True(t, ok)
	assert.EqualValues(t, 1, d)

	none, err := dijkstra.ShortestPath(g, start, dijkstra.WithSight(board.SightNone))
	require.NoError(t, err)
	_, ok = none.Distance(board.Pos(1, 0))
	assert.False(t, ok, "sight off still never lands on a barrier")
}

func TestShortestPath_TeleporterShortensRoute(t *testing.T) {
	g, err := board.Build(8, 8, func(p board.Position) board.Terrain {
		switch p {
		case board.Pos(2, 2), board.Pos(5, 5):
			return board.Teleporter
		case board.Pos(3, 3):
			return board.Barrier
		}
		return board.Open
	})
	require.NoError(t, err)

	start, end := board.Pos(7, 6), board.Pos(0, 1)
	res, err := dijkstra.ShortestPath(g, start)
	require.NoError(t, err)

	d, ok := res.Distance(end)
	require.True(t, ok)
	assert.EqualValues(t, 3, d, "plain knight route needs at least 4 jumps")

	seq, err := route.Reconstruct(res.Prev, start, end, g.Size())
	require.NoError(t, err)
	assert.Equal(t, board.Sequence{board.Pos(5, 5), board.Pos(2, 2), board.Pos(0, 1)}, seq)
	assert.True(t, route.Validate(seq, start, end, g, true))
	assert.False(t, route.Validate(seq, start, end, g, false), "teleport step is not a knight jump")
}

func TestShortestPath_EnclosedEnd(t *testing.T) {
	g := buildFrom(t, ""+
		". . . . . . . .\n"+
		". . B . . . . .\n"+
		". B . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n"+
		". . . . . . . .\n")
	res, err := dijkstra.ShortestPath(g, board.Pos(4, 4), dijkstra.WithSight(board.SightNone))
	require.NoError(t, err)
	_, ok := res.Distance(board.Pos(0, 0))
	assert.False(t, ok)

	_, err = route.Reconstruct(res.Prev, board.Pos(4, 4), board.Pos(0, 0), g.Size())
	assert.ErrorIs(t, err, route.ErrNoPath)
}

func TestShortestPath_MaxDistanceAndThreshold(t *testing.T) {
	g := buildOpen(t, 8, 8)
	res, err := dijkstra.ShortestPath(g, board.Pos(0, 0), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Len(t, res.Dist, 3)

	lava := buildFrom(t, ". . .\n. . L\n. . .\n")
	res, err = dijkstra.ShortestPath(lava, board.Pos(0, 0), dijkstra.WithInfThreshold(5))
	require.NoError(t, err)
	_, ok := res.Distance(board.Pos(2, 1))
	assert.False(t, ok, "lava made impassable")
}

func TestShortestPath_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.ShortestPath(buildOpen(t, 8, 8), board.Pos(0, 0), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestShortestPath_MatchesBellmanFord checks label-setting optimality on
// random boards regardless of scan order.
func TestShortestPath_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		g := randomBoard(t, rng, 3+rng.Intn(8), 3+rng.Intn(8))
		start := board.Pos(rng.Intn(g.Width()), rng.Intn(g.Height()))
		for _, mode := range []board.SightMode{board.SightRectangle, board.SightLine, board.SightNone} {
			res, err := dijkstra.ShortestPath(g, start, dijkstra.WithSight(mode))
			require.NoError(t, err)
			assert.Equal(t, relaxAll(g, start, mode), res.Dist, "board %d sight %s", i, mode)
		}
	}
}
