package board

// labelComponents floods every region of passable cells joined by knight
// jumps, treating the teleport pair as joined in both directions.
// Regions are numbered in row-major order of their first cell.
// Time: O(W·H·8). Memory: O(W·H).
func (g *Graph) labelComponents() {
	total := len(g.cells)
	g.component = make([]int, total)
	for i := range g.component {
		g.component[i] = -1
	}
	b := g.Bounds()
	label := 0

	for i0 := 0; i0 < total; i0++ {
		if g.component[i0] >= 0 || !g.cells[i0].Terrain.Passable() {
			continue
		}
		queue := []int{i0}
		g.component[i0] = label
		for qi := 0; qi < len(queue); qi++ {
			u := g.cells[queue[qi]].Pos
			for _, v := range g.undirectedNeighbors(u, b) {
				vi := g.index(v)
				if g.component[vi] >= 0 || !g.cells[vi].Terrain.Passable() {
					continue
				}
				g.component[vi] = label
				queue = append(queue, vi)
			}
		}
		label++
	}
	g.regions = label
}

func (g *Graph) undirectedNeighbors(p Position, b Bounds) []Position {
	out := CandidateMoves(p, b)
	if g.hasTeleport {
		switch p {
		case g.teleportFrom:
			out = append(out, g.teleportTo)
		case g.teleportTo:
			out = append(out, g.teleportFrom)
		}
	}

	return out
}

// Components returns every region of passable cells that knight jumps (and
// the teleport pair) join together. Each region lists its cells in row-major
// order; regions are ordered by their first cell.
func (g *Graph) Components() [][]Position {
	comps := make([][]Position, g.regions)
	for i, c := range g.component {
		if c >= 0 {
			comps[c] = append(comps[c], g.cells[i].Pos)
		}
	}

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// region. Sight rules and the direction of the teleport edge are ignored, so
// false proves that no route from a can land on b, while true does not
// promise one.
func (g *Graph) Connected(a, b Position) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	ca, cb := g.component[g.index(a)], g.component[g.index(b)]

	return ca >= 0 && ca == cb
}
