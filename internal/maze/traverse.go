package maze

// initialise picks a start cell on a random edge and an end cell on the
// opposite edge, opening the outward wall of each.
func (m *Maze) initialise() (start, end Point) {
	last := m.Size - 1

	// One candidate per edge: top, left, bottom, right.
	candidates := [4]Point{
		{Row: 0, Col: m.rng.Intn(m.Size)},
		{Row: m.rng.Intn(m.Size), Col: 0},
		{Row: last, Col: m.rng.Intn(m.Size)},
		{Row: m.rng.Intn(m.Size), Col: last},
	}
	start = candidates[m.rng.Intn(len(candidates))]

	var side Direction
	switch {
	case start.Row == 0:
		side = Up
		end = Point{Row: last, Col: m.rng.Intn(m.Size)}
	case start.Row == last:
		side = Down
		end = Point{Row: 0, Col: m.rng.Intn(m.Size)}
	case start.Col == 0:
		side = Left
		end = Point{Row: m.rng.Intn(m.Size), Col: last}
	default:
		side = Right
		end = Point{Row: m.rng.Intn(m.Size), Col: 0}
	}

	m.cell(start).Walls[side] = false
	m.cell(end).Walls[side.Opposite()] = false
	return start, end
}

// traverse runs the randomized iterative depth-first search from a fresh
// start. With trackSeen set, a coordinate is pushed at most once; without it
// duplicates may be pushed and VisitedFrom is overwritten by each discoverer
// until the cell is first popped.
func (m *Maze) traverse(trackSeen bool) {
	start, end := m.initialise()
	m.start, m.end = &start, &end

	stack := []Point{start}
	seen := make(map[Point]struct{})

	for len(stack) > 0 {
		current := pop(&stack)
		m.cell(current).Visited = true
		if trackSeen {
			seen[current] = struct{}{}
		}

		var unvisited []Point
		for _, n := range m.Neighbours(current) {
			if m.cell(n).Visited {
				continue
			}
			if _, ok := seen[n]; trackSeen && ok {
				continue
			}
			unvisited = append(unvisited, n)
		}

		for _, n := range unvisited {
			from := current
			m.cell(n).VisitedFrom = &from
			if trackSeen {
				seen[n] = struct{}{}
			}
		}

		m.rng.Shuffle(len(unvisited), func(i, j int) {
			unvisited[i], unvisited[j] = unvisited[j], unvisited[i]
		})
		stack = append(stack, unvisited...)

		if len(stack) == 0 {
			continue
		}
		next := stack[len(stack)-1]
		if len(unvisited) > 0 {
			// Continue the current path.
			m.RemoveWall(current, next)
			continue
		}

		// Dead end: join the next frontier cell to whoever discovered it.
		from := m.cell(next).VisitedFrom
		if from == nil {
			panic("maze: stacked cell " + next.String() + " has no origin")
		}
		m.RemoveWall(*from, next)
	}
}

// pop removes and returns the last element of the stack.
func pop(s *[]Point) Point {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
