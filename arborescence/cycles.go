package arborescence

import "github.com/cgmlst/grapetree/edge"

// detectCycles finds cycles among the Phase-C1 picks using incremental
// union-find (Phase C2). Each pick is processed in order: if its two
// endpoints already share a component, a cycle has just closed at the
// pick's "to" vertex — walk backward along predecessors (the unique
// incoming edge per vertex) until a previously-visited node repeats,
// assigning every visited node a fresh cycle id. Components are unioned
// regardless of whether a cycle closed.
//
// Returns cycleID, where cycleID[i] == noCycle means i belongs to no cycle.
func detectCycles(edges []edge.Edge, n int) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	predecessor := make(map[int]int, len(edges))
	for _, e := range edges {
		predecessor[e.To] = e.From
	}

	cycleID := make([]int, n)
	for i := range cycleID {
		cycleID[i] = noCycle
	}
	nextCycleID := 0

	for _, e := range edges {
		rootFrom := find(e.From)
		rootTo := find(e.To)

		if rootFrom == rootTo && cycleID[e.To] == noCycle {
			markCycle(predecessor, e.To, cycleID, nextCycleID)
			nextCycleID++
		}

		parent[rootTo] = rootFrom
	}

	return cycleID
}

// markCycle walks backward from start along predecessor edges, assigning
// id to every node visited until a repeat closes the walk.
func markCycle(predecessor map[int]int, start int, cycleID []int, id int) {
	visited := make(map[int]bool)
	current := start

	for !visited[current] {
		visited[current] = true
		cycleID[current] = id

		from, ok := predecessor[current]
		if !ok {
			break
		}
		current = from
	}
}

// hasCycles reports whether any vertex was assigned to a cycle.
func hasCycles(cycleID []int) bool {
	for _, id := range cycleID {
		if id != noCycle {
			return true
		}
	}
	return false
}
