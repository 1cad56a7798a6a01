package euler

// reachableCount runs an iterative breadth-first walk over the current
// adjacency and returns the number of distinct vertices reachable from
// start, start included.
// Complexity: O(V + E).
func reachableCount(adj map[string][]string, start string) int {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(visited)
}

// pathExists reports whether any directed path from→to survives in the
// current adjacency. The empty path counts: from == to is always true.
// Complexity: O(V + E).
func pathExists(adj map[string][]string, from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if v == to {
				return true
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}

// connectedStrict is the Fleury admission policy: the graph must carry at
// least one edge, no listed vertex may be isolated, and every listed vertex
// must be reachable from the minimum-labeled one. Directed graphs are judged
// on the weak (undirected) view. A single zero-degree vertex fails the
// check even when the rest of the graph is Eulerian.
func (m *multigraph) connectedStrict() bool {
	if m.edges == 0 {
		return false
	}
	ids := m.vertexIDs()
	for _, u := range ids {
		if m.totalDegree(u) == 0 {
			return false
		}
	}

	return reachableCount(m.view(), ids[0]) == len(ids)
}

// activeVertices returns, in ascending order, the vertices that currently
// carry at least one edge occurrence.
func (m *multigraph) activeVertices() []string {
	var active []string
	for _, u := range m.vertexIDs() {
		if m.totalDegree(u) > 0 {
			active = append(active, u)
		}
	}

	return active
}

// connectedActive is the Hierholzer admission policy: only the vertices
// that carry edges must be mutually reachable; zero-degree vertices are
// exempt from the requirement entirely. This is deliberately looser than
// connectedStrict and the two must not be unified.
func (m *multigraph) connectedActive() bool {
	active := m.activeVertices()
	if len(active) == 0 {
		return false
	}

	return reachableCount(m.view(), active[0]) == len(active)
}
