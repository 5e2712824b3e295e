package ds

// Graph is a directed graph over index-addressed nodes with an adjacency
// list per node.
type Graph[T any] struct {
	nodes []T
	adj   [][]int
}

// NewGraph builds a graph from node payloads and directed (from, to) edges.
// Edges naming out-of-range nodes are dropped.
func NewGraph[T any](nodes []T, edges [][2]int) *Graph[T] {
	g := &Graph[T]{
		nodes: nodes,
		adj:   make([][]int, len(nodes)),
	}
	for _, e := range edges {
		from, to := e[0], e[1]
		if from < 0 || from >= len(nodes) || to < 0 || to >= len(nodes) {
			continue
		}
		g.adj[from] = append(g.adj[from], to)
	}
	return g
}

func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// BFS returns the shortest path by edge count from src to dst, both
// inclusive, and whether dst was reached. The frontier is a List used as a
// FIFO queue.
func (g *Graph[T]) BFS(src, dst int) ([]int, bool) {
	if !g.valid(src) || !g.valid(dst) {
		return nil, false
	}
	if src == dst {
		return []int{src}, true
	}

	parent := newParentTable(len(g.nodes))
	visited := make([]bool, len(g.nodes))
	visited[src] = true

	frontier := NewList[int]()
	frontier.PushBack(src)
	for {
		n, ok := frontier.PopFront()
		if !ok {
			return nil, false
		}
		for _, next := range g.adj[n] {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = n
			if next == dst {
				return backtrack(parent, dst), true
			}
			frontier.PushBack(next)
		}
	}
}

// DFS returns the path recorded along a depth-first walk from src to dst and
// whether dst was reached. Pending nodes sit on a Stack.
func (g *Graph[T]) DFS(src, dst int) ([]int, bool) {
	if !g.valid(src) || !g.valid(dst) {
		return nil, false
	}
	if src == dst {
		return []int{src}, true
	}

	parent := newParentTable(len(g.nodes))
	visited := make([]bool, len(g.nodes))
	visited[src] = true

	pending := NewStack[int]()
	pending.Push(src)
	for {
		n, ok := pending.Pop()
		if !ok {
			return nil, false
		}
		for _, next := range g.adj[n] {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = n
			if next == dst {
				return backtrack(parent, dst), true
			}
			pending.Push(next)
		}
	}
}

func (g *Graph[T]) valid(i int) bool {
	return i >= 0 && i < len(g.nodes)
}

func newParentTable(n int) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	return parent
}

func backtrack(parent []int, dst int) []int {
	var path []int
	for n := dst; n != -1; n = parent[n] {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
