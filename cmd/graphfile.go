package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/praktis/go-algorithms/ds"
)

// parseGraphFile reads the four-line graph format: node count, edge list
// like "[0, 1], [1, 2]", source index, destination index.
func parseGraphFile(path string) (*ds.Graph[int], int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 4 {
		return nil, 0, 0, fmt.Errorf("graph file %s: want 4 lines, got %d", path, len(lines))
	}

	numNodes, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("graph file %s: node count: %w", path, err)
	}

	edges, err := parseEdges(lines[1])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("graph file %s: %w", path, err)
	}

	src, err := strconv.Atoi(strings.TrimSpace(lines[2]))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("graph file %s: source: %w", path, err)
	}
	dst, err := strconv.Atoi(strings.TrimSpace(lines[3]))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("graph file %s: destination: %w", path, err)
	}

	return ds.NewGraph(make([]int, numNodes), edges), src, dst, nil
}

// parseEdges splits "[0, 1], [1, 2]" into index pairs.
func parseEdges(line string) ([][2]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == '[' || r == ']' || r == ','
	})

	var ids []int
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("edge list: %w", err)
		}
		ids = append(ids, id)
	}
	if len(ids)%2 != 0 {
		return nil, fmt.Errorf("edge list: odd number of node ids")
	}

	edges := make([][2]int, 0, len(ids)/2)
	for i := 0; i < len(ids); i += 2 {
		edges = append(edges, [2]int{ids[i], ids[i+1]})
	}
	return edges, nil
}
