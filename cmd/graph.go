package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praktis/go-algorithms/ds"
	"github.com/praktis/go-algorithms/log"
)

var bfsCmd = &cobra.Command{
	Use:   "bfs <file>",
	Short: "Breadth first search on a graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0], (*ds.Graph[int]).BFS)
	},
}

var dfsCmd = &cobra.Command{
	Use:   "dfs <file>",
	Short: "Depth first search on a graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0], (*ds.Graph[int]).DFS)
	},
}

func init() {
	rootCmd.AddCommand(bfsCmd, dfsCmd)
}

func runSearch(path string, search func(*ds.Graph[int], int, int) ([]int, bool)) error {
	g, src, dst, err := parseGraphFile(path)
	if err != nil {
		log.Logger.Error("bad graph file", zap.String("path", path), zap.Error(err))
		return err
	}

	route, ok := search(g, src, dst)
	if !ok {
		fmt.Printf("no path from %d to %d\n", src, dst)
		return nil
	}
	fmt.Println(route)
	return nil
}
