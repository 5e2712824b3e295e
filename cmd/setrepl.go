package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/praktis/go-algorithms/ds"
)

var (
	histFileEnv     = "ALGORITHMS_HISTFILE"
	histFileDefault = ".algorithms_history"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Interactive hash set playground",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetRepl()
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSetRepl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// Keep history only for interactive sessions.
	var historyFile string
	if isatty.IsTerminal(os.Stdin.Fd()) {
		historyFile = dotfilePath(histFileEnv, histFileDefault)
		if historyFile != "" {
			loadHistory(line, historyFile)
		}
	}

	set := ds.NewProbingSet[string]()
	for {
		input, err := line.Prompt("set> ")
		if err != nil { // io.EOF or ErrPromptAborted
			break
		}
		args := strings.Fields(input)
		if len(args) == 0 {
			continue
		}
		line.AppendHistory(input)

		if quit := runSetCommand(set, args); quit {
			break
		}
	}

	if historyFile != "" {
		saveHistory(line, historyFile)
	}
	return nil
}

func runSetCommand(set *ds.ProbingSet[string], args []string) bool {
	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return true
	case "add":
		for _, item := range args[1:] {
			fmt.Printf("%s: %v\n", item, set.Add(item))
		}
	case "remove", "del":
		for _, item := range args[1:] {
			fmt.Printf("%s: %v\n", item, set.Remove(item))
		}
	case "contains", "has":
		for _, item := range args[1:] {
			fmt.Printf("%s: %v\n", item, set.Contains(item))
		}
	case "len":
		fmt.Println(set.Len())
	case "clear":
		set.Clear()
		fmt.Println("OK")
	case "help":
		fmt.Println("commands: add <v>..., remove <v>..., contains <v>..., len, clear, quit")
	default:
		fmt.Printf("unknown command %q, try help\n", args[0])
	}
	return false
}

func dotfilePath(envOverride, dotFilename string) string {
	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		return path
	}
	if home := os.Getenv("HOME"); home != "" {
		return fmt.Sprintf("%s/%s", home, dotFilename)
	}
	return ""
}

func loadHistory(line *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.ReadHistory(f)
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
