// Command stats summarizes one or more --stats-out JSON files written by
// `wfc run`, reporting success rate and average attempt count per file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/tessera-labs/wfc/internal/driver"
)

func summarize(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var stats []driver.Stat
	if err := json.Unmarshal(b, &stats); err != nil {
		return err
	}

	n := len(stats)
	if n == 0 {
		fmt.Printf("%s: no problems recorded\n", path)
		return nil
	}

	succeeded := 0
	totalAttempts := 0
	maxAttempts := 0
	for _, s := range stats {
		if s.Success {
			succeeded++
		} else {
			color.New(color.FgRed).Printf("  failed: %s (attempts=%d)\n", s.Name, s.Attempts)
		}
		totalAttempts += s.Attempts
		if s.Attempts > maxAttempts {
			maxAttempts = s.Attempts
		}
	}

	summaryColor := color.New(color.FgGreen)
	if succeeded < n {
		summaryColor = color.New(color.FgYellow)
	}
	summaryColor.Printf("%s: problems=%d succeeded=%d avg_attempts=%.1f max_attempts=%d\n",
		path, n, succeeded, float64(totalAttempts)/float64(n), maxAttempts)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: stats <file1> [file2 ...]")
		os.Exit(1)
	}
	for _, p := range os.Args[1:] {
		if err := summarize(p); err != nil {
			fmt.Printf("error summarizing %s: %v\n", p, err)
		}
	}
}
