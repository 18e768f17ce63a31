package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dicebar-xyz/go-dicebar/store"
)

func history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "SQLite history database")
	limit := fs.Int("limit", 20, "Maximum runs to list")
	show := fs.String("show", "", "Print the stored results JSON for a run ID")
	remove := fs.String("delete", "", "Delete a run by ID")
	best := fs.Bool("best", false, "Show only the lowest-mean run for the default game")
	faces := fs.Int("faces", 20, "Face count used with --best")
	retries := fs.Int("retries", 3, "Retry budget used with --best")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar history [options]

List and inspect runs stored with --db on run or simulate.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  dicebar history --db runs.db
  dicebar history --db runs.db --show 3e8f...
  dicebar history --db runs.db --best --retries 5
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := store.New(*dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer s.Close()

	if *remove != "" {
		if err := s.Delete(*remove); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Deleted run %s\n", *remove)
		return nil
	}

	if *show != "" {
		run, err := s.Get(*show)
		if err != nil {
			return err
		}
		fmt.Println(run.ResultsJSON)
		return nil
	}

	if *best {
		run, err := s.Best(*faces, *retries)
		if err != nil {
			return err
		}
		printRun(run)
		return nil
	}

	runs, err := s.List(*limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No stored runs")
		return nil
	}

	for _, run := range runs {
		printRun(run)
	}
	return nil
}

func printRun(run *store.Run) {
	fmt.Printf("%s  %s  d%d/r%d  %d trials  mean %.1f  cost $%.2f\n",
		run.ID,
		run.CreatedAt.Format("2006-01-02 15:04"),
		run.Faces, run.Retries,
		run.Trials,
		run.Mean,
		run.ExpectedCost)
}
