package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := run(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "exact":
		if err := exactCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "simulate":
		if err := simulate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compare":
		if err := compare(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := sweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "cost":
		if err := cost(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := history(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("dicebar version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dicebar - dice-menu collection analysis tool

How long until a customer who orders by d20 has tried every cocktail on the
menu, when three rolls of a repeat force them to drink the duplicate?

Usage:
  dicebar <command> [options]

Commands:
  run        Full analysis: exact value, Monte Carlo batch, plot, cost
  exact      Closed-form expected purchases (no simulation)
  simulate   Run Monte Carlo batch and write results JSON
  plot       Generate histogram SVG from results
  summary    Display quick summary of results
  compare    Compare two simulation results
  sweep      Sweep faces/retries and rank game variants
  cost       Price an expected purchase count
  history    List and inspect stored runs
  help       Show this help message
  version    Show version information

Examples:
  # The whole puzzle in one shot
  dicebar run --trials 100000 --plot outcomes.svg

  # Simulate and keep the results
  dicebar simulate --trials 100000 --seed 42 --output results.json

  # Generate histogram from results
  dicebar plot results.json --output outcomes.svg

  # What if the bar allowed five re-rolls?
  dicebar sweep --retries 1:5 --objective minimize_cost

For command-specific help, run:
  dicebar <command> --help`)
}
