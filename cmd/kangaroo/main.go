package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/mahdiidarabi/ecdlp-kangaroo/internal/config"
	"github.com/mahdiidarabi/ecdlp-kangaroo/internal/report"
	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/kangaroo"
)

const usage = `Usage:
    kangaroo [OPTIONS]

Searches for the private key of a secp256k1 public key known to lie in a
range, using a randomized Pollard kangaroo walk. Each round scans a random
segment of the range; a round that finds nothing within --max-hops is
abandoned and the search jumps elsewhere.

Without options the Bitcoin puzzle #135 key is searched.

Options:
`

func must[T any](v T, err error) T {
	if err != nil {
		report.PrintError(os.Stderr, err)
		os.Exit(1)
	}
	return v
}

func main() {
	settings := config.Default()

	var configFlag string
	var timeoutFlag time.Duration

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&configFlag, "config", "", "YAML file with search settings; explicit flags override it")
	flag.DurationVar(&timeoutFlag, "timeout", 0, "stop after specified timeout")
	config.BindFlags(flag.CommandLine, &settings)
	flag.Parse()

	if flag.NArg() > 0 {
		report.PrintError(os.Stderr, fmt.Errorf("unexpected arguments: %v", flag.Args()))
		flag.Usage()
		os.Exit(1)
	}

	settings = must(config.Resolve(flag.CommandLine, settings, configFlag))

	os.Exit(search(settings, timeoutFlag))
}

// search runs until the key is found, a signal arrives or timeout
// expires, and returns the process exit code.
func search(settings config.Settings, timeout time.Duration) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return run(ctx, settings, os.Stdout, os.Stderr)
}

func run(ctx context.Context, settings config.Settings, stdout, stderr io.Writer) int {
	c := curve.Secp256k1()

	spin := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(stderr))
	spin.Suffix = fmt.Sprintf(" Configuring for a %d-bit search...", settings.Bits)
	_ = spin.Color("yellow")
	spin.Start()

	target, err := settings.Target(c)
	if err != nil {
		spin.Stop()
		report.PrintError(stderr, err)
		return 1
	}
	solver, err := kangaroo.NewSolver(c, target, settings.Config())
	spin.Stop()
	if err != nil {
		report.PrintError(stderr, err)
		return 1
	}

	address, err := report.AddressFromPubKey(c.CompressedBytes(target.Point), &chaincfg.MainNetParams)
	if err != nil {
		report.PrintError(stderr, fmt.Errorf("failed to derive target address: %w", err))
	}
	cfg := solver.Config()
	report.PrintTarget(stdout, report.TargetInfo{
		Address: address,
		Start:   target.Start,
		Bits:    target.Bits,
		MaxHops: cfg.MaxHopsPerRound,
		Tame:    cfg.TameHerd,
		Wild:    cfg.WildHerd,
		Workers: cfg.Workers,
	})

	term := report.NewTerminal(stdout, cfg.MaxHopsPerRound)
	found := report.NewFoundFile(settings.Output, fmt.Sprintf("PUZZLE %d SOLVED", target.Bits))
	found.Out = stdout

	solver.WithProgress(term).
		WithSolutionSink(kangaroo.SolutionFunc(func(sol *kangaroo.Solution) error {
			term.Close()
			return found.Solved(sol)
		})).
		WithLogger(log.New(stderr, "", log.LstdFlags))

	sol, err := solver.Run(ctx)
	term.Close()

	stats := solver.Stats()
	switch {
	case err == nil:
		fmt.Fprintf(stderr, "Found key in %s after %d rounds and %d hops, saved to %s\n",
			sol.Elapsed.Round(time.Second), stats.Rounds, stats.TotalHops, settings.Output)
		return 0
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, kangaroo.ErrRoundsExhausted):
		fmt.Fprintf(stderr, "\n[!] Stopped after %d rounds and %d hops\n", stats.Rounds, stats.TotalHops)
		return 2
	default:
		report.PrintError(stderr, err)
		return 1
	}
}
