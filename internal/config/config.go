// Package config loads search settings from an optional YAML file and
// command-line flags. Flags given explicitly on the command line win over
// the file; everything else falls back to the Puzzle 135 defaults.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/kangaroo"
)

// DefaultPublicKey is the compressed public key of Bitcoin puzzle #135.
const DefaultPublicKey = "02145d2611c823a396ef6712ce0f712f09b9b4f3135e3e0aa3230fb9b6d08d1e16"

// DefaultOutput is where found keys are appended.
const DefaultOutput = "KANGAROO_FOUND.txt"

// Settings is everything the command needs to start a search.
type Settings struct {
	PublicKey string `yaml:"public_key"`
	Bits      int    `yaml:"bits"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Output    string `yaml:"output"`

	TameHerd         int    `yaml:"tame_herd"`
	WildHerd         int    `yaml:"wild_herd"`
	HopModulo        int    `yaml:"hop_modulo"`
	DPRarity         uint64 `yaml:"dp_rarity"`
	MaxHopsPerRound  uint64 `yaml:"max_hops_per_round"`
	SpreadBits       uint   `yaml:"spread_bits"`
	Workers          int    `yaml:"workers"`
	ProgressInterval uint64 `yaml:"progress_interval"`
	MaxRounds        int    `yaml:"max_rounds"`
	Seed             int64  `yaml:"seed"`
}

// Default returns the Puzzle 135 settings.
func Default() Settings {
	d := kangaroo.DefaultConfig()
	return Settings{
		PublicKey:        DefaultPublicKey,
		Bits:             135,
		Output:           DefaultOutput,
		TameHerd:         d.TameHerd,
		WildHerd:         d.WildHerd,
		HopModulo:        d.HopModulo,
		DPRarity:         d.DPRarity,
		MaxHopsPerRound:  d.MaxHopsPerRound,
		SpreadBits:       d.SpreadBits,
		Workers:          d.Workers,
		ProgressInterval: d.ProgressInterval,
		MaxRounds:        d.MaxRounds,
		Seed:             d.Seed,
	}
}

// Load reads a YAML settings file. Keys missing from the file keep
// their default values; unknown keys are an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}
	s, err := Parse(data, Default())
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML over base.
func Parse(data []byte, base Settings) (Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := base
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}
	return s, nil
}

// BindFlags registers one flag per setting on fs, writing into s. The
// current values of s become the flag defaults.
func BindFlags(fs *flag.FlagSet, s *Settings) {
	fs.StringVar(&s.PublicKey, "public-key", s.PublicKey, "Target public key in compressed hex format (66 chars)")
	fs.IntVar(&s.Bits, "bits", s.Bits, "Puzzle size: search [2^(bits-1), 2^bits - 1] unless --start/--end are given")
	fs.StringVar(&s.Start, "start", s.Start, "Range start, hex (0x...) or decimal")
	fs.StringVar(&s.End, "end", s.End, "Range end (inclusive), hex (0x...) or decimal")
	fs.StringVar(&s.Output, "output", s.Output, "File the found key is appended to")

	fs.IntVar(&s.TameHerd, "tame", s.TameHerd, "Number of tame kangaroos")
	fs.IntVar(&s.WildHerd, "wild", s.WildHerd, "Number of wild kangaroos")
	fs.IntVar(&s.HopModulo, "hop-modulo", s.HopModulo, "Number of power-of-two jumps")
	fs.Uint64Var(&s.DPRarity, "dp-rarity", s.DPRarity, "Distinguished point rarity D (x mod D == 0)")
	fs.Uint64Var(&s.MaxHopsPerRound, "max-hops", s.MaxHopsPerRound, "Hops per round before jumping to a new random segment")
	fs.UintVar(&s.SpreadBits, "spread-bits", s.SpreadBits, "Start offsets are drawn from [0, 2^spread-bits)")
	fs.IntVar(&s.Workers, "workers", s.Workers, "Number of parallel workers (0 = serial)")
	fs.Uint64Var(&s.ProgressInterval, "progress-interval", s.ProgressInterval, "Hops between status updates")
	fs.IntVar(&s.MaxRounds, "max-rounds", s.MaxRounds, "Stop after this many rounds (0 = never)")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "Random seed (0 = random)")
}

// Resolve combines a settings file with the flags parsed on fs. With no
// path, flagged is returned unchanged. Otherwise the file is loaded and
// every flag explicitly set on the command line is applied on top.
func Resolve(fs *flag.FlagSet, flagged Settings, path string) (Settings, error) {
	if path == "" {
		return flagged, nil
	}
	s, err := Load(path)
	if err != nil {
		return Settings{}, err
	}

	over := flag.NewFlagSet("overrides", flag.ContinueOnError)
	over.SetOutput(io.Discard)
	BindFlags(over, &s)

	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil || over.Lookup(f.Name) == nil {
			return
		}
		if err := over.Set(f.Name, f.Value.String()); err != nil {
			setErr = fmt.Errorf("failed to apply --%s: %w", f.Name, err)
		}
	})
	if setErr != nil {
		return Settings{}, setErr
	}
	return s, nil
}

// Config returns the solver configuration.
func (s Settings) Config() kangaroo.Config {
	return kangaroo.Config{
		TameHerd:         s.TameHerd,
		WildHerd:         s.WildHerd,
		HopModulo:        s.HopModulo,
		DPRarity:         s.DPRarity,
		MaxHopsPerRound:  s.MaxHopsPerRound,
		SpreadBits:       s.SpreadBits,
		Workers:          s.Workers,
		ProgressInterval: s.ProgressInterval,
		MaxRounds:        s.MaxRounds,
		Seed:             s.Seed,
	}
}

// Target builds the search target on c. An explicit Start/End pair takes
// precedence over Bits; giving only one of them is an error.
func (s Settings) Target(c *curve.Curve) (kangaroo.Target, error) {
	if s.Start == "" && s.End == "" {
		return kangaroo.TargetForBits(c, s.PublicKey, s.Bits)
	}
	if s.Start == "" || s.End == "" {
		return kangaroo.Target{}, fmt.Errorf("%w: start and end must be given together", kangaroo.ErrInvalidRange)
	}

	start, err := ParseBigInt(s.Start)
	if err != nil {
		return kangaroo.Target{}, fmt.Errorf("failed to parse start: %w", err)
	}
	end, err := ParseBigInt(s.End)
	if err != nil {
		return kangaroo.Target{}, fmt.Errorf("failed to parse end: %w", err)
	}
	return kangaroo.NewTarget(c, s.PublicKey, start, end)
}
