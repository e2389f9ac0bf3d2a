// Package report renders search progress and found keys for humans, and
// persists found keys to disk.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/fatih/color"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/kangaroo"
)

var (
	colorFound = color.New(color.FgGreen, color.Bold)
	colorInfo  = color.New(color.FgCyan)
	colorRound = color.New(color.FgYellow, color.Bold)
	colorError = color.New(color.FgRed)
)

const bannerWidth = 60

// FoundFile is a kangaroo.SolutionSink that prints a banner and appends
// the key to a file.
type FoundFile struct {
	// Path is the file the key is appended to.
	Path string

	// Title is shown in the banner, e.g. "PUZZLE 135 SOLVED".
	Title string

	// Out receives the banner.
	Out io.Writer

	// Net selects the encoding of the WIF and address lines. nil means
	// they are omitted, for keys that are not secp256k1 keys.
	Net *chaincfg.Params
}

// NewFoundFile returns a sink appending to path and printing to stdout
// with Bitcoin mainnet encodings.
func NewFoundFile(path, title string) *FoundFile {
	return &FoundFile{
		Path:  path,
		Title: title,
		Out:   os.Stdout,
		Net:   &chaincfg.MainNetParams,
	}
}

// Solved implements kangaroo.SolutionSink. The file is written before the
// banner is printed.
func (f *FoundFile) Solved(sol *kangaroo.Solution) error {
	if err := f.append(sol); err != nil {
		return err
	}
	f.banner(sol)
	return nil
}

func (f *FoundFile) append(sol *kangaroo.Solution) error {
	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	if _, err := fmt.Fprintf(file, "SOLVED: %s\nDecimal: %s\n", sol.Hex(), sol.Decimal()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", f.Path, err)
	}
	return nil
}

func (f *FoundFile) banner(sol *kangaroo.Solution) {
	if f.Out == nil {
		return
	}

	rule := strings.Repeat("█", bannerWidth)
	lines := []string{
		fmt.Sprintf("██ [!!!] %s [!!!]", f.Title),
		fmt.Sprintf("██ Private Key (Decimal): %s", sol.Decimal()),
		fmt.Sprintf("██ Private Key (HEX)    : %s", sol.Hex()),
	}
	if f.Net != nil {
		if wif, err := WIF(sol.Key, f.Net); err == nil {
			lines = append(lines, fmt.Sprintf("██ WIF (compressed)     : %s", wif))
		}
		if addr, err := AddressFromKey(sol.Key, f.Net); err == nil {
			lines = append(lines, fmt.Sprintf("██ Address              : %s", addr))
		}
	}
	lines = append(lines, fmt.Sprintf("██ Round %d, %d hops, %s", sol.Round, sol.TotalHops, sol.Elapsed.Round(time.Millisecond)))

	colorFound.Fprintf(f.Out, "\n\n%s\n", rule)
	for _, l := range lines {
		colorFound.Fprintln(f.Out, l)
	}
	colorFound.Fprintln(f.Out, rule)
}
