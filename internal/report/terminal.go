package report

import (
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/kangaroo"
)

// segmentDigits is how much of the anchor is shown, counting the 0x.
const segmentDigits = 15

// Terminal is a kangaroo.ProgressSink drawing one progress bar per round.
type Terminal struct {
	out     io.Writer
	maxHops uint64

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewTerminal returns a sink writing to out for rounds of maxHops hops.
func NewTerminal(out io.Writer, maxHops uint64) *Terminal {
	return &Terminal{out: out, maxHops: maxHops}
}

// RoundStarted implements kangaroo.ProgressSink.
func (t *Terminal) RoundStarted(round int, anchor *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closeBar()
	colorRound.Fprintln(t.out, RoundLine(round, anchor))
	t.bar = progressbar.NewOptions64(
		int64(t.maxHops),
		progressbar.OptionSetWriter(t.out),
		progressbar.OptionSetDescription(fmt.Sprintf("[Round %d]", round)),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("hops"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionFullWidth(),
	)
}

// Progress implements kangaroo.ProgressSink.
func (t *Terminal) Progress(p kangaroo.Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil {
		return
	}
	t.bar.Describe(StatusLine(p))
	_ = t.bar.Set64(int64(p.Hops))
}

// Close stops the current bar, if any.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeBar()
}

func (t *Terminal) closeBar() {
	if t.bar == nil {
		return
	}
	_ = t.bar.Exit()
	fmt.Fprintln(t.out)
	t.bar = nil
}

// RoundLine announces a new round and the segment its anchor falls in.
func RoundLine(round int, anchor *big.Int) string {
	seg := "0x" + anchor.Text(16)
	if len(seg) > segmentDigits {
		seg = seg[:segmentDigits]
	}
	return fmt.Sprintf("[Round %d] Jumping to random segment %s...", round, seg)
}

// StatusLine renders p as "[Round N] Hops: Xk/Yk | Speed: Z kH/s | DPs: n".
func StatusLine(p kangaroo.Progress) string {
	return fmt.Sprintf("[Round %d] Hops: %.0fk/%.0fk | Speed: %.1f kH/s | DPs: %d",
		p.Round, float64(p.Hops)/1000, float64(p.MaxHops)/1000, p.Rate/1000, p.DPs)
}

// TargetInfo is the summary printed before the search starts.
type TargetInfo struct {
	Address    string
	Start      *big.Int
	Bits       int
	MaxHops    uint64
	Tame, Wild int
	Workers    int
}

// PrintTarget writes the search summary to w.
func PrintTarget(w io.Writer, info TargetInfo) {
	if info.Address != "" {
		colorInfo.Fprintf(w, "[+] Target Address: %s\n", info.Address)
	}
	colorInfo.Fprintf(w, "[+] Range Start   : 0x%s\n", info.Start.Text(16))
	colorInfo.Fprintf(w, "[+] Search Space  : 2^%d\n", info.Bits)
	colorInfo.Fprintf(w, "[+] Herds         : %d tame / %d wild, %d workers\n", info.Tame, info.Wild, info.Workers)
	colorInfo.Fprintf(w, "[+] Mode          : Random Jump + Local Kangaroo Scan\n")
	colorInfo.Fprintf(w, "[+] Restart Limit : %s hops per round\n\n", groupThousands(info.MaxHops))
}

// PrintError writes err in red.
func PrintError(w io.Writer, err error) {
	colorError.Fprintf(w, "Error: %v\n", err)
}

func groupThousands(n uint64) string {
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
