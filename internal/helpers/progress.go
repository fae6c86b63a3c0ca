package helpers

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressBar struct {
	Add   func(int)
	Close func()
}

func termWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if !IsNil(err) {
		return 80
	}
	return MaxInt(40, MinInt(120, width))
}

// CreateProgressBar renders to out. Pass the fd of out so the bar can size itself.
func CreateProgressBar(out io.Writer, fd int, total int, label string) ProgressBar {
	p := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(termWidth(fd)/2),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return ProgressBar{
		func(i int) {
			_ = p.Add(i)
		}, func() {
			_ = p.Finish()
		},
	}
}

// RateSummary formats a count and elapsed time as "1,234 positions in 2s (617/s)".
func RateSummary(count int, noun string, elapsed time.Duration) string {
	perSecond := 0.0
	if elapsed > 0 {
		perSecond = float64(count) / elapsed.Seconds()
	}
	return fmt.Sprintf("%v %v in %v (%v/s)",
		humanize.Comma(int64(count)), noun, elapsed.Round(time.Millisecond), humanize.Comma(int64(perSecond)))
}
