package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/violenttestpen/speedtest"
)

const (
	progressDoneRune    = "█"
	progressPendingRune = "▒"
)

var denominators = []int64{int64(time.Hour), int64(time.Minute), int64(time.Second), int64(time.Millisecond), int64(time.Microsecond), int64(time.Nanosecond)}
var units = []string{"h", "m", "s", "ms", "µs", "ns"}

// Translate a command line string into a sequence of arguments, using the same rules as the MS C runtime:
// 1) Arguments are delimited by white space, which is either a space or a tab.
// 2) A string surrounded by double quotation marks is interpreted as a single argument,
//	regardless of white space contained within.  A quoted string can be embedded in an argument.
// 3) A double quotation mark preceded by a backslash is interpreted as a literal double quotation mark.
// 4) Backslashes are interpreted literally, unless they immediately precede a double quotation mark.
// 5) If backslashes immediately precede a double quotation mark,
//	every pair of backslashes is interpreted as a literal backslash.
//	If the number of backslashes is odd, the last backslash escapes the next double quotation mark as described in rule 3.
//
// Single quotes are accepted in place of double quotes. Runs of white space
// do not produce empty arguments, but an explicitly quoted empty string does.
func list2Cmdline(cmd string) []string {
	var cmdParts []string
	var inQuote rune
	var quoted bool
	var backslashes int

	var b strings.Builder
	flush := func() {
		if b.Len() > 0 || quoted {
			cmdParts = append(cmdParts, b.String())
		}
		b.Reset()
		quoted = false
	}
	for _, ch := range cmd {
		if ch == '\\' {
			backslashes++
			continue
		}
		if ch == '"' || ch == '\'' {
			b.WriteString(strings.Repeat(`\`, backslashes/2))
			escaped := backslashes%2 == 1
			backslashes = 0
			switch {
			case escaped:
				b.WriteRune(ch)
			case inQuote == rune(0):
				inQuote = ch
				quoted = true
			case inQuote == ch:
				inQuote = rune(0)
			default:
				b.WriteRune(ch)
			}
			continue
		}

		b.WriteString(strings.Repeat(`\`, backslashes))
		backslashes = 0
		if (ch == ' ' || ch == '\t') && inQuote == 0 {
			flush()
		} else {
			b.WriteRune(ch)
		}
	}
	b.WriteString(strings.Repeat(`\`, backslashes))
	flush()
	return cmdParts
}

func getMeasurementMetrics(timing int64) (float64, string) {
	for i, denominator := range denominators {
		if timing/denominator > 0 {
			return float64(denominator), units[i]
		}
	}
	return float64(time.Nanosecond), "ns"
}

func formatDuration(d time.Duration) string {
	denominator, unit := getMeasurementMetrics(int64(d))
	return fmt.Sprintf("%.2f %s", float64(d)/denominator, unit)
}

// meanDuration converts the millisecond average of r back to a Duration.
func meanDuration(r speedtest.Result) time.Duration {
	return time.Duration(r.AverageMs * float64(time.Millisecond))
}

func clearCurrentTerminalLine(w io.Writer) {
	w.Write([]byte("\r\033[K"))
}

func progressBar(width int, progress float64) string {
	if width < 0 {
		width = 0
	}
	if progress > 1 {
		progress = 1
	}
	progressChunks := int(progress * float64(width))
	return strings.Repeat(progressDoneRune, progressChunks) +
		strings.Repeat(progressPendingRune, width-progressChunks)
}

func formatETA(eta time.Duration) string {
	return fmt.Sprintf("%02d:%02d:%02d",
		int64(eta.Hours()), int64(eta.Minutes())%60, int64(eta.Seconds())%60)
}

func printProgressLine(line string, progress float64, eta time.Duration) {
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	terminalWidth -= len(line) + 2 + 12

	fmt.Fprintf(color.Output, "%s %s ETA %s", line, progressBar(terminalWidth, progress), formatETA(eta))
}
