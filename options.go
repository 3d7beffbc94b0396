package speedtest

import (
	"io"
	"time"

	"github.com/fatih/color"
)

// DefaultRepetitions is used when no positive repetition count is given.
const DefaultRepetitions = 10000

// Observer is notified after each repetition has been timed. iteration
// counts from 1. Time spent in the observer is not measured.
type Observer func(iteration, total int, elapsed time.Duration)

type config struct {
	repetitions int
	clock       Clock
	output      io.Writer
	diagnostics io.Writer
	observer    Observer

	// Colour applies to the default writers only, unless forced.
	colorOutput      bool
	colorDiagnostics bool
	forceColor       *bool
}

func defaultConfig() config {
	return config{
		repetitions: DefaultRepetitions,
		clock:       HostClock(),
		output:      color.Output,
		diagnostics: color.Error,

		colorOutput:      true,
		colorDiagnostics: true,
	}
}

func (c *config) outputColored() bool {
	if c.forceColor != nil {
		return *c.forceColor
	}
	return c.colorOutput
}

func (c *config) diagnosticsColored() bool {
	if c.forceColor != nil {
		return *c.forceColor
	}
	return c.colorDiagnostics
}

// Option configures a Runner.
type Option func(*config)

// WithRepetitions sets how many times the unit is invoked. Values below 1
// select DefaultRepetitions.
func WithRepetitions(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = DefaultRepetitions
		}
		c.repetitions = n
	}
}

// WithClock replaces the host clock. A nil clock is ignored.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithOutput sets the writer that receives the summary line. Output to w
// is not coloured unless WithColor(true) is also given.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
			c.colorOutput = false
		}
	}
}

// WithDiagnostics sets the writer that receives one line per failed
// repetition. Output to w is not coloured unless WithColor(true) is also
// given.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.diagnostics = w
			c.colorDiagnostics = false
		}
	}
}

// WithColor forces colouring of both writers on or off. color.NoColor
// still disables colour globally.
func WithColor(enabled bool) Option {
	return func(c *config) { c.forceColor = &enabled }
}

// WithObserver registers o to be called after every repetition.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}
