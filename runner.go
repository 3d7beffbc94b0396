// Package speedtest measures the average wall-clock time of repeatedly
// invoking a function with a fixed input.
//
//	r, err := speedtest.New(func(lists [][]int) (any, error) {
//		for i := 0; i < len(lists[0]); i++ {
//			// code under test
//		}
//		return nil, nil
//	}, [][]int{a, b})
//	if err != nil {
//		return err
//	}
//	r.Run()
//
// Repetitions run strictly one after another on the calling goroutine.
// Failures of the function, whether returned errors or panics, are reported
// on the diagnostics writer and never stop the loop. Their elapsed time is
// still part of the average.
package speedtest

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
)

// ErrNilUnit is returned by New when no unit-under-test is given.
var ErrNilUnit = errors.New("speedtest: nil unit-under-test")

var (
	failureColor = color.New(color.FgRed)
	averageColor = color.New(color.FgGreen)
)

// Unit is a function whose execution time is measured. Multiple logical
// parameters are passed packed into T.
type Unit[T any] func(T) (any, error)

// Func adapts a function without results to a Unit.
func Func[T any](f func(T)) Unit[T] {
	if f == nil {
		return nil
	}
	return func(v T) (any, error) {
		f(v)
		return nil, nil
	}
}

// FuncErr adapts a function that only reports an error to a Unit.
func FuncErr[T any](f func(T) error) Unit[T] {
	if f == nil {
		return nil
	}
	return func(v T) (any, error) { return nil, f(v) }
}

// Result holds the measurements of the most recent Run.
type Result struct {
	Repetitions int
	Total       time.Duration
	// AverageMs is Total divided by Repetitions, in milliseconds.
	AverageMs float64
}

func (r Result) String() string {
	return fmt.Sprintf("Average execution across %d: %s", r.Repetitions, formatMs(r.AverageMs))
}

// Runner repeatedly invokes a Unit with the same input.
//
// A Runner is not safe for concurrent use.
type Runner[T any] struct {
	unit  Unit[T]
	input T
	cfg   config

	result Result
}

// New returns a Runner that invokes unit with input. The input is passed
// through untouched on every repetition.
func New[T any](unit Unit[T], input T, opts ...Option) (*Runner[T], error) {
	if unit == nil {
		return nil, ErrNilUnit
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner[T]{unit: unit, input: input, cfg: cfg}, nil
}

// Repetitions reports how many times Run invokes the unit.
func (r *Runner[T]) Repetitions() int { return r.cfg.repetitions }

// Result returns the measurements of the latest Run, or the zero Result
// if Run has not been called.
func (r *Runner[T]) Result() Result { return r.result }

// Average returns the latest average execution time in milliseconds.
func (r *Runner[T]) Average() float64 { return r.result.AverageMs }

// Run invokes the unit the configured number of times, stores and returns
// the new Result, and writes the summary line. Every call starts from a
// zero sum.
func (r *Runner[T]) Run() Result {
	n := r.cfg.repetitions
	clock := r.cfg.clock

	var total time.Duration
	for i := 0; i < n; i++ {
		start := clock()
		if err := r.invoke(); err != nil {
			r.report(err)
		}
		elapsed := clock() - start
		// Injected clocks are not required to be monotonic.
		if elapsed < 0 {
			elapsed = 0
		}
		total += elapsed

		if r.cfg.observer != nil {
			r.cfg.observer(i+1, n, elapsed)
		}
	}

	r.result = Result{
		Repetitions: n,
		Total:       total,
		AverageMs:   float64(total) / float64(n) / float64(time.Millisecond),
	}
	avg := formatMs(r.result.AverageMs)
	if r.cfg.outputColored() {
		avg = averageColor.Sprint(avg)
	}
	fmt.Fprintf(r.cfg.output, "Average execution across %d: %s\n", n, avg)
	return r.result
}

// invoke calls the unit once, converting a panic into a *PanicError.
func (r *Runner[T]) invoke() (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()
	_, err = r.unit(r.input)
	return err
}

func (r *Runner[T]) report(err error) {
	kind := Classify(err)
	line := fmt.Sprintf("%s: %s: %v", kind, kind.Hint(), err)
	if r.cfg.diagnosticsColored() {
		line = failureColor.Sprint(line)
	}
	fmt.Fprintln(r.cfg.diagnostics, line)
}

func formatMs(ms float64) string { return strconv.FormatFloat(ms, 'f', -1, 64) }
