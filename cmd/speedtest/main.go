// Command speedtest reports the average execution time of shell commands.
//
//	speedtest [flags] command...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/violenttestpen/speedtest"
)

var (
	noShell bool
	runs    int
	shell   string
	verbose bool

	setupCmd string

	noColor bool

	// Runner summaries and diagnostics.
	output      io.Writer = color.Output
	diagnostics io.Writer = color.Error
)

type benchmarkResult struct {
	cmd    string
	result speedtest.Result
}

func init() {
	switch runtime.GOOS {
	case "windows":
		shell = "cmd.exe"
	default:
		shell = "/bin/sh"
	}
}

func runSetup(ctx context.Context, cmdToSetup string) error {
	cmdParts := list2Cmdline(cmdToSetup)
	if len(cmdParts) == 0 || cmdParts[0] == "" {
		return errors.New("empty command string")
	}
	return exec.CommandContext(ctx, cmdParts[0], cmdParts[1:]...).Run()
}

// commandArgs returns the argv used to run cmd, wrapped in the
// intermediate shell unless noShell is set.
func commandArgs(cmd string) []string {
	if noShell || shell == "" {
		return list2Cmdline(cmd)
	}
	opt := "-c"
	if runtime.GOOS == "windows" {
		opt = "/C"
	}
	return []string{shell, opt, cmd}
}

// commandUnit runs argv once. Missing executables are reported as
// unresolved references. Once ctx is done the remaining repetitions are
// skipped silently.
func commandUnit(ctx context.Context) speedtest.Unit[[]string] {
	return speedtest.FuncErr(func(argv []string) error {
		if ctx.Err() != nil {
			return nil
		}
		err := exec.CommandContext(ctx, argv[0], argv[1:]...).Run()
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", speedtest.ErrUnresolvedReference, err)
		}
		return err
	})
}

func runBenchmark(ctx context.Context, cmdToBenchmark string) (*benchmarkResult, error) {
	if strings.TrimSpace(cmdToBenchmark) == "" {
		return nil, errors.New("empty command string")
	}
	argv := commandArgs(cmdToBenchmark)
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("empty command string")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprint(output, spew.Sdump(argv))
	}

	opts := []speedtest.Option{
		speedtest.WithRepetitions(runs),
		speedtest.WithOutput(output),
		speedtest.WithDiagnostics(diagnostics),
		speedtest.WithColor(true),
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		var total time.Duration
		opts = append(opts, speedtest.WithObserver(func(i, n int, elapsed time.Duration) {
			total += elapsed
			estimate := total / time.Duration(i)
			eta := estimate * time.Duration(n-i)

			clearCurrentTerminalLine(color.Output)
			line := fmt.Sprintf("Current estimate: %s ", color.GreenString("%s", formatDuration(estimate)))
			printProgressLine(line, float64(i)/float64(n), eta)
			if i == n {
				clearCurrentTerminalLine(color.Output)
			}
		}))
	}

	runner, err := speedtest.New(commandUnit(ctx), argv, opts...)
	if err != nil {
		return nil, err
	}
	result := runner.Run()
	// An interrupted run has a meaningless mean.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &benchmarkResult{cmd: cmdToBenchmark, result: result}, nil
}

func main() {
	flag.BoolVar(&noShell, "N", false, "Run benchmarks without an intermediate shell")
	flag.IntVar(&runs, "runs", 0, fmt.Sprintf("Number of runs per command (default %d)", speedtest.DefaultRepetitions))
	flag.StringVar(&setupCmd, "setup", "", "Command to run before all benchmarks")
	flag.StringVar(&shell, "S", shell, "The intermediate shell to run benchmarks in")
	flag.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	flag.BoolVar(&verbose, "v", false, "Print the arguments passed to each benchmark")
	flag.Parse()
	cmds := flag.Args()

	if noColor {
		color.NoColor = true
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if setupCmd != "" {
		if err := runSetup(ctx, setupCmd); err != nil {
			fmt.Println("An error occurred during setup:", err)
			return
		}
	}

	results := make([]*benchmarkResult, 0, len(cmds))
	for i, cmd := range cmds {
		fmt.Printf("Benchmark #%d: %s\n", i+1, cmd)
		result, err := runBenchmark(ctx, cmd)
		if err != nil {
			fmt.Println("An error occurred during benchmark:", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		fmt.Fprintf(color.Output, "  Time (%s):\t%s\t%s\n\n",
			color.GreenString("mean"),
			color.GreenString("%s", formatDuration(meanDuration(result.result))),
			color.HiBlackString("%d runs", result.result.Repetitions))
		results = append(results, result)
	}

	if len(results) > 1 {
		fmt.Println("Summary")
		for i, line := range ranking(results) {
			if i == 0 {
				fmt.Fprintf(color.Output, "  '%s' ran\n", color.CyanString(line.cmd))
				continue
			}
			fmt.Fprintf(color.Output, "    %s times faster than '%s'\n",
				color.GreenString("%.2f", line.factor),
				color.RedString(line.cmd))
		}
	}
}

type rank struct {
	cmd    string
	factor float64
}

// ranking orders results by mean, fastest first, with each factor
// relative to the fastest. A zero fastest mean yields factors of 0.
func ranking(results []*benchmarkResult) []rank {
	sorted := append([]*benchmarkResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].result.AverageMs < sorted[j].result.AverageMs })

	ranks := make([]rank, len(sorted))
	fastest := sorted[0].result.AverageMs
	for i, r := range sorted {
		ranks[i].cmd = r.cmd
		if fastest > 0 {
			ranks[i].factor = r.result.AverageMs / fastest
		}
	}
	return ranks
}
