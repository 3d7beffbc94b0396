package main

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/violenttestpen/speedtest"
)

func TestList2Cmdline(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ls", []string{"ls"}},
		{"ls -la  /tmp", []string{"ls", "-la", "/tmp"}},
		{"echo\t'hello world'", []string{"echo", "hello world"}},
		{`echo "it's"`, []string{"echo", "it's"}},
		{`echo ""`, []string{"echo", ""}},
		{`echo a"b c"d`, []string{"echo", "ab cd"}},
		{`echo \"x\"`, []string{"echo", `"x"`}},
		{`C:\bin\tool.exe`, []string{`C:\bin\tool.exe`}},
		{`echo \\"a b"`, []string{"echo", `\a b`}},
		{`echo \\\"x`, []string{"echo", `\"x`}},
		{`echo a\\\\"b"`, []string{"echo", `a\\b`}},
		{`dir\`, []string{`dir\`}},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			require.Equal(t, test.want, list2Cmdline(test.in))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "0.00 ns", formatDuration(0))
	require.Equal(t, "999.00 ns", formatDuration(999))
	require.Equal(t, "1.50 µs", formatDuration(1500))
	require.Equal(t, "5.25 ms", formatDuration(5250*time.Microsecond))
	require.Equal(t, "2.00 s", formatDuration(2*time.Second))
	require.Equal(t, "1.50 h", formatDuration(90*time.Minute))
}

func TestMeanDuration(t *testing.T) {
	require.Equal(t, 2500*time.Microsecond, meanDuration(speedtest.Result{AverageMs: 2.5}))
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, "", progressBar(-3, 0.5))
	bar := progressBar(10, 0.3)
	require.Equal(t, 10, utf8.RuneCountInString(bar))
	require.Equal(t, 3, strings.Count(bar, progressDoneRune))
	require.Equal(t, strings.Repeat(progressDoneRune, 4), progressBar(4, 1.5))
}

func TestFormatETA(t *testing.T) {
	require.Equal(t, "00:00:00", formatETA(0))
	require.Equal(t, "01:01:01", formatETA(time.Hour+time.Minute+time.Second))
	require.Equal(t, "00:02:05", formatETA(125*time.Second))
}

func TestCommandArgs(t *testing.T) {
	defer func(n bool, s string) { noShell, shell = n, s }(noShell, shell)

	noShell, shell = true, "/bin/sh"
	require.Equal(t, []string{"sleep", "1"}, commandArgs("sleep 1"))

	noShell = false
	argv := commandArgs("sleep 1")
	require.Len(t, argv, 3)
	require.Equal(t, "/bin/sh", argv[0])
	require.Equal(t, "sleep 1", argv[2])
}

func TestRanking(t *testing.T) {
	ranks := ranking([]*benchmarkResult{
		{cmd: "slow", result: speedtest.Result{AverageMs: 6}},
		{cmd: "fast", result: speedtest.Result{AverageMs: 2}},
		{cmd: "mid", result: speedtest.Result{AverageMs: 3}},
	})
	require.Equal(t, []rank{{"fast", 1}, {"mid", 1.5}, {"slow", 3}}, ranks)

	ranks = ranking([]*benchmarkResult{
		{cmd: "a", result: speedtest.Result{}},
		{cmd: "b", result: speedtest.Result{AverageMs: 1}},
	})
	require.Equal(t, []rank{{"a", 0}, {"b", 0}}, ranks)
}
