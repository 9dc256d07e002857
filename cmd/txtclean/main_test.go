package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The last column uses decimal commas, which do not count as numeric.
const sample = "Instrument: TGA\n[step]\nTime Temp Weight\ns C mg\n0.5 2.0 1,5\n1.5 4.0 2,5\n"

// emptyConfig keeps local and user config files out of the run.
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-config", emptyConfig(t)}, args...)
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunStdin(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := runCLI(t, sample)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Time\tTemp\tWeight\n0.5\t2.0\t1,5\n1.5\t4.0\t2,5\n", stdout)
	assert.Contains(t, stderr, "table detected: 3 columns, 2 rows (from line 5)")
	assert.Contains(t, stderr, "Preview (2 of 2 rows)")
}

func TestRunOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"semicolon decimal dot": {args: []string{"-sep", "semicolon", "-decimal-dot"}, want: "Time;Temp;Weight\n0.5;2.0;1.5\n1.5;4.0;2.5\n"},
		"no header":             {args: []string{"-no-header"}, want: "0.5\t2.0\t1,5\n1.5\t4.0\t2,5\n"},
		"csv":                   {args: []string{"-format", "csv", "-sep", "comma"}, want: "Time,Temp,Weight\n0.5,2.0,\"1,5\"\n1.5,4.0,\"2,5\"\n"},
		"jsonl":                 {args: []string{"-format", "jsonl", "-no-header"}, want: "[\"0.5\",\"2.0\",\"1,5\"]\n[\"1.5\",\"4.0\",\"2,5\"]\n"},
		"skip without marker":   {args: []string{"-skip", "1", "-marker", ""}, want: "Time\tTemp\tWeight\n0.5\t2.0\t1,5\n1.5\t4.0\t2,5\n"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runCLI(t, sample, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunQuiet(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := runCLI(t, sample, "-q")
	require.Equal(t, 0, code)
	assert.NotEmpty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunNoPreview(t *testing.T) {
	t.Parallel()
	code, _, stderr := runCLI(t, sample, "-preview", "0")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "table detected")
	assert.NotContains(t, stderr, "Preview")
}

func TestRunPreviewCapped(t *testing.T) {
	t.Parallel()
	code, _, stderr := runCLI(t, sample, "-preview", "1", "-border", "ascii")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "Preview (1 of 2 rows)")
	assert.NotContains(t, stderr, "4.0")
}

func TestRunDebug(t *testing.T) {
	t.Parallel()
	code, _, stderr := runCLI(t, sample, "-debug")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "[debug] 6 lines, offset 1")
}

func TestRunNotFound(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := runCLI(t, "Instrument: TGA\nnotes here\n1 2\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "could not find where the table starts")
	assert.Contains(t, stderr, "-marker")
}

func TestRunEmptyTable(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := runCLI(t, "A B C D\nu u u u\n1 2\n3 4\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no valid data rows")
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args   []string
		errMsg string
	}{
		"bad separator":  {args: []string{"-sep", "pipe"}, errMsg: "unsupported separator"},
		"bad format":     {args: []string{"-format", "xml"}, errMsg: "unsupported format"},
		"bad border":     {args: []string{"-border", "double"}, errMsg: "unknown border"},
		"negative skip":  {args: []string{"-skip", "-1"}, errMsg: "skip must not be negative"},
		"too many files": {args: []string{"a.txt", "b.txt"}, errMsg: "at most one input file"},
		"w without file": {args: []string{"-w"}, errMsg: "-w needs an input file"},
		"w with o":       {args: []string{"-w", "-o", "out.txt", "in.txt"}, errMsg: "mutually exclusive"},
		"missing input":  {args: []string{"does-not-exist.txt"}, errMsg: "reading input"},
		"unknown flag":   {args: []string{"-bogus"}, errMsg: "flag provided but not defined"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runCLI(t, sample, tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.errMsg)
		})
	}
}

func TestRunMissingConfig(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, strings.NewReader(sample), &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "reading config")
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: comma\ninclude_header: false\n"), 0o600))
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", path, "-format", "text"}, strings.NewReader(sample), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "0.5,2.0,1,5\n1.5,4.0,2,5\n", stdout.String())
}

func TestRunFlagOverridesConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: comma\n"), 0o600))
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", path, "-sep", "space"}, strings.NewReader(sample), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Time Temp Weight\n0.5 2.0 1,5\n1.5 4.0 2,5\n", stdout.String())
}

func TestRunOutputFile(t *testing.T) {
	t.Parallel()
	dest := filepath.Join(t.TempDir(), "out.txt")
	code, stdout, stderr := runCLI(t, sample, "-o", dest)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Time\tTemp\tWeight\n0.5\t2.0\t1,5\n1.5\t4.0\t2,5\n", string(got))
	assert.Contains(t, stderr, "wrote "+dest)
}

func TestRunWriteNextToInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := filepath.Join(dir, "run1.txt")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0o600))

	code, stdout, stderr := runCLI(t, "", "-w", input)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	got, err := os.ReadFile(filepath.Join(dir, "run1_clean.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Time\tTemp\tWeight\n0.5\t2.0\t1,5\n1.5\t4.0\t2,5\n", string(got))
}

func TestCleanName(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"with extension": {in: "data/run.txt", want: filepath.Join("data", "run_clean.txt")},
		"no extension":   {in: "run", want: "run_clean.txt"},
		"double ext":     {in: "/tmp/a.tar.txt", want: "/tmp/a.tar_clean.txt"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cleanName(tt.in))
		})
	}
}
