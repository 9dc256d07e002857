package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterMono(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		emit  func(*Reporter)
		quiet bool
		debug bool
		want  string
	}{
		"success":       {emit: func(r *Reporter) { r.Success("done %d", 3) }, want: "ok: done 3\n"},
		"warn":          {emit: func(r *Reporter) { r.Warn("careful") }, want: "warning: careful\n"},
		"error":         {emit: func(r *Reporter) { r.Error("bad %s", "input") }, want: "error: bad input\n"},
		"hint":          {emit: func(r *Reporter) { r.Hint("try -skip") }, want: "  try -skip\n"},
		"debug off":     {emit: func(r *Reporter) { r.Debugf("hidden") }, want: ""},
		"debug on":      {emit: func(r *Reporter) { r.Debugf("n=%d", 1) }, debug: true, want: "[debug] n=1\n"},
		"quiet success": {emit: func(r *Reporter) { r.Success("done") }, quiet: true, want: ""},
		"quiet error":   {emit: func(r *Reporter) { r.Error("bad") }, quiet: true, want: "error: bad\n"},
		"block":         {emit: func(r *Reporter) { r.Block("Preview", "a b\n") }, want: "Preview\na b\n"},
		"block no eol":  {emit: func(r *Reporter) { r.Block("Preview", "a b") }, want: "Preview\na b\n"},
		"block empty":   {emit: func(r *Reporter) { r.Block("Preview", "") }, want: ""},
		"block quiet":   {emit: func(r *Reporter) { r.Block("Preview", "x\n") }, quiet: true, want: ""},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.emit(New(&buf, true, tt.debug, tt.quiet))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestWithTheme(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	theme := MonoTheme()
	theme.Icons.Pass = "PASS"
	New(&buf, false, false, false).WithTheme(theme).Success("x")
	assert.Equal(t, "PASS x\n", buf.String())
}

func TestColorThemeIcons(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Icons{Pass: "✓", Fail: "✗", Warn: "⚠", Info: "●"}, ColorTheme(&bytes.Buffer{}).Icons)
}

func TestColorThemeFollowsWriter(t *testing.T) {
	t.Parallel()
	// A buffer is not a terminal, so styles stay plain whatever stdout is.
	theme := ColorTheme(&bytes.Buffer{})
	assert.Equal(t, "done", theme.Success.Render("done"))
	assert.Equal(t, "bad", theme.Error.Render("bad"))
}
