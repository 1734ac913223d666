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

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunStdin(t *testing.T) {
	t.Parallel()
	code, out, _ := runCmd(t, "a,bb\nccc,d\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a    bb\nccc  d\n", out)
}

func TestRunFlags(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"dash is stdin":  {stdin: "a,b\n", args: []string{"-"}, want: "a   b\n"},
		"width and pad":  {stdin: "a,b\n", args: []string{"-w", "4", "-p", "1"}, want: "a    b\n"},
		"no padding":     {stdin: "ab,c\nd,e\n", args: []string{"--width=0", "--pad=0"}, want: "abc\nd e\n"},
		"condense":       {stdin: "hello,x\n", args: []string{"-c", "3"}, want: "he…  x\n"},
		"tab delimiter":  {stdin: "a\tbb\nccc\td\n", args: []string{"-d", `\t`}, want: "a    bb\nccc  d\n"},
		"pipe delimiter": {stdin: "a|bb\n", args: []string{"--delimiter", "|"}, want: "a   bb\n"},
		"cells":          {stdin: "日本,x\nabc,y\n", args: []string{"--cells"}, want: "日本  x\nabc   y\n"},
		"empty input":    {stdin: "", want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, out, errOut := runCmd(t, tt.stdin, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"long delimiter":   {args: []string{"-d", "ab"}, wantErr: "invalid delimiter"},
		"empty delimiter":  {args: []string{"-d", ""}, wantErr: "invalid delimiter"},
		"negative pad":     {args: []string{"--pad=-1"}, wantErr: "invalid option"},
		"non-numeric":      {args: []string{"-w", "wide"}},
		"unknown flag":     {args: []string{"--colour"}},
		"too many inputs":  {args: []string{"a.csv", "b.csv"}},
		"missing config":   {args: []string{"--config", "/nonexistent/tabulate.yaml"}},
		"bad condense":     {args: []string{"--condense=-4"}, wantErr: "invalid option"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, out, errOut := runCmd(t, "a,b\n", tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()
	code, out, errOut := runCmd(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage: tabulate")
	assert.Contains(t, errOut, "--condense")
}

func TestRunParseError(t *testing.T) {
	t.Parallel()
	code, out, errOut := runCmd(t, "a,b\n\"open,c\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "<stdin>")
}

func TestRunInputFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("x;yy\nzzz;w\n"), 0o644))
	code, out, errOut := runCmd(t, "", "-d", ";", in)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "x    yy\nzzz  w\n", out)
}

func TestRunMissingInput(t *testing.T) {
	t.Parallel()
	code, out, _ := runCmd(t, "", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestRunOutputFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	code, out, errOut := runCmd(t, "a,bb\nccc,d\n", "-o", path)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a    bb\nccc  d\n", string(data))
}

func TestRunOutputFileEmptyInput(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	code, _, errOut := runCmd(t, "", "-o", path)
	require.Equal(t, 0, code, errOut)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRunOutputFileNotCreatedOnParseError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	code, _, _ := runCmd(t, "a,b\n\"open\n", "-o", path)
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, path)
}

func TestRunOutputFileUnwritable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	code, _, errOut := runCmd(t, "a,b\n", "-o", path)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tabulate.yaml")
	out := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(cfg, []byte("pad: 4\ndelimiter: ';'\noutput: "+out+"\n"), 0o644))

	code, stdout, errOut := runCmd(t, "a;b\n", "--config", cfg)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a     b\n", string(data))
}

func TestRunFlagsOverrideConfigFile(t *testing.T) {
	t.Parallel()
	cfg := filepath.Join(t.TempDir(), "tabulate.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("pad: 4\nwidth: 0\ndelimiter: ';'\n"), 0o644))

	code, out, errOut := runCmd(t, "a;b\n", "--config", cfg, "-p", "1")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "a b\n", out)
}

func TestRunConfigFileInvalid(t *testing.T) {
	t.Parallel()
	cfg := filepath.Join(t.TempDir(), "tabulate.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("delimiter: '::'\n"), 0o644))

	code, out, errOut := runCmd(t, "a,b\n", "--config", cfg)
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid delimiter")
}

func TestRunDebugLogging(t *testing.T) {
	t.Parallel()
	code, _, errOut := runCmd(t, "a,b\n", "--log-level", "debug")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "msg=options")
	assert.Contains(t, errOut, "msg=\"table written\"")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, isTerminal(strings.NewReader("")))
}
