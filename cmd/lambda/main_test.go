package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/driver"
	"github.com/egarof00/PLGroup/pkg/interpreter"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// runCLI runs the command with an isolated config file.
func runCLI(t *testing.T, stdin string, config string, args ...string) (int, string, string) {
	t.Helper()
	cfgPath := writeTempFile(t, driver.ConfigFileName, config)
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--config", cfgPath}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg := driver.DefaultConfig()
	cfg.Color = false
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &app{
		stdout: &stdout,
		stderr: &stderr,
		cfg:    cfg,
		logger: logger,
		interp: interpreter.New(interpreter.WithLogger(logger)),
	}, &stdout, &stderr
}

func TestRunEvaluatesArgument(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "color: false\n", `(\x.x+1) 2`)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "3.0\n", stdout)
}

func TestRunEvalSubcommandHighlights(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "", "eval", "1:#")
	require.Equal(t, 0, code)
	assert.Equal(t, "\033[95m(1.0 : #)\033[0m\n", stdout)
}

func TestRunColorFlagOverridesConfig(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "color: true\n", "--color=false", "#")
	require.Equal(t, 0, code)
	assert.Equal(t, "#\n", stdout)
}

func TestRunReadsSourceFile(t *testing.T) {
	src := writeTempFile(t, "fact.lc", `letrec f = \n. if n==0 then 1 else n*f(n-1) in f 4`)
	code, stdout, stderr := runCLI(t, "", "color: false\n", "eval", "--file", src)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "24.0\n", stdout)
}

func TestRunReadsJSONAST(t *testing.T) {
	data, err := ast.MarshalTerm(ast.Call(ast.Fn("x", ast.Bin(ast.OpMultiply, ast.V("x"), ast.V("x"))), ast.N(3)))
	require.NoError(t, err)
	path := writeTempFile(t, "term.json", string(data))

	code, stdout, stderr := runCLI(t, "", "color: false\n", "--ast", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "9.0\n", stdout)
}

func TestRunReadsStdin(t *testing.T) {
	code, stdout, _ := runCLI(t, "hd (1:2:#)\n", "color: false\n", "eval")
	require.Equal(t, 0, code)
	assert.Equal(t, "1.0\n", stdout)
}

func TestRunRejectsConflictingInputs(t *testing.T) {
	src := writeTempFile(t, "x.lc", "1")
	code, _, stderr := runCLI(t, "", "", "eval", "--file", src, "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "at most one")
}

func TestRunReportsSyntaxAndEvaluationErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "", "", "(1 +")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "syntax error")

	code, _, stderr = runCLI(t, "", "", "hd 1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "hd applied to non-list 1.0")
}

func TestRunStepLimitFromFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "", "", "--max-steps", "500", `(\x.x x)(\x.x x)`)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "step limit exceeded")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	code, _, stderr := runCLI(t, "", "log_format: xml\n", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "log_format")
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "", "version")
	require.Equal(t, 0, code)
	assert.Equal(t, cliToolVersion+"\n", stdout)
}

func TestRunVersionIgnoresBrokenConfig(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "log_format: xml\nnot_a_key: 1\n", "version")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, cliToolVersion+"\n", stdout)
}

func TestRunCheck(t *testing.T) {
	passing := writeTempFile(t, "ok.yml", `
name: ok
cases:
  - source: '1:2 == 1:2'
    expect: '1.0'
  - source: 'tl 1'
    error: 'non-list'
`)
	code, stdout, stderr := runCLI(t, "", "", "check", passing)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "ok\tok\t2/2 passed")

	failing := writeTempFile(t, "bad.yml", `
name: bad
cases:
  - source: '1+1'
    expect: '3.0'
`)
	code, stdout, stderr = runCLI(t, "", "", "check", passing, failing)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "FAIL bad: 1+1")
	assert.Contains(t, stdout, "expected 3.0, got 2.0")
	assert.Contains(t, stderr, "1 case(s) failed")
}

type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func TestReplSession(t *testing.T) {
	a, stdout, stderr := newTestApp(t)
	in := &scriptedPrompter{lines: []string{
		`let f = \x.x+1`,
		`in f 1`,
		":ast",
		"hd 1",
		":nope",
		":quit",
		"1",
	}}
	var history []string
	s := &replSession{app: a}
	require.NoError(t, s.loop(in, func(line string) { history = append(history, line) }))

	assert.Equal(t, []string{promptMain, promptCont, promptMain, promptMain, promptMain, promptMain}, in.prompts)
	assert.True(t, strings.HasPrefix(stdout.String(), "2.0\n{"))
	assert.Contains(t, stdout.String(), `"type": "Let"`)
	assert.Contains(t, stderr.String(), "hd applied to non-list")
	assert.Contains(t, stderr.String(), "unknown command")
	assert.Equal(t, `let f = \x.x+1 in f 1`, history[0])
	assert.Len(t, in.lines, 1)
}

func TestReplStopsAtEndOfInput(t *testing.T) {
	a, stdout, _ := newTestApp(t)
	s := &replSession{app: a}
	require.NoError(t, s.loop(&scriptedPrompter{lines: []string{"#"}}, nil))
	assert.Equal(t, "#\n\n", stdout.String())
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "evaluate"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPEvaluate(t *testing.T) {
	a, _, _ := newTestApp(t)
	res, err := a.handleEvaluate(context.Background(), toolRequest(map[string]any{"source": `(\x.x) #`}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "#", resultText(t, res))
}

func TestMCPEvaluateWithAST(t *testing.T) {
	a, _, _ := newTestApp(t)
	res, err := a.handleEvaluate(context.Background(), toolRequest(map[string]any{"source": "1+1", "ast": true}))
	require.NoError(t, err)
	text := resultText(t, res)
	assert.True(t, strings.HasPrefix(text, "2.0\n"))
	assert.Contains(t, text, `"type": "BinOp"`)
}

func TestMCPEvaluateReportsErrors(t *testing.T) {
	a, _, _ := newTestApp(t)
	for _, args := range []map[string]any{
		{},
		{"source": "(1"},
		{"source": "tl 1"},
	} {
		res, err := a.handleEvaluate(context.Background(), toolRequest(args))
		require.NoError(t, err)
		assert.True(t, res.IsError, "%v", args)
	}
}

func TestMCPServerRegistersTool(t *testing.T) {
	a, _, _ := newTestApp(t)
	assert.NotNil(t, a.newMCPServer())
}

func TestReadByParseProbeAbandonsOnInterrupt(t *testing.T) {
	in := promptFunc(func(string) (string, error) { return "", errors.New("prompt aborted") })
	src, ok := readByParseProbe(in, promptMain, promptCont)
	assert.True(t, ok)
	assert.Empty(t, src)
}

type promptFunc func(string) (string, error)

func (f promptFunc) Prompt(prompt string) (string, error) { return f(prompt) }
