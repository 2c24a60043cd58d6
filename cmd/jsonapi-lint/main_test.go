package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reoring/jsonapi"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func parseArgs(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("jsonapi-lint"))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestCLI_Defaults(t *testing.T) {
	cli := parseArgs(t)
	assert.Equal(t, "document", cli.Kind)
	assert.Equal(t, "auto", cli.Format)
	assert.False(t, cli.StrictKeys)
	assert.Empty(t, cli.Files)
}

func TestCLI_RejectsUnknownKind(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--kind", "collection"})
	assert.Error(t, err)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"data": {"type": "articles", "id": "1"}}`)
	bad := writeFile(t, dir, "bad.json", `{"data": {"type": "articles", "id": "1", "attributes": []}}`)
	fixture := writeFile(t, dir, "fixture.yaml", "data:\n  type: articles\n  id: \"1\"\n  links:\n    self: /articles/1\n")
	missing := filepath.Join(dir, "missing.json")

	var out bytes.Buffer
	cli := parseArgs(t, good, bad, fixture, missing)
	ok := run(cli, strings.NewReader(""), &out, zap.NewNop())

	assert.False(t, ok)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, good+": ok", lines[0])
	assert.Equal(t, bad+": /data/attributes: "+jsonapi.MsgAttributes, lines[1])
	assert.Equal(t, fixture+": ok", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], missing+": "), lines[3])
}

func TestRun_Stdin(t *testing.T) {
	cases := []struct {
		name string
		args []string
		in   string
		ok   bool
		want string
	}{
		{"resource payload", []string{"--kind", "resource"}, `{"data": {"type": "photos"}}`, true, "<stdin>: ok"},
		{"document rejects missing id", nil, `{"data": [{"type": "photos"}]}`, false, "<stdin>: /data/0: " + jsonapi.MsgResourceID},
		{"relationship payload", []string{"-k", "relationship"}, `{"data": []}`, true, "<stdin>: ok"},
		{"yaml forced", []string{"--format", "yaml"}, "meta:\n  total: 3\n", true, "<stdin>: ok"},
		{"decode error", nil, `{"data": `, false, "<stdin>: parse_error"},
		{"strict keys", []string{"--strict-keys"}, `{"meta": {}, "meta": {}}`, false, "<stdin>: duplicate_key at /meta"},
		{"max bytes", []string{"--max-bytes", "4"}, `{"meta": {}}`, false, "<stdin>: truncated"},
		{"max bytes yaml", []string{"--max-bytes", "4", "-f", "yaml"}, "meta: {}\n", false, "<stdin>: truncated"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			ok := run(parseArgs(t, tc.args...), strings.NewReader(tc.in), &out, zap.NewNop())
			assert.Equal(t, tc.ok, ok)
			assert.True(t, strings.HasPrefix(out.String(), tc.want), out.String())
		})
	}
}

func TestRun_DuplicateKeysWarnByDefault(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var out bytes.Buffer
	ok := run(parseArgs(t), strings.NewReader(`{"meta": {}, "meta": {}}`), &out, zap.New(core))

	assert.True(t, ok)
	assert.Equal(t, "<stdin>: ok\n", out.String())
	warnings := logs.FilterMessage("duplicate key").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "/meta", warnings[0].ContextMap()["pointer"])
	assert.Equal(t, "<stdin>", warnings[0].ContextMap()["file"])
}

func TestFormatFor(t *testing.T) {
	cli := &CLI{Format: "auto"}
	assert.Equal(t, "yaml", cli.formatFor("a.yml"))
	assert.Equal(t, "yaml", cli.formatFor("a.YAML"))
	assert.Equal(t, "json", cli.formatFor("a.json"))
	assert.Equal(t, "json", cli.formatFor(stdinName))

	cli.Format = "yaml"
	assert.Equal(t, "yaml", cli.formatFor("a.json"))
}
