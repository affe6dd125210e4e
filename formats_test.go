package easypath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/easypath/errors"
)

type settings struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Port    int      `json:"port" yaml:"port" toml:"port"`
	Tags    []string `json:"tags" yaml:"tags" toml:"tags"`
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
}

var sampleSettings = settings{Name: "api", Port: 8080, Tags: []string{"a", "b"}, Enabled: true}

func TestJSON(t *testing.T) {
	p, dir := newLocalPaths(t)

	require.NoError(t, p.WriteJSON("conf/settings.json", sampleSettings))

	var got settings
	require.NoError(t, p.ReadJSON("conf/settings.json", &got))
	assert.Equal(t, sampleSettings, got)

	raw, err := os.ReadFile(filepath.Join(dir, "conf", "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"api\",\n  \"port\": 8080,\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ],\n  \"enabled\": true\n}\n", string(raw))
}

func TestWriteJSON_SortsKeys(t *testing.T) {
	p, dir := newLocalPaths(t)

	require.NoError(t, p.WriteJSON("m.json", map[string]int{"b": 2, "a": 1, "c": 3}, WithIndent(-1)))

	raw, err := os.ReadFile(filepath.Join(dir, "m.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1,\"b\":2,\"c\":3}\n", string(raw))
}

func TestJSON_Errors(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"bad.json": "{not json"})

	var v map[string]any
	requireCode(t, p.ReadJSON("bad.json", &v), errors.CodeDecodeFailed)
	requireCode(t, p.ReadJSON("missing.json", &v), errors.CodeNotFound)
	requireCode(t, p.WriteJSON("ch.json", make(chan int)), errors.CodeEncodeFailed)
}

func TestCSV(t *testing.T) {
	p, dir := newLocalPaths(t)
	rows := []map[string]string{
		{"name": "alice", "age": "30"},
		{"name": "bob"},
	}

	require.NoError(t, p.WriteCSV("people.csv", rows, []string{"name", "age"}))

	raw, err := os.ReadFile(filepath.Join(dir, "people.csv"))
	require.NoError(t, err)
	assert.Equal(t, "name,age\r\nalice,30\r\nbob,\r\n", string(raw))

	got, err := p.ReadCSV("people.csv")
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"name": "alice", "age": "30"},
		{"name": "bob", "age": ""},
	}, got)
}

func TestCSV_ShortRowsAndDelimiter(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"semi.csv": "a;b;c\n1;2\n4;5;6\n"})

	got, err := p.ReadCSV("semi.csv", WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"a": "1", "b": "2", "c": ""},
		{"a": "4", "b": "5", "c": "6"},
	}, got)

	writeTree(t, dir, map[string]string{"empty.csv": ""})
	got, err = p.ReadCSV("empty.csv")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteCSV_UnknownField(t *testing.T) {
	p, dir := newLocalPaths(t)

	err := p.WriteCSV("x.csv", []map[string]string{{"extra": "1"}}, []string{"name"})
	requireCode(t, err, errors.CodeInvalidInput)
	assert.NoFileExists(t, filepath.Join(dir, "x.csv"))
}

func TestYAML(t *testing.T) {
	p, dir := newLocalPaths(t)

	require.NoError(t, p.WriteYAML("conf.yaml", sampleSettings))

	raw, err := os.ReadFile(filepath.Join(dir, "conf.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "name: api\nport: 8080\n")

	var got settings
	require.NoError(t, p.ReadYAML("conf.yaml", &got))
	assert.Equal(t, sampleSettings, got)

	writeTree(t, dir, map[string]string{"bad.yaml": "key: [unclosed"})
	requireCode(t, p.ReadYAML("bad.yaml", &got), errors.CodeDecodeFailed)
}

func TestTOML(t *testing.T) {
	p, dir := newLocalPaths(t)

	require.NoError(t, p.WriteTOML("conf.toml", sampleSettings))

	var got settings
	require.NoError(t, p.ReadTOML("conf.toml", &got))
	assert.Equal(t, sampleSettings, got)

	writeTree(t, dir, map[string]string{"bad.toml": "key = "})
	requireCode(t, p.ReadTOML("bad.toml", &got), errors.CodeDecodeFailed)
}

func TestFormats_Memory(t *testing.T) {
	p, _ := newMemoryPaths(t)

	require.NoError(t, p.WriteJSON("a.json", sampleSettings, WithAtomic()))
	var got settings
	require.NoError(t, p.ReadJSON("a.json", &got))
	assert.Equal(t, sampleSettings, got)
}
