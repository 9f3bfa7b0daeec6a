package ux

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &buf)
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]int{"count": 2}))

	var out map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 2, out["count"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &buf)
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]string{"name": "Green Acres"}))
	assert.Contains(t, buf.String(), "name: Green Acres")
}

func TestTextFormatterRequiresStringer(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &buf)
	require.NoError(t, err)

	require.NoError(t, f.Format("plain line"))
	assert.Equal(t, "plain line\n", buf.String())

	assert.Error(t, f.Format(struct{ X int }{1}))
}

func TestUnknownFormat(t *testing.T) {
	_, err := NewFormatter("xml", nil)
	assert.Error(t, err)
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable("ID", "NAME", "ROLE")
	table.AddRow("soc-1", "Green Acres", "manager")
	table.AddRow("soc-2", "Palm Court", "member")

	require.NoError(t, table.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Green Acres")
	assert.Contains(t, out, "Palm Court")
	assert.Equal(t, 2, table.Len())
}
