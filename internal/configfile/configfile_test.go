package configfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
# s9s user configuration
controller = https://10.0.0.5:9501
cmon_user  = "admin"   # trailing comment
only_ascii = yes
; alternate comment

[global]
rpc_tls = true

[cluster]
cluster_format = "%I\t%N\n"
quoted = "say \"hi\""
empty =
`

func TestParse(t *testing.T) {
	c := New("s9s.conf")
	require.NoError(t, c.Parse(sampleConfig))

	assert.Equal(t, "https://10.0.0.5:9501", c.VariableValue(GlobalSection, "controller"))
	assert.Equal(t, "admin", c.VariableValue(GlobalSection, "cmon_user"))
	assert.Equal(t, "yes", c.VariableValue(GlobalSection, "only_ascii"))
	assert.Equal(t, "true", c.VariableValue(GlobalSection, "rpc_tls"), "[global] is the unnamed section")
	assert.Equal(t, "%I\t%N\n", c.VariableValue("cluster", "cluster_format"))
	assert.Equal(t, `say "hi"`, c.VariableValue("cluster", "quoted"))
}

func TestAbsentAndEmptyAreIndistinguishableByValue(t *testing.T) {
	c := New("")
	require.NoError(t, c.Parse(sampleConfig))

	assert.Equal(t, "", c.VariableValue("cluster", "empty"))
	assert.Equal(t, "", c.VariableValue("cluster", "missing"))
	assert.True(t, c.HasVariable("cluster", "empty"))
	assert.False(t, c.HasVariable("cluster", "missing"))
}

func TestVariableValueInFallsBackToGlobal(t *testing.T) {
	c := New("")
	require.NoError(t, c.Parse(sampleConfig))

	value, ok := c.VariableValueIn("cluster", "cmon_user")
	assert.True(t, ok)
	assert.Equal(t, "admin", value)

	value, ok = c.VariableValueIn("cluster", "cluster_format")
	assert.True(t, ok)
	assert.Equal(t, "%I\t%N\n", value)

	_, ok = c.VariableValueIn("node", "cluster_format")
	assert.False(t, ok)
}

func TestLaterDefinitionWins(t *testing.T) {
	c := New("")
	require.NoError(t, c.Parse("controller = first\ncontroller = second\n"))

	assert.Equal(t, "second", c.VariableValue(GlobalSection, "controller"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{name: "missing equals", text: "controller\n", line: 1},
		{name: "unterminated section", text: "a = b\n[cluster\n", line: 2},
		{name: "empty section", text: "[]\n", line: 1},
		{name: "missing key", text: "= value\n", line: 1},
		{name: "invalid key", text: "bad key = value\n", line: 1},
		{name: "unterminated quote", text: "\n\nname = \"abc\n", line: 3},
		{name: "text after quote", text: "name = \"abc\" def\n", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test.conf").Parse(tt.text)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, "test.conf", perr.File)
			assert.True(t, IsParseError(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s9s.conf")
	require.NoError(t, os.WriteFile(path, []byte("controller = test.host:42\n"), 0o644))

	c := New(path)
	require.NoError(t, c.Load())
	assert.Equal(t, "test.host:42", c.VariableValue(GlobalSection, "controller"))
	assert.Equal(t, path, c.Path())
}

func TestLoadMissingFile(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing.conf"))

	err := c.Load()
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.False(t, IsParseError(err))
}

func TestLongLines(t *testing.T) {
	long := strings.Repeat("a", 70000)

	c := New("")
	require.NoError(t, c.Parse("# header\ncontroller = "+long+"\ncmon_user = admin\n"))
	assert.Equal(t, long, c.VariableValue(GlobalSection, "controller"))
	assert.Equal(t, "admin", c.VariableValue(GlobalSection, "cmon_user"))

	err := New("s9s.conf").Parse("controller = x\n" + long + "\n")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}
