package termsize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsFromEnvironment(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	assert.Equal(t, 132, Columns())
}

func TestRowsFromEnvironment(t *testing.T) {
	t.Setenv("LINES", "50")
	assert.Equal(t, 50, Rows())
}

func TestInvalidEnvironmentIgnored(t *testing.T) {
	t.Setenv("COLUMNS", "wide")
	assert.Positive(t, Columns())

	t.Setenv("COLUMNS", "-3")
	assert.Positive(t, Columns())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
