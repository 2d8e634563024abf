package sltools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExist(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "calib.conf")

	assert.False(t, FileExist(name))
	require.NoError(t, os.WriteFile(name, []byte("[LEFT_CAM_HD]\n"), 0o644))
	assert.True(t, FileExist(name))
	assert.True(t, FileExist(dir))
}
