// Package testutil holds small helpers shared across test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteHCL drops one HCL file into a fresh temp directory and returns the
// directory path.
func WriteHCL(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
	return dir
}
