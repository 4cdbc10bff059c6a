package nbtx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpFileAndParseFileRoundTrip(t *testing.T) {
	tree := buildSampleTree()

	var buf bytes.Buffer
	require.NoError(t, DumpFile(&buf, tree, StrategyGzip))

	parsed, err := ParseFile(&buf)
	require.NoError(t, err)
	require.True(t, Eq(tree, parsed))
}

func TestDumpPathAndParsePathRoundTrip(t *testing.T) {
	tree := buildSampleTree()
	path := filepath.Join(t.TempDir(), "tree.nbtx")

	require.NoError(t, DumpPath(path, tree, StrategyZlib))

	parsed, err := ParsePath(path)
	require.NoError(t, err)
	require.True(t, Eq(tree, parsed))
}

func TestParsePathMissingFile(t *testing.T) {
	_, err := ParsePath(filepath.Join(t.TempDir(), "missing.nbtx"))
	require.Error(t, err)
	require.Equal(t, StatusIO, StatusOf(err))
}

func TestDumpPathUnwritableDirectory(t *testing.T) {
	_, err := os.Stat("/nonexistent-dir-for-nbtx-tests")
	require.True(t, os.IsNotExist(err))

	err2 := DumpPath("/nonexistent-dir-for-nbtx-tests/tree.nbtx", buildSampleTree(), StrategyGzip)
	require.Error(t, err2)
}
