// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruxlines/internal/discover"
	"cruxlines/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_ParsesAllFilesConcurrently(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.py", "def f(): pass\n")
	p2 := writeFile(t, dir, "b.js", "export function g(){}\n")

	entries := []discover.Entry{
		{Path: p1, Lang: types.Python},
		{Path: p2, Lang: types.JavaScript},
	}

	results, err := Run(context.Background(), entries, 4, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Nil(t, results[0].Skip)
	assert.Equal(t, "f", results[0].Defs[0].Name)
	assert.Nil(t, results[1].Skip)
	assert.Equal(t, "g", results[1].Defs[0].Name)
}

func TestRun_OversizedFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.py", "x = 1\n")

	entries := []discover.Entry{{Path: p, Lang: types.Python}}
	results, err := Run(context.Background(), entries, 1, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Skip)
	assert.Contains(t, results[0].Skip.Reason, "max-file-size")
}

func TestRun_MissingFileIsSkippedNotFatal(t *testing.T) {
	entries := []discover.Entry{{Path: "/nonexistent/path.py", Lang: types.Python}}
	results, err := Run(context.Background(), entries, 1, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Skip)
}
