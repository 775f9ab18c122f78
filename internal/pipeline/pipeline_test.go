// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_EndToEndRanksReferencedDefinitionAboveUnreferenced(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "utils.py", "def add(a, b):\n    return a + b\n\ndef unused():\n    pass\n")
	writeFile(t, dir, "main.py", "from utils import add\n\nadd(1, 2)\n")

	result, err := Run(context.Background(), Config{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Empty(t, result.Skips)
	require.Len(t, result.Defs, 2)

	var addScore, unusedScore float64
	for _, d := range result.Defs {
		switch d.Def.Name {
		case "add":
			addScore = d.Score
		case "unused":
			unusedScore = d.Score
		}
	}
	assert.Greater(t, addScore, unusedScore)
}

func TestRun_MissingPathIsReported(t *testing.T) {
	_, err := Run(context.Background(), Config{Paths: []string{"/does/not/exist"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPath)
}

func TestRun_NegativeMaxFileSizeIsInvalidArgument(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), Config{Paths: []string{dir}, MaxFileSize: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmit_WritesTSVRowsForScoredDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "export function f(){}\n")

	result, err := Run(context.Background(), Config{Paths: []string{dir}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, result))
	assert.Contains(t, buf.String(), "f\t")
	assert.True(t, strings.Count(buf.String(), "\n") >= 1)
}
