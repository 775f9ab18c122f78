// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package frecency

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_NoRepositoryIsNeutral(t *testing.T) {
	o := Open(t.TempDir())

	assert.Equal(t, float32(1.0), o.Weight("anything.py"))
	assert.Equal(t, float32(1.0), o.Weight("also/anything.go"))
}

func TestMap_AllNeutralWithoutRepository(t *testing.T) {
	o := Open(t.TempDir())
	m := o.Map([]string{"a.py", "b.py"})

	assert.Equal(t, map[string]float64{"a.py": 1.0, "b.py": 1.0}, m)
}

// TestWeight_NormalizesDiscoveryPathToRepoRoot covers the mismatch between
// discover's paths (a directory argument joined with the file's path under
// it) and go-git's repo-root-relative diff keys: a file looked up by its
// absolute path inside a subdirectory must still hit the weight recorded
// under its repo-root-relative key.
func TestWeight_NormalizesDiscoveryPathToRepoRoot(t *testing.T) {
	root := t.TempDir()
	o := &Oracle{
		root:    root,
		weights: map[string]float64{"sub/a.py": 2.0},
	}

	discoveryPath := filepath.Join(root, "sub", "a.py")
	assert.Equal(t, float32(3.0), o.Weight(discoveryPath))
}
