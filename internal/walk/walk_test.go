package walk

import (
	"sort"
	"testing"

	"github.com/globsmith/globsmith/internal/fsadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree() *fsadapter.Memory {
	m := fsadapter.NewMemory()
	m.AddFile("/proj/main.go", "package main")
	m.AddFile("/proj/util.go", "package main")
	m.AddFile("/proj/README.md", "# readme")
	m.AddFile("/proj/.hidden.go", "package main")
	m.AddDir("/proj/sub")
	m.AddFile("/proj/sub/helper.go", "package sub")
	m.AddDir("/proj/sub/deep")
	m.AddFile("/proj/sub/deep/inner.go", "package deep")
	m.SetCwd("/proj")
	return m
}

func TestEnumerateSimplePattern(t *testing.T) {
	fs := newTree()
	results, err := Enumerate(fs, "*.go", "/proj", Options{CaseSensitive: true, FollowSymlinks: true})
	require.NoError(t, err)
	sort.Strings(results)
	assert.Equal(t, []string{"/proj/main.go", "/proj/util.go"}, results)
}

func TestEnumerateSimplePatternWithDot(t *testing.T) {
	fs := newTree()
	results, err := Enumerate(fs, "*.go", "/proj", Options{CaseSensitive: true, Dot: true, FollowSymlinks: true})
	require.NoError(t, err)
	sort.Strings(results)
	assert.Contains(t, results, "/proj/.hidden.go")
	assert.Contains(t, results, "/proj/main.go")
}

func TestEnumerateGlobstar(t *testing.T) {
	fs := newTree()
	results, err := Enumerate(fs, "**/*.go", "/proj", Options{CaseSensitive: true, FollowSymlinks: true})
	require.NoError(t, err)
	sort.Strings(results)
	assert.Contains(t, results, "/proj/main.go")
	assert.Contains(t, results, "/proj/sub/helper.go")
	assert.Contains(t, results, "/proj/sub/deep/inner.go")
	assert.NotContains(t, results, "/proj/.hidden.go", "dot files excluded when Dot is false")
}

func TestEnumerateGlobstarDepthBound(t *testing.T) {
	fs := newTree()
	zero := 0
	results, err := Enumerate(fs, "**/*.go", "/proj", Options{CaseSensitive: true, FollowSymlinks: true, Deep: &zero})
	require.NoError(t, err)
	sort.Strings(results)
	assert.Contains(t, results, "/proj/main.go")
	assert.NotContains(t, results, "/proj/sub/helper.go", "deep=0 must not descend past the base directory")
}

func TestEnumerateAbsolutePattern(t *testing.T) {
	fs := newTree()
	results, err := Enumerate(fs, "/proj/*.go", "/proj", Options{CaseSensitive: true, FollowSymlinks: true})
	require.NoError(t, err)
	sort.Strings(results)
	assert.Equal(t, []string{"/proj/main.go", "/proj/util.go"}, results)
}

func TestIsDynamicAndEscape(t *testing.T) {
	assert.True(t, IsDynamic("*.go"))
	assert.False(t, IsDynamic("main.go"))
	assert.Equal(t, `\[x\]`, Escape("[x]"))
}

func TestMatchesPath(t *testing.T) {
	fs := newTree()
	opts := Options{CaseSensitive: true}
	assert.True(t, MatchesPath(fs, "/proj/main.go", "*.go", "/proj", opts))
	assert.False(t, MatchesPath(fs, "/proj/sub/helper.go", "*.go", "/proj", opts))
	assert.True(t, MatchesPath(fs, "/proj/sub/helper.go", "**/*.go", "/proj", opts))
}
