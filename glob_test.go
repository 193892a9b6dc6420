package glob

import (
	"sort"
	"testing"

	"github.com/globsmith/globsmith/internal/fsadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixture builds the fixture tree the spec's §8 scenarios are written
// against: a flat set of text files, a .gitignore excluding cake.txt, a
// nested tree with mixed extensions, and a complex-patterns directory for
// the character-class scenarios.
func newFixture() *fsadapter.Memory {
	m := fsadapter.NewMemory()
	m.AddFile("/fx/unicorn.txt", "")
	m.AddFile("/fx/cake.txt", "")
	m.AddFile("/fx/rainbow.txt", "")
	m.AddFile("/fx/.hidden", "")
	m.AddFile("/fx/.gitignore", "cake.txt\n")
	m.AddFile("/fx/nested/file1.php", "")
	m.AddFile("/fx/nested/file2.php", "")
	m.AddFile("/fx/nested/file3.js", "")
	m.AddFile("/fx/nested/deep/secret.txt", "")
	m.AddFile("/fx/nested/deep/readme.md", "")
	m.AddFile("/fx/docs/guide.md", "")
	m.AddFile("/fx/complex-patterns/file1.txt", "")
	m.AddFile("/fx/complex-patterns/file2.txt", "")
	m.AddFile("/fx/complex-patterns/fileA.txt", "")
	m.AddFile("/fx/complex-patterns/fileB.txt", "")
	m.AddFile("/fx/complex-patterns/data0.log", "")
	m.AddFile("/fx/complex-patterns/data5.log", "")
	m.AddFile("/fx/complex-patterns/data9.log", "")
	m.AddFile("/fx/complex-patterns/test-a.js", "")
	m.AddFile("/fx/complex-patterns/test-b.js", "")
	m.SetCwd("/fx")
	return m
}

func TestGlobSortedTextFiles(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, []string{"cake.txt", "rainbow.txt", "unicorn.txt"}, results)
}

func TestGlobNegationPattern(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*.txt", "!cake.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, []string{"rainbow.txt", "unicorn.txt"}, results)
}

func TestGlobGitignore(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithGitignore(true)))
	require.NoError(t, err)
	assert.Equal(t, []string{"rainbow.txt", "unicorn.txt"}, results)
}

func TestGlobGlobstarMarkdown(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"**/*.md"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guide.md", "nested/deep/readme.md"}, results)
}

func TestGlobCharacterClass(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"file[0-9A-Za-z].txt"}, NewOptions(WithCwd("/fx/complex-patterns"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, []string{"file1.txt", "file2.txt", "fileA.txt", "fileB.txt"}, results)
}

func TestGlobPosixDigitClass(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"data[[:digit:]].log"}, NewOptions(WithCwd("/fx/complex-patterns"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, []string{"data0.log", "data5.log", "data9.log"}, results)
}

func TestGlobDotfilePolicy(t *testing.T) {
	fs := newFixture()
	withDot, err := Glob([]string{"*"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithDot(true)))
	require.NoError(t, err)
	assert.Contains(t, withDot, ".hidden")

	withoutDot, err := Glob([]string{"*"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.NotContains(t, withoutDot, ".hidden")
}

func TestGlobDirectoryExpansionEquivalence(t *testing.T) {
	fs := newFixture()
	expanded, err := Glob([]string{"nested"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	explicit, err := Glob([]string{"nested/**/*"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, explicit, expanded)
}

func TestGlobDeterminism(t *testing.T) {
	fs := newFixture()
	opts := NewOptions(WithCwd("/fx"), WithFS(fs))
	a, err := Glob([]string{"**/*"}, opts)
	require.NoError(t, err)
	b, err := Glob([]string{"**/*"}, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGlobSortLaw(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"**/*"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(results))
}

func TestGlobDedupLaw(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*.txt", "*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithUnique(true)))
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, r := range results {
		require.False(t, seen[r], "duplicate path in deduped output: %s", r)
		seen[r] = true
	}
}

func TestGlobNegationIdempotence(t *testing.T) {
	fs := newFixture()
	base, err := Glob([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	withNoopNegation, err := Glob([]string{"*.txt", "!does-not-exist.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, base, withNoopNegation)
}

func TestGlobOnlyDirectories(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithOnlyDirectories(true)))
	require.NoError(t, err)
	assert.Equal(t, []string{"complex-patterns", "docs", "nested"}, results)
}

func TestGlobMarkDirectories(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithOnlyDirectories(true), WithMarkDirectories(true)))
	require.NoError(t, err)
	assert.Equal(t, []string{"complex-patterns/", "docs/", "nested/"}, results)
}

func TestGlobAbsolutePaths(t *testing.T) {
	fs := newFixture()
	results, err := Glob([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithAbsolute(true)))
	require.NoError(t, err)
	assert.Equal(t, []string{"/fx/cake.txt", "/fx/rainbow.txt", "/fx/unicorn.txt"}, results)
}

func TestGlobDirectoryNotFoundError(t *testing.T) {
	fs := newFixture()
	_, err := Glob([]string{"*.txt"}, NewOptions(WithCwd("/does-not-exist"), WithFS(fs)))
	require.Error(t, err)
	var notFound *DirectoryNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGlobInvalidPatternError(t *testing.T) {
	fs := newFixture()
	_, err := Glob([]string{""}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.Error(t, err)
	var invalid *InvalidPatternError
	assert.ErrorAs(t, err, &invalid)
}

func TestGlobObjectMode(t *testing.T) {
	fs := newFixture()
	entries, err := GlobEntries([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithObjectMode(true)))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		require.NotNil(t, e.Dirent)
		assert.True(t, e.Dirent.IsFile())
		assert.Nil(t, e.Stats, "stats must be absent unless opts.Stats is set")
	}
}

func TestGlobStats(t *testing.T) {
	fs := newFixture()
	entries, err := GlobEntries([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs), WithStats(true)))
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		require.NotNil(t, e.Stats)
		assert.True(t, e.Stats.IsFile)
	}
}

func TestOptionsMutualExclusion(t *testing.T) {
	o := NewOptions(WithOnlyFiles(true), WithOnlyDirectories(true))
	assert.True(t, o.OnlyDirectories)
	assert.False(t, o.OnlyFiles)

	o = NewOptions(WithOnlyDirectories(true), WithOnlyFiles(true))
	assert.True(t, o.OnlyFiles)
	assert.False(t, o.OnlyDirectories)
}

func TestOptionsStatsImpliesObjectMode(t *testing.T) {
	o := NewOptions(WithStats(true))
	assert.True(t, o.ObjectMode)
}

func TestOptionsFromMapDiscardsWrongShapes(t *testing.T) {
	o := OptionsFromMap(map[string]any{
		"cwd":       "/fx",
		"dot":       "yes", // wrong type: discarded, default (false) retained
		"onlyFiles": true,
	})
	assert.Equal(t, "/fx", o.Cwd)
	assert.False(t, o.Dot)
	assert.True(t, o.OnlyFiles)
}

func TestStream(t *testing.T) {
	fs := newFixture()
	s := NewStream([]string{"*.txt"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	var got []string
	for s.Next() {
		got = append(got, s.Entry().Path)
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"cake.txt", "rainbow.txt", "unicorn.txt"}, got)
}

func TestStreamErrorBeforeFirstYield(t *testing.T) {
	fs := newFixture()
	s := NewStream([]string{"*.txt"}, NewOptions(WithCwd("/nope"), WithFS(fs)))
	assert.False(t, s.Next())
	assert.Error(t, s.Err())
}

func TestGenerateTasks(t *testing.T) {
	fs := newFixture()
	task, err := GenerateTasks([]string{"nested", "!**/*.php"}, NewOptions(WithCwd("/fx"), WithFS(fs)))
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/**/*"}, task.Patterns)
	assert.Equal(t, []string{"**/*.php"}, task.Negatives)
}

func TestIsDynamicReexport(t *testing.T) {
	assert.True(t, IsDynamic("*.go"))
	assert.False(t, IsDynamic("main.go"))
}

func TestEscapeReexport(t *testing.T) {
	escaped := Escape("weird[name].txt")
	assert.Equal(t, `weird\[name\].txt`, escaped)
}

func TestIsIgnoredHelper(t *testing.T) {
	fs := newFixture()
	opts := NewOptions(WithCwd("/fx"), WithFS(fs))
	assert.True(t, IsIgnored("/fx/cake.txt", opts))
	assert.False(t, IsIgnored("/fx/rainbow.txt", opts))
}

func TestIsIgnoredByFilesHelper(t *testing.T) {
	fs := newFixture()
	fs.AddFile("/fx/.customignore", "rainbow.txt\n")
	opts := NewOptions(WithCwd("/fx"), WithFS(fs))
	assert.True(t, IsIgnoredByFiles("/fx/rainbow.txt", []string{".customignore"}, opts))
	assert.False(t, IsIgnoredByFiles("/fx/unicorn.txt", []string{".customignore"}, opts))
}
