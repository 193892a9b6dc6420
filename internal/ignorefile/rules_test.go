package ignorefile

import (
	"testing"

	"github.com/globsmith/globsmith/internal/fsadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentSkipsBlankAndComments(t *testing.T) {
	rules := ParseContent("\n# a comment\n\n*.log\n", "/repo")
	require.Len(t, rules, 1)
	assert.Equal(t, "**/*.log", rules[0].Pattern)
}

func TestParseContentNegation(t *testing.T) {
	rules := ParseContent("*.log\n!important.log\n", "/repo")
	require.Len(t, rules, 2)
	assert.False(t, rules[0].Negated)
	assert.True(t, rules[1].Negated)
}

func TestParseContentDirectoryOnly(t *testing.T) {
	rules := ParseContent("build/\n", "/repo")
	require.Len(t, rules, 1)
	assert.True(t, rules[0].DirectoryOnly)
	assert.Equal(t, "**/build", rules[0].Pattern)
}

func TestParseContentAnchoredVsUnanchored(t *testing.T) {
	rules := ParseContent("build\nsrc/build\n", "/repo")
	require.Len(t, rules, 2)
	assert.Equal(t, "**/build", rules[0].Pattern, "no slash: rewritten to match at any depth")
	assert.Equal(t, "src/build", rules[1].Pattern, "slash present: kept anchored to base dir")
}

func TestIsIgnoredBasic(t *testing.T) {
	fs := fsadapter.NewMemory()
	fs.AddFile("/repo/a.log", "")
	fs.AddFile("/repo/a.txt", "")
	rules := ParseContent("*.log\n", "/repo")
	assert.True(t, IsIgnored(fs, "/repo/a.log", rules, "/repo"))
	assert.False(t, IsIgnored(fs, "/repo/a.txt", rules, "/repo"))
}

func TestIsIgnoredLaterRuleOverridesEarlier(t *testing.T) {
	fs := fsadapter.NewMemory()
	fs.AddFile("/repo/important.log", "")
	rules := ParseContent("*.log\n!important.log\n", "/repo")
	assert.False(t, IsIgnored(fs, "/repo/important.log", rules, "/repo"), "later negation overrides earlier ignore")

	reordered := ParseContent("!important.log\n*.log\n", "/repo")
	assert.True(t, IsIgnored(fs, "/repo/important.log", reordered, "/repo"), "order matters: a later broad rule re-ignores it")
}

func TestIsIgnoredDirectoryOnlyRequiresDirectory(t *testing.T) {
	fs := fsadapter.NewMemory()
	fs.AddDir("/repo/build")
	fs.AddFile("/repo/buildfile", "")
	rules := ParseContent("build/\n", "/repo")
	assert.True(t, IsIgnored(fs, "/repo/build", rules, "/repo"))
	assert.False(t, IsIgnored(fs, "/repo/buildfile", rules, "/repo"), "directory_only rule must not match a same-named file")
}

func TestDefaults(t *testing.T) {
	rules := Defaults("/repo")
	assert.NotEmpty(t, rules)
	fs := fsadapter.NewMemory()
	fs.AddDir("/repo/.git")
	fs.AddFile("/repo/node_modules/pkg/index.js", "")
	assert.True(t, IsIgnored(fs, "/repo/.git", rules, "/repo"))
	assert.True(t, IsIgnored(fs, "/repo/node_modules/pkg/index.js", rules, "/repo"))
}
