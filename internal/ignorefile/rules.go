// Package ignorefile implements the ignore-file evaluator (spec §4.3): it
// parses files following the widely-deployed gitignore convention and
// decides whether a given path is ignored under the union of all collected
// rules.
//
// The parsing shape (trim, skip blank/# lines, strip leading `!`, strip
// trailing `/`) is grounded on the teacher's internal/ignore package
// (originally adapted from Helm's .helmignore), but the matching primitive
// is a pre-compiled internal/syntax.Matcher per rule instead of a
// doublestar.PathMatch call per evaluation, and the decision procedure
// applies later-rule-overrides-earlier semantics (spec §4.3 "Decision")
// rather than the teacher's stop-on-first-negated-match shortcut.
package ignorefile

import (
	"path"
	"strings"

	"github.com/globsmith/globsmith/internal/fsadapter"
	"github.com/globsmith/globsmith/internal/syntax"
)

// Name is the conventional ignore-file filename.
const Name = ".gitignore"

// Rule is one parsed ignore-file line: the tuple (pattern, negated,
// directory_only, base_dir) from spec §3, plus the compiled matchers needed
// to evaluate it without re-parsing.
type Rule struct {
	Pattern       string
	Negated       bool
	DirectoryOnly bool
	BaseDir       string

	matcher         *syntax.Matcher
	basenameMatcher *syntax.Matcher // non-nil only when the original line had no slash
}

// Defaults returns the conventional ignore patterns a development tool
// typically wants even absent an ignore file, grounded on the teacher's
// Rules.AddDefaults().
func Defaults(baseDir string) []Rule {
	patterns := []string{
		"**/.git/**",
		"**/.git",
		"**/node_modules/**",
		"**/__pycache__/**",
		"**/*.pyc",
		"**/.DS_Store",
		"**/*.swp",
		"**/*~",
	}
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		rules = append(rules, compileRule(p, false, false, baseDir))
	}
	return rules
}

// ParseContent parses the contents of one ignore file whose directory is
// baseDir, per the "File parsing" procedure in spec §4.3.
func ParseContent(content, baseDir string) []Rule {
	var rules []Rule
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negated := false
		if strings.HasPrefix(line, "!") {
			negated = true
			line = line[1:]
		}
		dirOnly := false
		if strings.HasSuffix(line, "/") {
			dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if line == "" {
			continue
		}
		hadSlash := strings.Contains(line, "/")
		pattern := line
		if !hadSlash {
			pattern = "**/" + line
		}
		rules = append(rules, compileRuleRaw(pattern, line, hadSlash, negated, dirOnly, baseDir))
	}
	return rules
}

func compileRule(pattern string, negated, dirOnly bool, baseDir string) Rule {
	return compileRuleRaw(pattern, pattern, true, negated, dirOnly, baseDir)
}

func compileRuleRaw(finalPattern, originalLine string, hadSlash, negated, dirOnly bool, baseDir string) Rule {
	opts := syntax.DefaultCompileOptions()
	r := Rule{
		Pattern:       finalPattern,
		Negated:       negated,
		DirectoryOnly: dirOnly,
		BaseDir:       baseDir,
		matcher:       syntax.Compile(finalPattern, opts),
	}
	if !hadSlash {
		r.basenameMatcher = syntax.Compile(originalLine, opts)
	}
	return r
}

// ParseFile reads and parses the ignore file at absPath (whose directory is
// its base_dir), returning no rules and no error if it cannot be read: per
// spec §4.3, parse errors on individual files are swallowed.
func ParseFile(fs fsadapter.FS, absPath string) []Rule {
	if !fs.Exists(absPath) {
		return nil
	}
	content := fs.ReadFile(absPath)
	return ParseContent(content, path.Dir(absPath))
}

// IsIgnored implements the Decision procedure in spec §4.3: later rules
// override earlier ones for the same path.
func IsIgnored(fs fsadapter.FS, target string, rules []Rule, cwd string) bool {
	target = strings.ReplaceAll(target, "\\", "/")
	cwd = strings.ReplaceAll(cwd, "\\", "/")

	ignored := false
	for _, rule := range rules {
		candidate := relativize(target, rule.BaseDir)
		matched := rule.matcher.Matches(candidate)
		if !matched && rule.basenameMatcher != nil {
			matched = rule.basenameMatcher.Matches(path.Base(candidate))
		}
		if !matched {
			continue
		}
		if rule.DirectoryOnly && !fs.IsDirectory(target) {
			continue
		}
		ignored = !rule.Negated
	}
	return ignored
}

func relativize(target, base string) string {
	if base == "" {
		return strings.TrimPrefix(target, "/")
	}
	if target == base {
		return ""
	}
	prefix := strings.TrimSuffix(base, "/") + "/"
	if strings.HasPrefix(target, prefix) {
		return strings.TrimPrefix(target, prefix)
	}
	return strings.TrimPrefix(target, "/")
}
