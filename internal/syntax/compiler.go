// Package syntax translates the glob-pattern grammar in spec §4.1 into a
// compiled regexp.Regexp. The translation strategy mirrors how
// koblas-swerver/pkg/minimatch and shibumi/go-pathspec both lower
// shell-glob/gitignore syntax into a single anchored Go regular expression,
// rather than hand-rolling a bespoke NFA.
package syntax

import (
	"regexp"
	"strings"
)

// Matcher is the opaque predicate produced by Compile. It is safe for
// concurrent use because regexp.Regexp is, and a Matcher is never mutated
// after construction.
type Matcher struct {
	raw          string
	re           *regexp.Regexp
	neverMatch   bool
	baseNameOnly bool
}

// Raw returns the original, uncompiled pattern.
func (m *Matcher) Raw() string { return m.raw }

// Matches reports whether path (already `/`-normalized) satisfies the
// compiled pattern.
func (m *Matcher) Matches(path string) bool {
	if m.neverMatch {
		return false
	}
	if m.baseNameOnly {
		if idx := strings.LastIndexByte(path, '/'); idx != -1 {
			path = path[idx+1:]
		}
	}
	return m.re.MatchString(path)
}

// CompileOptions bundles the compile-time flags the spec calls out as
// affecting translation rather than post-hoc filtering: caseSensitiveMatch
// folds case into the emitted regex, and baseNameMatch anchors the matcher
// to the final path component.
type CompileOptions struct {
	CaseSensitive bool
	BaseNameMatch bool
}

// DefaultCompileOptions matches the option defaults in spec §6.2.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{CaseSensitive: true, BaseNameMatch: false}
}

// Compile lowers pattern into a Matcher. Compilation is infallible: a
// malformed class or unterminated brace produces a Matcher that rejects
// every input rather than returning an error or panicking, per spec §4.1.
func Compile(pattern string, opts CompileOptions) *Matcher {
	src, ok := translate(pattern)
	m := &Matcher{raw: pattern, baseNameOnly: opts.BaseNameMatch}
	if !ok {
		m.neverMatch = true
		return m
	}
	full := "^(?:" + src + ")$"
	if !opts.CaseSensitive {
		full = "(?i)" + full
	}
	re, err := regexp.Compile(full)
	if err != nil {
		m.neverMatch = true
		return m
	}
	m.re = re
	return m
}

// IsDynamic reports whether pattern contains any glob metacharacter, per
// spec invariant 6.
func IsDynamic(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[]{}")
}

// Escape returns a pattern that matches path literally: separators are
// normalized to `/`, then each of the metacharacters that could otherwise be
// read as glob syntax is backslash-escaped.
func Escape(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	var b strings.Builder
	for _, r := range path {
		switch r {
		case '[', ']', '(', ')', '{', '}', '?', '*':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// translate performs the single left-to-right scan described in spec §4.1.
// It returns the regex source fragment (unanchored) and false if the
// pattern could not be lowered (unterminated class).
func translate(pattern string) (string, bool) {
	runes := []rune(pattern)
	var out strings.Builder
	ok := translateInto(&out, runes, true)
	return out.String(), ok
}

// translateInto scans runes (one pattern "level") emitting regex source into
// out. atTop indicates this is the outermost scan (as opposed to the body of
// a brace alternative), which only matters for diagnostics; the elision
// rules for `**` apply at every level since nested `{...}` alternatives can
// themselves contain path separators.
func translateInto(out *strings.Builder, runes []rune, atTop bool) bool {
	n := len(runes)
	atSegmentStart := true
	for i := 0; i < n; {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 >= n {
				// trailing backslash is a literal backslash
				out.WriteString(regexpQuoteRune('\\'))
				i++
				atSegmentStart = false
				continue
			}
			out.WriteString(regexpQuoteRune(runes[i+1]))
			i += 2
			atSegmentStart = false
		case '/':
			out.WriteByte('/')
			i++
			atSegmentStart = true
		case '*':
			if i+1 < n && runes[i+1] == '*' {
				bordered := atSegmentStart
				after := i + 2
				if bordered && after < n && runes[after] == '/' {
					out.WriteString(`(?:.*/)?`)
					i = after + 1
					atSegmentStart = true
					continue
				}
				if bordered && after >= n {
					out.WriteString(`.*`)
					i = after
					atSegmentStart = false
					continue
				}
				// not a bordered globstar segment: still spans `/`
				out.WriteString(`.*`)
				i = after
				atSegmentStart = false
				continue
			}
			out.WriteString(`[^/]*`)
			i++
			atSegmentStart = false
		case '?':
			out.WriteString(`[^/]`)
			i++
			atSegmentStart = false
		case '[':
			classSrc, consumed, classOK := translateClass(runes[i:])
			if !classOK {
				return false
			}
			out.WriteString(classSrc)
			i += consumed
			atSegmentStart = false
		case '{':
			closeIdx := matchingBrace(runes, i)
			if closeIdx == -1 {
				// no matching close: literal brace, per spec §4.1 tie-breaks
				out.WriteString(regexpQuoteRune('{'))
				i++
				atSegmentStart = false
				continue
			}
			alts := splitTopLevel(runes[i+1 : closeIdx])
			out.WriteString(`(?:`)
			for idx, alt := range alts {
				if idx > 0 {
					out.WriteByte('|')
				}
				if !translateInto(out, alt, false) {
					return false
				}
			}
			out.WriteString(`)`)
			i = closeIdx + 1
			atSegmentStart = false
		default:
			out.WriteString(regexpQuoteRune(r))
			i++
			atSegmentStart = false
		}
	}
	return true
}

// matchingBrace returns the index of the `}` matching the `{` at open,
// respecting nesting, or -1 if there is none at the same nesting level.
func matchingBrace(runes []rune, open int) int {
	depth := 0
	for i := open; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++ // skip escaped rune
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits runes on commas that are not inside a nested
// `{...}` group.
func splitTopLevel(runes []rune) [][]rune {
	var parts [][]rune
	depth := 0
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, runes[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, runes[start:])
	return parts
}

func regexpQuoteRune(r rune) string {
	return regexp.QuoteMeta(string(r))
}
