package syntax

import "strings"

// posixClasses gives the canonical expansion for each named class, per the
// glossary in spec.md. Each value is valid content for a Go regexp character
// class (ranges and singletons, no enclosing brackets).
var posixClasses = map[string]string{
	"alnum":  `a-zA-Z0-9`,
	"alpha":  `a-zA-Z`,
	"ascii":  `\x00-\x7F`,
	"blank":  ` \t`,
	"cntrl":  `\x00-\x1F\x7F`,
	"digit":  `0-9`,
	"graph":  `\x21-\x7E`,
	"lower":  `a-z`,
	"print":  `\x20-\x7E`,
	"punct":  `!-/:-@\[-` + "`" + `{-~`,
	"space":  ` \t\n\r\f\v`,
	"upper":  `A-Z`,
	"word":   `a-zA-Z0-9_`,
	"xdigit": `0-9A-Fa-f`,
}

// translateClass lowers a `[...]` glob character class starting at
// runes[0] == '['. It returns the regex source (including the enclosing
// brackets), how many input runes were consumed, and false if the class is
// unterminated.
func translateClass(runes []rune) (string, int, bool) {
	n := len(runes)
	if n == 0 || runes[0] != '[' {
		return "", 0, false
	}
	var body strings.Builder
	i := 1
	negate := false
	if i < n && (runes[i] == '!' || runes[i] == '^') {
		negate = true
		i++
	}
	// a `]` immediately after `[` or `[!`/`[^` is a literal member, not the
	// closing bracket.
	first := true
	for i < n {
		r := runes[i]
		if r == ']' && !first {
			i++
			var out strings.Builder
			out.WriteByte('[')
			if negate {
				out.WriteByte('^')
			}
			out.WriteString(body.String())
			out.WriteByte(']')
			return out.String(), i, true
		}
		first = false

		// POSIX named class: [:name:]
		if r == '[' && i+1 < n && runes[i+1] == ':' {
			end := indexClassEnd(runes, i+2)
			if end != -1 {
				name := string(runes[i+2 : end])
				if expansion, ok := posixClasses[name]; ok {
					body.WriteString(expansion)
					i = end + 2
					continue
				}
			}
			// not a recognized POSIX class: fall through, treat `[` literally
		}

		switch r {
		case '\\':
			if i+1 < n {
				body.WriteString(classEscape(runes[i+1]))
				i += 2
				continue
			}
			body.WriteString(classEscape('\\'))
			i++
			continue
		case '-':
			// pass ranges through verbatim; only escape when it would be
			// ambiguous (leading/trailing position is handled naturally by
			// regexp/syntax since our body is always wrapped in brackets).
			body.WriteByte('-')
			i++
			continue
		case '^':
			body.WriteString(`\^`)
			i++
			continue
		default:
			body.WriteString(classEscape(r))
			i++
			continue
		}
	}
	return "", 0, false
}

// indexClassEnd finds the index of the ':' that closes a [:name:] POSIX
// class, where start points just after "[:" (so runes[start:idx] is the
// name). Returns -1 if there is no closing ":]".
func indexClassEnd(runes []rune, start int) int {
	for i := start; i+1 < len(runes); i++ {
		if runes[i] == ':' && runes[i+1] == ']' {
			return i
		}
	}
	return -1
}

// classEscape escapes a rune for safe inclusion inside a Go regexp character
// class: only `\`, `]`, and `^` are special there.
func classEscape(r rune) string {
	switch r {
	case '\\', ']', '^':
		return `\` + string(r)
	default:
		return string(r)
	}
}
