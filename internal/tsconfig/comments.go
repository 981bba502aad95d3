package tsconfig

import "strings"

// StripComments removes // line comments and /* block */ comments from
// JSON-with-comments text. Line comments run up to, but not including, the
// next newline. Block comments run to the first following "*/" and do not
// nest; an unterminated block comment swallows the rest of the input.
// Comment markers inside string literals are left alone.
func StripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch c {
			case '\\':
				if i+1 < len(s) {
					i++
					b.WriteByte(s[i])
				}
			case '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				end := strings.IndexByte(s[i:], '\n')
				if end == -1 {
					return b.String()
				}
				// Resume on the newline so it is kept.
				i += end - 1
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end == -1 {
					return b.String()
				}
				i += 2 + end + 1
				continue
			}
		}

		b.WriteByte(c)
	}
	return b.String()
}
