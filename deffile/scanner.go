package deffile

import "strings"

// scanner tokenizes a definition file by whitespace, mirroring the
// source reader's `fin >> token` style, with a restOfLine escape hatch
// for the handful of commands (Name, ForbiddenGroups, Block) that read
// the remainder of a line instead of a single token.
type scanner struct {
	data []byte
	pos  int
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data}
}

// token returns the next whitespace-delimited token, skipping blank runs
// and any line introduced by a '#' comment. Returns "" once the input is
// exhausted.
func (s *scanner) token() string {
	for {
		s.skipSpace()
		if s.pos >= len(s.data) {
			return ""
		}
		if s.data[s.pos] == '#' {
			s.skipLine()

			continue
		}
		start := s.pos
		for s.pos < len(s.data) && !isSpace(s.data[s.pos]) {
			s.pos++
		}

		return string(s.data[start:s.pos])
	}
}

// restOfLine returns whatever remains of the current line, trimmed of
// surrounding whitespace, and advances past its terminating newline.
func (s *scanner) restOfLine() string {
	start := s.pos
	for s.pos < len(s.data) && s.data[s.pos] != '\n' {
		s.pos++
	}
	line := strings.TrimSpace(string(s.data[start:s.pos]))
	s.advancePastNewline()

	return line
}

func (s *scanner) skipLine() {
	for s.pos < len(s.data) && s.data[s.pos] != '\n' {
		s.pos++
	}
	s.advancePastNewline()
}

func (s *scanner) advancePastNewline() {
	if s.pos < len(s.data) && s.data[s.pos] == '\n' {
		s.pos++
	}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.data) && isSpace(s.data[s.pos]) {
		s.pos++
	}
}

func (s *scanner) atEOF() bool {
	return s.pos >= len(s.data)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// looksNumeric reports whether tok's first byte is an ASCII digit,
// mirroring the source's "does this look like an orientation value or
// the next set name" sniff.
func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}

	return tok[0] >= '0' && tok[0] <= '9'
}
