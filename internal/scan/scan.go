package scan

import "strings"

// Body extracts a balanced-delimiter body from src.
//
// start is the index immediately after the opening '{' of the body, i.e.
// the scan begins at depth 1. It walks forward, incrementing depth on '{'
// and decrementing on '}', and stops when depth returns to zero. Nested
// blocks and nested type declarations are skipped by depth counting alone.
//
// It returns the body text (excluding the terminating '}'), the index
// immediately after the terminating '}', and whether the terminator was
// found. ok is false when the delimiters are unbalanced and the scan ran
// off the end of src; the returned body is then everything from start on.
func Body(src string, start int) (body string, end int, ok bool) {
	depth := 1

	for i := start; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[start:i], i + 1, true
			}
		}
	}

	return src[start:], len(src), false
}

// SplitTopLevel splits s on sep, treating sep as a split point only at
// bracket depth zero. Parentheses, square brackets, angle brackets, and
// braces all contribute to the depth, so a segment whose type is itself a
// generic spelling containing sep (e.g. "m: Map<String, Any>") is kept as
// one segment. Segments are whitespace-trimmed; empty segments are dropped.
func SplitTopLevel(s string, sep byte) []string {
	var parts []string

	depth := 0
	begin := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '<', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '>':
			// '>' closes an angle bracket only when one is open, so the
			// arrow in a function type like "(Int) -> Void" is ignored
			if depth > 0 && i > 0 && s[i-1] != '-' {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = appendTrimmed(parts, s[begin:i])
				begin = i + 1
			}
		}
	}

	return appendTrimmed(parts, s[begin:])
}

// Matching returns the index of the closer balancing the opener at
// src[open], and whether it was found. src[open] must be the opener byte.
func Matching(src string, open int, opener, closer byte) (int, bool) {
	depth := 0

	for i := open; i < len(src); i++ {
		switch src[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return -1, false
}

// LineStart returns the offset of the first byte of the line containing i.
func LineStart(src string, i int) int {
	if i > len(src) {
		i = len(src)
	}

	for i > 0 && src[i-1] != '\n' {
		i--
	}

	return i
}

// LeadingAnnotations collects the "@"-prefixed tokens written on the lines
// immediately above the line containing offset. It walks upward over
// contiguous annotation and comment lines, stopping at the first line that
// is neither; blank lines also stop the walk, so an annotation block must
// sit directly on top of its declaration.
//
// Each annotation line contributes its first whitespace-delimited token,
// with any argument list stripped: "@objc(DeviceBridge)" yields "@objc".
func LeadingAnnotations(src string, offset int) []string {
	var anns []string

	at := LineStart(src, offset)

	for at > 0 {
		prev := LineStart(src, at-1)
		line := strings.TrimSpace(src[prev : at-1])

		switch {
		case strings.HasPrefix(line, "@"):
			anns = append(anns, annotationToken(line))
		case strings.HasPrefix(line, "//"):
			// comments between annotations and the declaration are fine
		default:
			reverse(anns)
			return anns
		}

		at = prev
	}

	reverse(anns)

	return anns
}

// annotationToken extracts the bare annotation name from an annotation line.
func annotationToken(line string) string {
	tok := line
	if i := strings.IndexAny(tok, " \t("); i >= 0 {
		tok = tok[:i]
	}

	return tok
}

func appendTrimmed(parts []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return parts
	}

	return append(parts, s)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
