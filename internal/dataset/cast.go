// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package dataset

import (
	"fmt"
	"strings"
)

// DecodeError reports a cast cell that is not a list of string literals.
type DecodeError struct {
	Input  string
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cast decode failed at offset %d: %s", e.Offset, e.Reason)
}

// nullCastValues are cell contents that mean "no cast" rather than a malformed list.
var nullCastValues = map[string]struct{}{
	"":     {},
	"None": {},
	"nan":  {},
	"NaN":  {},
	"null": {},
}

// DecodeCast parses a list literal of quoted names such as
// ['Tom Hanks', "Bill O'Reilly"].
//
// Null markers decode to a nil slice with no error. An empty list decodes to a
// non-nil empty slice. Anything that is not a flat list of string literals
// returns a *DecodeError.
func DecodeCast(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if _, ok := nullCastValues[s]; ok {
		return nil, nil
	}

	p := &castParser{src: s}
	return p.parse()
}

type castParser struct {
	src string
	pos int
}

func (p *castParser) fail(reason string) *DecodeError {
	return &DecodeError{Input: p.src, Offset: p.pos, Reason: reason}
}

func (p *castParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *castParser) parse() ([]string, error) {
	if p.pos >= len(p.src) || p.src[p.pos] != '[' {
		return nil, p.fail("expected '['")
	}
	p.pos++

	names := make([]string, 0, 8)
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.fail("unterminated list")
		}
		if p.src[p.pos] == ']' {
			p.pos++
			break
		}

		name, err := p.parseString()
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.fail("unterminated list")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			// closed on the next iteration
		default:
			return nil, p.fail("expected ',' or ']'")
		}
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.fail("trailing characters after list")
	}
	return names, nil
}

func (p *castParser) parseString() (string, error) {
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", p.fail("expected string literal")
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			if p.pos+1 >= len(p.src) {
				return "", p.fail("dangling escape")
			}
			b.WriteString(unescape(p.src[p.pos+1]))
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.fail("unterminated string literal")
}

// unescape resolves a single-character escape. Unknown escapes keep their backslash.
func unescape(c byte) string {
	switch c {
	case '\\':
		return "\\"
	case '\'':
		return "'"
	case '"':
		return "\""
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	default:
		return "\\" + string(c)
	}
}
