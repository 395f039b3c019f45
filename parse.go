// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A ParseError reports a malformed line in a wiring description.
//
type ParseError struct {
	Line int    // line number, starting at 1
	Text string // offending line
	Msg  string
}

func (e *ParseError) Error() string {
	return "line " + strconv.Itoa(e.Line) + " (" + e.Text + "): " + e.Msg
}

// ParseWiring parses a wiring description. Each non blank line declares one
// module and its outputs:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//	%c ->
//
// The module name is prefixed with '%' for a FlipFlop, '&' for a Conjunction.
// The broadcaster has no prefix.
//
// ParseWiring does not validate the wiring itself (see Build).
//
func ParseWiring(r io.Reader) ([]Edge, error) {
	var edges []Edge
	s := bufio.NewScanner(r)
	for ln := 1; s.Scan(); ln++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		e, msg := parseLine(line)
		if msg != "" {
			return nil, errors.WithStack(&ParseError{Line: ln, Text: line, Msg: msg})
		}
		edges = append(edges, e)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read wiring")
	}
	return edges, nil
}

// ParseWiringString is a convenience wrapper around ParseWiring.
//
func ParseWiringString(s string) ([]Edge, error) {
	return ParseWiring(strings.NewReader(s))
}

func parseLine(line string) (e Edge, msg string) {
	i := strings.Index(line, "->")
	if i < 0 {
		return e, "missing ->"
	}
	decl := strings.TrimSpace(line[:i])
	switch {
	case decl == BroadcasterID:
		e.ID, e.Kind = decl, Broadcaster
	case strings.HasPrefix(decl, "%"):
		e.ID, e.Kind = decl[1:], FlipFlop
	case strings.HasPrefix(decl, "&"):
		e.ID, e.Kind = decl[1:], Conjunction
	case decl == "":
		return e, "missing module name"
	default:
		return e, "unknown module type for " + decl
	}
	if e.ID == "" || strings.ContainsAny(e.ID, " \t,") {
		return e, "invalid module name"
	}

	dsts := strings.TrimSpace(line[i+2:])
	if dsts == "" {
		return e, ""
	}
	for _, d := range strings.Split(dsts, ",") {
		d = strings.TrimSpace(d)
		if d == "" || strings.ContainsAny(d, " \t") {
			return e, "invalid output name"
		}
		e.Outputs = append(e.Outputs, d)
	}
	return e, ""
}
