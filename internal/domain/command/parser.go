// Package command implements the free-text ATK command grammar: parsing
// inbound chat messages into structured supply requests and resolving the
// requested names against the item catalog. Everything here is pure; failures
// are values, never panics.
package command

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseFailure names why a command could not be parsed. Empty means no failure.
type ParseFailure string

const (
	FailureNone          ParseFailure = ""
	FailureMissingPrefix ParseFailure = "missing command prefix"
	FailureNoItems       ParseFailure = "no valid ATK items"
)

// ParsedLineItem is one requested item line: name, positive quantity and unit.
type ParsedLineItem struct {
	Name     string
	Quantity int
	Unit     string
}

// ParsedCommand is the result of Parse. Valid is true iff the command prefix
// was recognized and at least one item line parsed. Purpose may be set even on
// an invalid command (a purpose line without any item lines).
type ParsedCommand struct {
	Items   []ParsedLineItem
	Purpose string
	Valid   bool
	Failure ParseFailure
}

// itemLineRe matches "<optional ordinal>. <name> <dash> <quantity> <unit>".
// The dash may be "-" or "–"; the name is non-greedy so the first dash after
// it acts as the separator; the unit is everything after the quantity.
var itemLineRe = regexp.MustCompile(`^(?:\d+[.)]\s*)?(.+?)\s*[-–]\s*(\d+)\s+(.+)$`)

// Parse turns a raw inbound message into a ParsedCommand. It never returns an
// error: all failure modes are carried in the result.
//
// Grammar:
//
//	/atk
//	1. Kertas HVS A4 - 5 rim
//	2. Pulpen - 12 pcs
//	Keperluan: Print laporan bulanan
//
// The first non-empty line must start with "/atk" or "atk" (case-insensitive).
// Item lines are scanned independently in order; lines matching neither the
// item pattern nor a purpose line are ignored. When a purpose line appears
// more than once, the last one wins.
func Parse(text string) ParsedCommand {
	lines := strings.Split(text, "\n")

	first := -1
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			first = i
			break
		}
	}
	if first == -1 {
		return ParsedCommand{Failure: FailureMissingPrefix}
	}

	head := strings.ToLower(strings.TrimSpace(lines[first]))
	if !strings.HasPrefix(head, "/atk") && !strings.HasPrefix(head, "atk") {
		return ParsedCommand{Failure: FailureMissingPrefix}
	}

	var cmd ParsedCommand
	for _, raw := range lines[first+1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if rest, ok := purposeLine(line); ok {
			// Last matching purpose line wins.
			cmd.Purpose = rest
			continue
		}

		m := itemLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[2])
		if err != nil || qty <= 0 {
			// A zero quantity makes no sense as a request line; treat it the
			// same as a non-matching line.
			continue
		}
		cmd.Items = append(cmd.Items, ParsedLineItem{
			Name:     strings.TrimSpace(m[1]),
			Quantity: qty,
			Unit:     strings.TrimSpace(m[3]),
		})
	}

	if len(cmd.Items) == 0 {
		cmd.Failure = FailureNoItems
		return cmd
	}
	cmd.Valid = true
	return cmd
}

// purposeLine reports whether the line sets the request purpose
// ("Keperluan: ..." or "Purpose: ...", case-insensitive) and returns the
// trimmed text after the first colon.
func purposeLine(line string) (string, bool) {
	lower := strings.ToLower(line)
	if !strings.HasPrefix(lower, "keperluan") && !strings.HasPrefix(lower, "purpose") {
		return "", false
	}
	colon := strings.Index(line, ":")
	if colon == -1 {
		return "", false
	}
	return strings.TrimSpace(line[colon+1:]), true
}
