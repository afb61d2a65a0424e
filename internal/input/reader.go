// Package input reads an initial population of "(x, y)" lines.
package input

import (
	"bufio"
	"io"
	"log"
	"math/big"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"sparse-life/pkg/sims/life"
)

var pairPattern = regexp.MustCompile(`^\(\s*([+-]?\d+)\s*,\s*([+-]?\d+)\s*\)$`)

// Report summarises one population read.
type Report struct {
	Lines    int
	Accepted int
	Rejected int
}

// Read consumes lines from r until a blank line or end of input and inserts
// every parsed pair into g. Pairs outside the int64 range are logged and
// counted as rejected. A line that is not a pair stops the read with an error.
//
// Read may buffer past the terminating blank line. Callers that keep reading
// from the same source should use ReadScanner.
func Read(r io.Reader, g *life.Grid, logger *log.Logger) (Report, error) {
	return ReadScanner(bufio.NewScanner(r), g, logger)
}

// ReadScanner is Read over an existing scanner, leaving it positioned after
// the terminating blank line.
func ReadScanner(sc *bufio.Scanner, g *life.Grid, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	var rep Report
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		rep.Lines++
		x, y, err := ParsePair(line)
		if err != nil {
			return rep, errors.Wrapf(err, "[Read] line %d", rep.Lines)
		}
		if err := g.Insert(x, y); err != nil {
			logger.Printf("line %d: %v", rep.Lines, err)
			rep.Rejected++
			continue
		}
		rep.Accepted++
	}
	if err := sc.Err(); err != nil {
		return rep, errors.Wrap(err, "[Read] failed to scan input")
	}
	return rep, nil
}

// ParsePair parses "(x, y)" into two base-10 integers of any magnitude.
func ParsePair(s string) (*big.Int, *big.Int, error) {
	m := pairPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, nil, errors.Errorf("malformed coordinate %q", s)
	}
	x, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return nil, nil, errors.Errorf("malformed x in %q", s)
	}
	y, ok := new(big.Int).SetString(m[2], 10)
	if !ok {
		return nil, nil, errors.Errorf("malformed y in %q", s)
	}
	return x, y, nil
}
