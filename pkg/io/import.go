package io

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperr "github.com/powergraph/adminviz/pkg/errors"
	"github.com/powergraph/adminviz/pkg/graph"
)

// Column positions of the traversal table.
const (
	colName = iota
	colIsUser
	colEdges
	colDistance
	colVisited
	colPredecessor

	// NumColumns is the minimum number of columns in a row.
	NumColumns
)

// ParseRow converts the fields of one CSV row into a node.
// The line number is only used in error messages.
func ParseRow(fields []string, line int) (graph.Node, error) {
	if len(fields) < NumColumns {
		return graph.Node{}, apperr.New(apperr.ErrCodeMalformedRow,
			"line %d: expected %d columns, got %d", line, NumColumns, len(fields))
	}

	dist, err := strconv.Atoi(fields[colDistance])
	if err != nil {
		return graph.Node{}, apperr.Wrap(apperr.ErrCodeInvalidDistance, err,
			"line %d: distance %q is not an integer", line, fields[colDistance])
	}
	if dist < 0 {
		return graph.Node{}, apperr.New(apperr.ErrCodeInvalidDistance,
			"line %d: distance %d is negative", line, dist)
	}

	return graph.Node{
		Name:        fields[colName],
		IsUser:      parseBool(fields[colIsUser]),
		Neighbors:   splitEdges(fields[colEdges]),
		Distance:    dist,
		Visited:     parseBool(fields[colVisited]),
		Predecessor: fields[colPredecessor],
	}, nil
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

func splitEdges(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// ReadCSV decodes the traversal table from r and calls fn for every row in
// input order. The header row is discarded; an empty input yields no rows.
//
// ReadCSV stops at the first malformed row, the first error returned by fn,
// or when ctx is cancelled. ReadCSV does not close r.
func ReadCSV(ctx context.Context, r io.Reader, fn func(graph.Node) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return csvErr(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return csvErr(err)
		}
		line, _ := cr.FieldPos(0)
		n, err := ParseRow(fields, line)
		if err != nil {
			return err
		}
		if err := fn(n); err != nil {
			return err
		}
	}
}

func csvErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return apperr.Wrap(apperr.ErrCodeMalformedRow, pe.Err, "line %d", pe.Line)
	}
	return err
}

// ImportCSV opens the file at path and streams its rows to fn with [ReadCSV].
// Open failures are returned with the path for context and unwrap to the
// underlying filesystem error.
func ImportCSV(ctx context.Context, path string, fn func(graph.Node) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(ctx, f, fn)
}
