// Package report renders shortest-path results as plain-text reports.
//
// WriteAll prints the all-pairs table: a header, then one block per source
// vertex with its name followed by a row per other destination. WritePath
// prints one source→destination path as vertex numbers and then as names.
//
// Failures to answer a query are returned as errors wrapping
// core.ErrInvalidIndex or dijkstra.ErrNoPath; ErrorMessage turns them into
// the user-facing error lines.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/dijkstra"
)

// Source is the read surface a report needs. *pathfinder.Finder satisfies it.
// Vertex numbers are 1-based.
type Source interface {
	Size() int
	Name(v int) (string, error)
	Cell(source, destination int) (dijkstra.Cell, error)
	Path(source, destination int) ([]int, error)
}

// Column widths of the all-pairs table.
const (
	widthDescription = 20
	widthColumn      = 10
	unreachable      = "--"
)

// WriteAll writes the all-pairs report for src to w.
//
//	Description         From      To        Dist      Path
//	Aurora and 85th
//	                    1         2         40        1 3 2
//	                    1         4         --
func WriteAll(w io.Writer, src Source) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s%-*s%-*s%-*s%s\n",
		widthDescription, "Description",
		widthColumn, "From", widthColumn, "To", widthColumn, "Dist", "Path")

	n := src.Size()
	for s := 1; s <= n; s++ {
		name, err := src.Name(s)
		if err != nil {
			return err
		}
		b.WriteString(name)
		b.WriteByte('\n')

		for d := 1; d <= n; d++ {
			if d == s {
				continue
			}
			cell, err := src.Cell(s, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "%-*s%-*d%-*d", widthDescription, "", widthColumn, s, widthColumn, d)
			if !cell.Reachable() {
				b.WriteString(unreachable)
				b.WriteByte('\n')
				continue
			}
			path, err := src.Path(s, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "%-*d%s\n", widthColumn, cell.Dist, joinInts(path))
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// WritePath writes the single-path report: a tab-separated line with source,
// destination, distance and the path as vertex numbers, then one vertex
// name per line.
func WritePath(w io.Writer, src Source, source, destination int) error {
	n := src.Size()
	if source < 1 || source > n || destination < 1 || destination > n {
		return fmt.Errorf("%w: %d→%d", core.ErrInvalidIndex, source, destination)
	}
	cell, err := src.Cell(source, destination)
	if err != nil {
		return err
	}
	if !cell.Reachable() {
		return fmt.Errorf("%w: from %d to %d", dijkstra.ErrNoPath, source, destination)
	}
	path, err := src.Path(source, destination)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%d\t%d\t%s\n", source, destination, cell.Dist, joinInts(path))
	for _, v := range path {
		name, err := src.Name(v)
		if err != nil {
			return err
		}
		b.WriteString(name)
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())

	return err
}

// ErrorMessage renders err, returned for the query (source, destination),
// as a one-line user message.
func ErrorMessage(err error, source, destination int) string {
	switch {
	case errors.Is(err, core.ErrInvalidIndex):
		return "Error: Enter valid source or destination value"
	case errors.Is(err, dijkstra.ErrNoPath):
		return fmt.Sprintf("Error: No path exist from %d to %d", source, destination)
	case errors.Is(err, core.ErrEmptyAdjacency):
		return fmt.Sprintf("Error: Vertex %d has no edges to remove", source)
	default:
		return "Error: " + err.Error()
	}
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
