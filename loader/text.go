package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/allpairs/core"
)

// ErrMalformed indicates input that does not follow the graph format.
var ErrMalformed = errors.New("loader: malformed graph description")

// TextDecoder reads graphs in the line-oriented text format.
type TextDecoder struct {
	r    *bufio.Reader
	line int
}

// NewTextDecoder returns a decoder reading from r.
func NewTextDecoder(r io.Reader) *TextDecoder {
	return &TextDecoder{r: bufio.NewReader(r)}
}

// readLine returns the next line without its terminator. ok is false at
// end of input.
func (d *TextDecoder) readLine() (string, bool, error) {
	s, err := d.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if s == "" && errors.Is(err, io.EOF) {
		return "", false, nil
	}
	d.line++

	return strings.TrimRight(s, "\r\n"), true, nil
}

func (d *TextDecoder) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, d.line, fmt.Sprintf(format, args...))
}

// Next decodes the next graph. It returns io.EOF when no graph remains.
//
// A vertex count of 0 yields a Description with no names; core.Build
// rejects it with core.ErrEmptyGraph.
func (d *TextDecoder) Next() (core.Description, error) {
	var desc core.Description

	// Vertex count; blank lines before it are skipped.
	var (
		line string
		ok   bool
		err  error
	)
	for {
		if line, ok, err = d.readLine(); err != nil {
			return desc, err
		}
		if !ok {
			return desc, io.EOF
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return desc, d.malformed("vertex count %q", line)
	}

	desc.Names = make([]string, 0, n)
	for i := 0; i < n; i++ {
		if line, ok, err = d.readLine(); err != nil {
			return desc, err
		}
		if !ok {
			return desc, d.malformed("expected %d vertex names, got %d", n, i)
		}
		desc.Names = append(desc.Names, line)
	}

	for {
		if line, ok, err = d.readLine(); err != nil {
			return desc, err
		}
		if !ok {
			return desc, nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "0" {
			return desc, nil
		}
		if len(fields) != 3 {
			return desc, d.malformed("edge %q: want 3 fields", line)
		}
		spec, err := parseEdge(fields)
		if err != nil {
			return desc, d.malformed("edge %q: %v", line, err)
		}
		desc.Edges = append(desc.Edges, spec)
	}
}

func parseEdge(fields []string) (core.EdgeSpec, error) {
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.EdgeSpec{}, err
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.EdgeSpec{}, err
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return core.EdgeSpec{}, err
	}

	return core.EdgeSpec{From: from, To: to, Weight: w}, nil
}
