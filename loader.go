package rank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadEdgeList reads a delimited edge-list file: one edge per line,
// two or three fields (src, dst, optional weight), no header row.
// Any line that does not parse aborts the load with ErrDataFormat.
func LoadEdgeList(path string, delim string) (EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rank: open edge list: %w", err)
	}
	defer f.Close()

	edges, err := ReadEdgeList(f, delim)
	if err != nil {
		return nil, fmt.Errorf("rank: %s: %w", path, err)
	}
	return edges, nil
}

// ReadEdgeList parses edge lines from r. Blank lines are skipped;
// a malformed line fails the whole read, there is no partial recovery.
func ReadEdgeList(r io.Reader, delim string) (EdgeList, error) {
	if delim == "" {
		delim = "\t"
	}

	var edges EdgeList
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		edge, err := parseEdge(line, delim)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rank: read edge list: %w", err)
	}

	return edges, nil
}

func parseEdge(line, delim string) (Edge, error) {
	fields := strings.Split(line, delim)
	if len(fields) != 2 && len(fields) != 3 {
		return Edge{}, fmt.Errorf("%d fields, want 2 or 3: %w", len(fields), ErrDataFormat)
	}

	src, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("source %q is not an integer: %w", fields[0], ErrDataFormat)
	}
	dst, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("destination %q is not an integer: %w", fields[1], ErrDataFormat)
	}

	weight := 1.0
	if len(fields) == 3 {
		weight, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return Edge{}, fmt.Errorf("weight %q is not a number: %w", fields[2], ErrDataFormat)
		}
	}

	return Edge{Src: src, Dst: dst, Weight: weight}, nil
}
