// Package tail reads the last lines of a file for the quick view.
package tail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Result holds the tail of a file.
type Result struct {
	Lines     []string
	Binary    bool // the file contains NUL bytes
	Truncated bool // earlier lines were dropped
}

const tabWidth = 4

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines reads every line. Missing files yield an empty result.
func Read(path string, maxLines int) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var res Result
	var all []string
	var ring []string
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		raw := scanner.Bytes()
		if bytes.IndexByte(raw, 0) >= 0 {
			res.Binary = true
		}
		line := Sanitize(string(raw))
		if ring == nil {
			all = append(all, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		} else {
			res.Truncated = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read file: %w", err)
	}

	if ring == nil {
		res.Lines = all
		return res, nil
	}
	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	res.Lines = lines
	return res, nil
}

// Sanitize expands tabs and drops escape sequences and control characters so
// a line can be placed on the terminal safely.
func Sanitize(line string) string {
	line = ansi.Strip(line)
	var b strings.Builder
	col := 0
	for _, r := range line {
		switch {
		case r == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r < 0x20 || r == 0x7f:
			b.WriteByte('.')
			col++
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
