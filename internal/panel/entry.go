package panel

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name    string
	Mode    fs.FileMode
	Size    int64
	ModTime time.Time
	Link    bool
}

const parentName = ".."

// IsDir reports whether the entry (or the symlink target) is a directory.
func (e Entry) IsDir() bool {
	return e.Mode.IsDir()
}

// Kind names the entry type for FileInfo.
func (e Entry) Kind() string {
	switch {
	case e.Name == parentName:
		return "parent"
	case e.Link && e.IsDir():
		return "symlink to directory"
	case e.Link:
		return "symlink"
	case e.IsDir():
		return "directory"
	case e.Mode&0o111 != 0:
		return "executable"
	default:
		return "file"
	}
}

// SizeText is the size column.
func (e Entry) SizeText() string {
	switch {
	case e.Name == parentName:
		return "UP--DIR"
	case e.IsDir():
		return "<DIR>"
	default:
		return humanize.Bytes(uint64(max(0, e.Size)))
	}
}

func readEntries(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	entries := make([]Entry, 0, len(des)+1)
	if filepath.Dir(dir) != dir {
		entries = append(entries, Entry{Name: parentName, Mode: fs.ModeDir})
	}
	for _, de := range des {
		info, err := de.Info()
		if err != nil {
			continue // removed while listing
		}
		e := Entry{Name: de.Name(), Mode: info.Mode(), Size: info.Size(), ModTime: info.ModTime()}
		if info.Mode()&fs.ModeSymlink != 0 {
			e.Link = true
			if target, err := os.Stat(filepath.Join(dir, de.Name())); err == nil {
				e.Mode = target.Mode()
				e.Size = target.Size()
			}
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, compareEntries)
	return entries, nil
}

func compareEntries(a, b Entry) int {
	if a.Name == parentName || b.Name == parentName {
		return boolCmp(a.Name == parentName, b.Name == parentName)
	}
	if a.IsDir() != b.IsDir() {
		return boolCmp(a.IsDir(), b.IsDir())
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// boolCmp orders true before false.
func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

const sizeColumn = 8

func formatEntry(e Entry, width int) string {
	name := e.Name
	if e.IsDir() && e.Name != parentName {
		name = "/" + name
	} else if e.Link {
		name = "@" + name
	}
	if width < sizeColumn*2 {
		return pad(ansi.Truncate(name, width, "~"), width)
	}
	nameWidth := width - sizeColumn - 1
	size := e.SizeText()
	return pad(ansi.Truncate(name, nameWidth, "~"), nameWidth) + " " +
		strings.Repeat(" ", max(0, sizeColumn-ansi.StringWidth(size))) + ansi.Truncate(size, sizeColumn, "")
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
