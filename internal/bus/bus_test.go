package bus

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/fm/internal/mailbox"
)

func TestPublish_DeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	sent := []Message{Error{Text: "boom"}, Warning{Title: "T", Text: "M"}, CloseDialog{}}
	for _, msg := range sent {
		if err := b.Publish(msg); err != nil {
			t.Fatalf("Publish(%T) returned error: %v", msg, err)
		}
	}

	for i, want := range sent {
		select {
		case got := <-b.Messages():
			if got != want {
				t.Fatalf("message %d = %#v, want %#v", i, got, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
}

func TestPublish_AfterCloseFails(t *testing.T) {
	b := New()
	b.Close()

	err := b.Publish(Info{Title: "late"})
	if !errors.Is(err, mailbox.ErrClosed) {
		t.Fatalf("Publish error = %v, want mailbox.ErrClosed", err)
	}
}

func TestPending(t *testing.T) {
	b := New()
	for _, msg := range []Message{ToggleHex{}, HVSearchNext{}, CloseDialog{}} {
		if err := b.Publish(msg); err != nil {
			t.Fatalf("Publish(%T): %v", msg, err)
		}
	}
	if got := b.Pending(); got != 3 {
		t.Fatalf("Pending = %d, want 3", got)
	}
	b.Close()
	if got := b.Pending(); got != 0 {
		t.Fatalf("Pending after Close = %d, want 0", got)
	}
}

func TestAll_ListsEveryKindOnce(t *testing.T) {
	seen := map[string]bool{}
	for _, msg := range All() {
		name := typeName(msg)
		if seen[name] {
			t.Fatalf("kind %s listed twice", name)
		}
		seen[name] = true
	}
	if len(seen) != 18 {
		t.Fatalf("All() returned %d kinds, want 18", len(seen))
	}
}

func TestGotoTypeString(t *testing.T) {
	tests := []struct {
		in   GotoType
		want string
	}{
		{GotoLine, "Line"},
		{GotoPercent, "Percent"},
		{GotoOffset, "Offset"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("GotoType(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func typeName(msg Message) string {
	switch msg.(type) {
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	case CloseDialog:
		return "CloseDialog"
	case FileInfo:
		return "FileInfo"
	case ToggleHex:
		return "ToggleHex"
	case Highlight:
		return "Highlight"
	case FromHexOffset:
		return "FromHexOffset"
	case ToHexOffset:
		return "ToHexOffset"
	case HVStartSearch:
		return "HVStartSearch"
	case HVSearchNext:
		return "HVSearchNext"
	case HVSearchPrev:
		return "HVSearchPrev"
	case DlgGoto:
		return "DlgGoto"
	case Goto:
		return "Goto"
	case DlgTextSearch:
		return "DlgTextSearch"
	case TextSearch:
		return "TextSearch"
	case DlgHexSearch:
		return "DlgHexSearch"
	case HexSearch:
		return "HexSearch"
	}
	return ""
}
