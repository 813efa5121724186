package fm

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/dialog"
	"github.com/five82/fm/internal/events"
	"github.com/five82/fm/internal/panel"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

// fake is a component that records everything it receives into a shared log.
type fake struct {
	name        string
	consumeKeys bool
	err         error
	log         *[]string

	keys   []tea.KeyMsg
	mice   []tea.MouseMsg
	msgs   []bus.Message
	areas  []surface.Rect
	focus  []component.Focus
	dir    string
	status string
}

func (f *fake) HandleKey(k tea.KeyMsg) (bool, error) {
	f.keys = append(f.keys, k)
	*f.log = append(*f.log, f.name+":key")
	return f.consumeKeys, f.err
}

func (f *fake) HandleMouse(m tea.MouseMsg) error {
	f.mice = append(f.mice, m)
	*f.log = append(*f.log, f.name+":mouse")
	return f.err
}

func (f *fake) HandleMessage(msg bus.Message) error {
	f.msgs = append(f.msgs, msg)
	*f.log = append(*f.log, f.name+":msg")
	return f.err
}

func (f *fake) Render(s *surface.Surface, area surface.Rect, focus component.Focus) {
	f.areas = append(f.areas, area)
	f.focus = append(f.focus, focus)
	s.Draw(area, strings.ToUpper(f.name))
}

func (f *fake) Dir() string    { return f.dir }
func (f *fake) Status() string { return f.status }

type harness struct {
	app     *App
	bus     *bus.Bus
	events  chan events.Event
	left    *fake
	right   *fake
	buttons *fake
	log     []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{bus: bus.New(), events: make(chan events.Event, 16)}
	t.Cleanup(h.bus.Close)
	h.left = &fake{name: "left", log: &h.log, dir: "/left", status: "left status"}
	h.right = &fake{name: "right", log: &h.log, dir: "/right", status: "right status"}
	h.buttons = &fake{name: "buttons", log: &h.log}
	h.app = New(Options{
		Styles:    theme.Default(),
		Events:    h.events,
		Messages:  h.bus.Messages(),
		Publisher: h.bus,
		Left:      h.left,
		Right:     h.right,
		ButtonBar: h.buttons,
	})
	return h
}

// withDialog installs a fake dialog directly into the slot.
func (h *harness) withDialog(consume bool) *fake {
	d := &fake{name: "dialog", consumeKeys: consume, log: &h.log}
	h.app.dialog = d
	return d
}

func (h *harness) step(t *testing.T) Action {
	t.Helper()
	type result struct {
		action Action
		err    error
	}
	done := make(chan result, 1)
	go func() {
		action, err := h.app.Step()
		done <- result{action, err}
	}()
	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("Step returned error: %v", r.err)
		}
		return r.action
	case <-time.After(5 * time.Second):
		t.Fatalf("Step did not return")
	}
	return Continue
}

func (h *harness) publish(t *testing.T, msg bus.Message) {
	t.Helper()
	if err := h.bus.Publish(msg); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestScenarioA_QuitWithoutDialog(t *testing.T) {
	h := newHarness(t)
	h.events <- events.Key{Msg: runeKey('q')}

	if got := h.step(t); got != Quit {
		t.Fatalf("Step = %v, want Quit", got)
	}
	if len(h.left.keys) != 1 {
		t.Fatalf("focused panel saw %d keys, want 1", len(h.left.keys))
	}
}

func TestScenarioB_DialogCapturesQuit(t *testing.T) {
	h := newHarness(t)
	d := h.withDialog(true)
	h.events <- events.Key{Msg: runeKey('q')}

	if got := h.step(t); got != Continue {
		t.Fatalf("Step = %v, want Continue", got)
	}
	if len(d.keys) != 1 {
		t.Fatalf("dialog saw %d keys, want 1", len(d.keys))
	}
	if len(h.left.keys)+len(h.right.keys) != 0 {
		t.Fatalf("panels saw keys while a dialog was open")
	}
}

func TestScenarioC_WarningDialogLifecycle(t *testing.T) {
	h := newHarness(t)

	h.publish(t, bus.Warning{Title: "T", Text: "M"})
	if got := h.step(t); got != Continue {
		t.Fatalf("Step = %v, want Continue", got)
	}
	msg, ok := h.app.Dialog().(*dialog.Message)
	if !ok {
		t.Fatalf("Dialog = %T, want *dialog.Message", h.app.Dialog())
	}
	if msg.Title() != "T" || msg.Text() != "M" || msg.Severity() != dialog.SeverityWarning {
		t.Fatalf("dialog = %q %q %v, want T M warning", msg.Title(), msg.Text(), msg.Severity())
	}

	s := surface.New(80, 24)
	h.app.Render(s)
	if !strings.Contains(strings.Join(s.PlainLines(), "\n"), "[ OK ]") {
		t.Fatalf("rendered frame has no message dialog:\n%s", strings.Join(s.PlainLines(), "\n"))
	}

	h.publish(t, bus.CloseDialog{})
	h.step(t)
	if h.app.Dialog() != nil {
		t.Fatalf("Dialog = %T after CloseDialog, want nil", h.app.Dialog())
	}
	s = surface.New(80, 24)
	h.app.Render(s)
	if strings.Contains(strings.Join(s.PlainLines(), "\n"), "[ OK ]") {
		t.Fatalf("dialog still rendered after CloseDialog")
	}
}

func TestScenarioD_ResizeLeavesStateAlone(t *testing.T) {
	h := newHarness(t)
	d := h.withDialog(true)
	h.app.focus = 1
	h.events <- events.Signal{Sig: syscall.SIGWINCH}

	if got := h.step(t); got != Redraw {
		t.Fatalf("Step = %v, want Redraw", got)
	}
	if h.app.Focus() != 1 || h.app.Dialog() != d {
		t.Fatalf("focus/dialog changed by a resize")
	}
}

func TestSignalMapping(t *testing.T) {
	tests := []struct {
		sig  syscall.Signal
		want Action
	}{
		{syscall.SIGWINCH, Redraw},
		{syscall.SIGINT, CtrlC},
		{syscall.SIGTERM, SigTerm},
		{syscall.SIGCONT, SigCont},
	}
	for _, tt := range tests {
		t.Run(tt.sig.String(), func(t *testing.T) {
			h := newHarness(t)
			got, err := h.app.HandleEvent(events.Signal{Sig: tt.sig})
			if err != nil || got != tt.want {
				t.Fatalf("HandleEvent(%v) = %v, %v, want %v", tt.sig, got, err, tt.want)
			}
		})
	}
}

func TestSignalOutsideRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("unregistered signal did not panic")
		}
	}()
	resolveSignal(syscall.SIGUSR1)
}

func TestGlobalKeymap(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want Action
	}{
		{"q", runeKey('q'), Quit},
		{"Q", runeKey('Q'), Quit},
		{"f10", tea.KeyMsg{Type: tea.KeyF10}, Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CtrlC},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, Redraw},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, CtrlZ},
		{"unbound", runeKey('x'), Continue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			got, err := h.app.HandleEvent(events.Key{Msg: tt.key})
			if err != nil || got != tt.want {
				t.Fatalf("HandleEvent(%s) = %v, %v, want %v", tt.key, got, err, tt.want)
			}
		})
	}
}

func TestFocusedPanelHasPriority(t *testing.T) {
	h := newHarness(t)
	h.right.consumeKeys = true
	h.app.focus = 1

	got, err := h.app.HandleEvent(events.Key{Msg: runeKey('q')})
	if err != nil || got != Continue {
		t.Fatalf("HandleEvent = %v, %v, want Continue", got, err)
	}
	if len(h.right.keys) != 1 || len(h.left.keys) != 0 {
		t.Fatalf("keys: right %d, left %d; want only the focused panel", len(h.right.keys), len(h.left.keys))
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	h := newHarness(t)
	tab := events.Key{Msg: tea.KeyMsg{Type: tea.KeyTab}}

	if _, err := h.app.HandleEvent(tab); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if h.app.Focus() != 1 || h.app.Dir() != "/right" {
		t.Fatalf("focus = %d dir = %q after tab", h.app.Focus(), h.app.Dir())
	}
	if _, err := h.app.HandleEvent(tab); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if h.app.Focus() != 0 {
		t.Fatalf("focus = %d after second tab, want 0", h.app.Focus())
	}
}

func TestKeyErrorReturnedDirectly(t *testing.T) {
	h := newHarness(t)
	h.left.err = errors.New("boom")
	if _, err := h.app.HandleEvent(events.Key{Msg: runeKey('j')}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("HandleEvent error = %v, want boom", err)
	}
}

func TestMouseAlwaysReachesButtonBar(t *testing.T) {
	h := newHarness(t)
	click := events.Mouse{Msg: tea.MouseMsg{X: 3, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}}

	if _, err := h.app.HandleEvent(click); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	d := h.withDialog(true)
	if _, err := h.app.HandleEvent(click); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}

	if len(h.buttons.mice) != 2 {
		t.Fatalf("button bar saw %d mouse events, want 2", len(h.buttons.mice))
	}
	if len(d.mice) != 1 {
		t.Fatalf("dialog saw %d mouse events, want 1", len(d.mice))
	}
	if len(h.left.mice)+len(h.right.mice) != 0 {
		t.Fatalf("panels received mouse events")
	}
	if got := strings.Join(h.log[len(h.log)-2:], ","); got != "dialog:mouse,buttons:mouse" {
		t.Fatalf("mouse order = %s, want dialog first", got)
	}
}

func TestMouseErrorStillReachesButtonBar(t *testing.T) {
	h := newHarness(t)
	d := h.withDialog(true)
	d.err = errors.New("dialog failed")

	_, err := h.app.HandleEvent(events.Mouse{Msg: tea.MouseMsg{Action: tea.MouseActionPress}})
	if err == nil || !strings.Contains(err.Error(), "dialog failed") {
		t.Fatalf("HandleEvent error = %v, want the dialog failure", err)
	}
	if len(h.buttons.mice) != 1 {
		t.Fatalf("button bar saw %d mouse events after a dialog failure, want 1", len(h.buttons.mice))
	}
}

func TestUnsupportedIsNoop(t *testing.T) {
	h := newHarness(t)
	got, err := h.app.HandleEvent(events.Unsupported{Msg: tea.FocusMsg{}})
	if err != nil || got != Continue || len(h.log) != 0 {
		t.Fatalf("HandleEvent(unsupported) = %v, %v, log %v", got, err, h.log)
	}
}

func TestBroadcastOrder(t *testing.T) {
	h := newHarness(t)
	h.withDialog(false)

	if err := h.app.HandleMessage(bus.FileInfo{Name: "x"}); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	want := "left:msg,right:msg,buttons:msg,dialog:msg"
	if got := strings.Join(h.log, ","); got != want {
		t.Fatalf("delivery order = %s, want %s", got, want)
	}
}

func TestBroadcastEveryKindToEveryComponent(t *testing.T) {
	h := newHarness(t)
	for _, msg := range bus.All() {
		if err := h.app.HandleMessage(msg); err != nil {
			t.Fatalf("HandleMessage(%T): %v", msg, err)
		}
	}
	n := len(bus.All())
	for _, f := range []*fake{h.left, h.right, h.buttons} {
		if len(f.msgs) != n {
			t.Fatalf("%s received %d messages, want %d", f.name, len(f.msgs), n)
		}
	}
}

func TestBroadcastErrorsAreJoined(t *testing.T) {
	h := newHarness(t)
	d := h.withDialog(false)
	h.left.err = errors.New("left failed")
	d.err = errors.New("dialog failed")

	err := h.app.HandleMessage(bus.Error{Text: "x"})
	if err == nil {
		t.Fatalf("HandleMessage returned nil error")
	}
	for _, want := range []string{"left failed", "dialog failed"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
	if len(h.right.msgs) != 1 || len(h.buttons.msgs) != 1 || len(d.msgs) != 1 {
		t.Fatalf("a failing panel stopped the broadcast")
	}
	if _, ok := h.app.Dialog().(*dialog.Message); !ok {
		t.Fatalf("reaction skipped after component failure; dialog = %T", h.app.Dialog())
	}
}

func TestErrorAlwaysLeavesOneDialog(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 3; i++ {
		if err := h.app.HandleMessage(bus.Error{Text: "x"}); err != nil {
			t.Fatalf("HandleMessage: %v", err)
		}
		msg, ok := h.app.Dialog().(*dialog.Message)
		if !ok || msg.Text() != "x" || msg.Severity() != dialog.SeverityError {
			t.Fatalf("Dialog = %#v, want one error dialog", h.app.Dialog())
		}
	}

	first := h.app.Dialog()
	if err := h.app.HandleMessage(bus.Info{Title: "i", Text: "y"}); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if h.app.Dialog() == first {
		t.Fatalf("new dialog did not replace the old one")
	}
}

func TestCloseDialogWithoutDialogIsNoop(t *testing.T) {
	h := newHarness(t)
	if err := h.app.HandleMessage(bus.CloseDialog{}); err != nil {
		t.Fatalf("HandleMessage(CloseDialog) = %v, want nil", err)
	}
	if h.app.Dialog() != nil {
		t.Fatalf("Dialog = %T, want nil", h.app.Dialog())
	}
}

func TestDialogRequestsInstallInputDialogs(t *testing.T) {
	tests := []struct {
		msg  bus.Message
		want string
	}{
		{bus.DlgGoto{Type: bus.GotoPercent}, "*dialog.Goto"},
		{bus.DlgTextSearch{Query: bus.TextQuery{Pattern: "a"}}, "*dialog.TextSearch"},
		{bus.DlgHexSearch{}, "*dialog.HexSearch"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h := newHarness(t)
			if err := h.app.HandleMessage(tt.msg); err != nil {
				t.Fatalf("HandleMessage: %v", err)
			}
			var got string
			switch h.app.Dialog().(type) {
			case *dialog.Goto:
				got = "*dialog.Goto"
			case *dialog.TextSearch:
				got = "*dialog.TextSearch"
			case *dialog.HexSearch:
				got = "*dialog.HexSearch"
			}
			if got != tt.want {
				t.Fatalf("Dialog = %T, want %s", h.app.Dialog(), tt.want)
			}
		})
	}
}

func TestOtherMessagesLeaveDialogSlotAlone(t *testing.T) {
	h := newHarness(t)
	d := h.withDialog(false)
	for _, msg := range []bus.Message{
		bus.FileInfo{}, bus.ToggleHex{}, bus.Highlight{},
		bus.FromHexOffset{}, bus.ToHexOffset{}, bus.HVStartSearch{}, bus.HVSearchNext{}, bus.HVSearchPrev{},
		bus.Goto{}, bus.TextSearch{}, bus.HexSearch{},
	} {
		if err := h.app.HandleMessage(msg); err != nil {
			t.Fatalf("HandleMessage(%T): %v", msg, err)
		}
		if h.app.Dialog() != d {
			t.Fatalf("%T changed the dialog slot", msg)
		}
	}
}

func TestStepDisconnected(t *testing.T) {
	h := newHarness(t)
	close(h.events)
	if _, err := h.app.Step(); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("Step error = %v, want ErrDisconnected", err)
	}
}

func TestStepBusClosed(t *testing.T) {
	h := newHarness(t)
	h.bus.Close()
	_, err := h.app.Step()
	if !errors.Is(err, ErrDisconnected) {
		t.Fatalf("Step error = %v, want ErrDisconnected", err)
	}
	if !strings.HasPrefix(err.Error(), "bus: ") {
		t.Fatalf("Step error = %q, want it to name the bus", err)
	}
}

func TestStepEventsClosedNamesEvents(t *testing.T) {
	h := newHarness(t)
	close(h.events)
	if _, err := h.app.Step(); err == nil || !strings.HasPrefix(err.Error(), "events: ") {
		t.Fatalf("Step error = %v, want it to name the event channel", err)
	}
}

func TestStepPublishOnlyTickContinues(t *testing.T) {
	h := newHarness(t)
	h.publish(t, bus.ToggleHex{})
	if got := h.step(t); got != Continue {
		t.Fatalf("Step = %v, want Continue", got)
	}
	if len(h.left.msgs) != 1 {
		t.Fatalf("bus message not dispatched")
	}
}

func TestStepDrainsBothSourcesExactlyOnce(t *testing.T) {
	h := newHarness(t)
	const n = 5
	for i := 0; i < n; i++ {
		h.events <- events.Key{Msg: runeKey('x')}
		h.publish(t, bus.ToggleHex{})
	}
	for i := 0; i < 2*n; i++ {
		h.step(t)
	}
	if len(h.left.keys) != n || len(h.left.msgs) != n {
		t.Fatalf("keys %d msgs %d, want %d each", len(h.left.keys), len(h.left.msgs), n)
	}
}

func TestRenderLayout(t *testing.T) {
	h := newHarness(t)
	d := h.withDialog(false)
	h.app.focus = 1

	s := surface.New(80, 24)
	h.app.Render(s)

	if h.left.areas[0] != (surface.Rect{Width: 40, Height: 22}) {
		t.Fatalf("left area = %+v", h.left.areas[0])
	}
	if h.right.areas[0] != (surface.Rect{X: 40, Width: 40, Height: 22}) {
		t.Fatalf("right area = %+v", h.right.areas[0])
	}
	if h.buttons.areas[0] != (surface.Rect{Y: 23, Width: 80, Height: 1}) {
		t.Fatalf("button bar area = %+v", h.buttons.areas[0])
	}
	if d.areas[0] != (surface.Rect{Width: 80, Height: 22}) || d.focus[0] != component.Normal {
		t.Fatalf("dialog rendered at %+v with %v, want panel region and Normal", d.areas[0], d.focus[0])
	}
	if h.left.focus[0] != component.Normal || h.right.focus[0] != component.Focused {
		t.Fatalf("focus pushed = %v/%v, want Normal/Focused", h.left.focus[0], h.right.focus[0])
	}
	if got := s.PlainLines()[22]; !strings.HasPrefix(got, "right status") {
		t.Fatalf("status line = %q, want the focused panel's status", got)
	}
}

func TestActionString(t *testing.T) {
	want := []string{"Continue", "Redraw", "Quit", "CtrlC", "SigTerm", "CtrlZ", "SigCont"}
	for i, w := range want {
		if got := Action(i).String(); got != w {
			t.Fatalf("Action(%d) = %q, want %q", i, got, w)
		}
	}
	if !Quit.Exits() || !SigTerm.Exits() || Redraw.Exits() || CtrlZ.Exits() {
		t.Fatalf("Exits classification wrong")
	}
}

// drain dispatches bus messages until the bus stays empty for a moment.
func drain(t *testing.T, a *App, b *bus.Bus) {
	t.Helper()
	for {
		select {
		case msg := <-b.Messages():
			if err := a.HandleMessage(msg); err != nil {
				t.Fatalf("HandleMessage(%T): %v", msg, err)
			}
		case <-time.After(100 * time.Millisecond):
			return
		}
	}
}

func TestOverlappingGotoRequestsReachOnlyTheRequester(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	b := bus.New()
	t.Cleanup(b.Close)
	styles := theme.Default()
	left, err := panel.New(dir, b, styles)
	if err != nil {
		t.Fatalf("panel.New: %v", err)
	}
	right, err := panel.New(dir, b, styles)
	if err != nil {
		t.Fatalf("panel.New: %v", err)
	}
	var log []string
	a := New(Options{
		Styles:    styles,
		Events:    make(chan events.Event),
		Messages:  b.Messages(),
		Publisher: b,
		Left:      left,
		Right:     right,
		ButtonBar: &fake{name: "buttons", log: &log},
	})

	// ':' on the left, tab, ':' on the right, all before either request is dispatched.
	for _, k := range []tea.KeyMsg{runeKey(':'), {Type: tea.KeyTab}, runeKey(':')} {
		if _, err := a.HandleEvent(events.Key{Msg: k}); err != nil {
			t.Fatalf("HandleEvent(%s): %v", k, err)
		}
	}
	drain(t, a, b)
	if _, ok := a.Dialog().(*dialog.Goto); !ok {
		t.Fatalf("Dialog = %T, want *dialog.Goto", a.Dialog())
	}

	for _, k := range []tea.KeyMsg{runeKey('3'), {Type: tea.KeyEnter}} {
		if _, err := a.HandleEvent(events.Key{Msg: k}); err != nil {
			t.Fatalf("HandleEvent(%s): %v", k, err)
		}
	}
	drain(t, a, b)

	if a.Dialog() != nil {
		t.Fatalf("Dialog = %T after confirming, want nil", a.Dialog())
	}
	if e, _ := right.Selected(); e.Name != "b" {
		t.Fatalf("right selected %q, want b", e.Name)
	}
	if e, _ := left.Selected(); e.Name != ".." {
		t.Fatalf("left selected %q, want .. (the result belongs to the right panel)", e.Name)
	}
}
