package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/registry"
	"github.com/vovakirdan/spiralfill/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	steps    int
	resets   int
	resized  [2]int
	last     core.InputFrame
	state    core.GameState
	options  registry.Options
	finishAt int // step that ends the game; 0 never
}

func (f *fakeGame) ID() string    { return "tui_fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(core.RuntimeConfig) {
	f.resets++
	f.steps = 0
	f.state = core.GameState{BoardW: 5, BoardH: 5}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps++
	f.last = in.Clone()
	f.state.Score += 10
	f.state.Placed++
	if in.Has(core.ActionPause) {
		f.state.Paused = !f.state.Paused
	}
	if f.finishAt > 0 && f.steps >= f.finishAt {
		f.state.GameOver = true
	}
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (f *fakeGame) State() core.GameState   { return f.state }
func (f *fakeGame) Resize(w, h int)         { f.resized = [2]int{w, h} }

func (f *fakeGame) Configure(opts registry.Options) error {
	f.options = opts
	return nil
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1}
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{Loop: m.loop})
	return next.(Model)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey("j"), core.ActionDown, false},
		{runeKey("h"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionGrab, false},
		{runeKey("s"), core.ActionSpawn, false},
		{runeKey("c"), core.ActionClear, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	events := []tea.MouseMsg{
		{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 6, Y: 5, Action: tea.MouseActionRelease},
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}
	for _, e := range events {
		km.MapMouseToFrame(e, &frame)
	}

	expected := []core.PointerEvent{
		{Kind: core.PointerPress, X: 3, Y: 4},
		{Kind: core.PointerMotion, X: 5, Y: 4},
		{Kind: core.PointerRelease, X: 6, Y: 5},
	}
	if len(frame.Pointers) != len(expected) {
		t.Fatalf("got %d pointer events, expected %d", len(frame.Pointers), len(expected))
	}
	for i, p := range frame.Pointers {
		if p != expected[i] {
			t.Errorf("pointer %d = %+v, expected %+v", i, p, expected[i])
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.action)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, core.Cell{Rune: 'X', Fg: core.ColorRed, Bg: core.ColorBlue})
	s.DrawTextColored(0, 1, "ok", core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "X", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}

func TestModelFeedsInputToStep(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m = send(m, runeKey("s"))
	m = send(m, tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(m)

	if g.steps != 1 {
		t.Fatalf("steps = %d, expected 1", g.steps)
	}
	if !g.last.Has(core.ActionSpawn) {
		t.Error("Spawn action was not delivered")
	}
	if len(g.last.Pointers) != 1 || g.last.Pointers[0].X != 2 {
		t.Errorf("pointers = %+v", g.last.Pointers)
	}

	// The frame is cleared after each tick.
	tick(m)
	if !g.last.Empty() {
		t.Errorf("second frame = %+v, expected empty", g.last)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m = send(m, TickMsg{Loop: m.loop + 1000})
	if g.steps != 0 {
		t.Errorf("steps = %d after a foreign tick, expected 0", g.steps)
	}
	tick(m)
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, expected [100 30]", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesScoreOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{finishAt: 3}
	m := NewModel(g, store, testRuntime())
	m.Init()
	for range 5 {
		m = tick(m)
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("tui_fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 30 || scores[0].BoardW != 5 || scores[0].Placed != 3 {
		t.Errorf("score = %+v", scores[0])
	}

	m = send(m, runeKey("r"))
	m = tick(m)
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 after restart", g.resets)
	}
	if m.State().GameOver {
		t.Error("still game over after restart")
	}
}

func TestModelBack(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	// Standalone: the first Back pauses.
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m)
	if !m.State().Paused || m.IsQuitting() {
		t.Fatalf("paused = %v, quitting = %v", m.State().Paused, m.IsQuitting())
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() {
		t.Error("second Back should quit")
	}

	e := newEmbeddedModel(&fakeGame{}, nil, testRuntime())
	e = send(e, tea.KeyMsg{Type: tea.KeyEsc})
	if !e.BackToMenu() || e.IsQuitting() {
		t.Errorf("embedded Back: back = %v, quitting = %v", e.BackToMenu(), e.IsQuitting())
	}
}

func TestMenuOptionsCycle(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	n := len(m.items)

	m.cursor = n
	m.cycle(1)
	m.cursor = n + 1
	m.cycle(-1)

	opts := m.Options()
	if opts.Difficulty != difficultyChoices[1] {
		t.Errorf("Difficulty = %q, expected %q", opts.Difficulty, difficultyChoices[1])
	}
	if opts.Size != sizeChoices[len(sizeChoices)-1] {
		t.Errorf("Size = %d, expected %d", opts.Size, sizeChoices[len(sizeChoices)-1])
	}
}

func TestSessionFlow(t *testing.T) {
	fake := &fakeGame{}
	registry.Register("tui_fake", func() registry.Game { return fake })

	s := NewSessionModel(nil, testRuntime(), "tester")
	idx := -1
	for i, item := range s.menu.items {
		if item.GameID == "tui_fake" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("registered game missing from the menu")
	}
	s.menu.cursor = idx
	s.menu.size = 1

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected game", s.screen)
	}
	if fake.options.Size != sizeChoices[1] {
		t.Errorf("Configure size = %d, expected %d", fake.options.Size, sizeChoices[1])
	}
	if !strings.Contains(s.View(), "fake") {
		t.Error("game view not shown")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after Back", s.screen)
	}
	if s.menu.cursor != idx || s.menu.size != 1 {
		t.Error("menu state not kept")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}
	if !strings.Contains(s.View(), "unavailable") {
		t.Error("scoreboard should report missing storage")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", s.screen)
	}
}
