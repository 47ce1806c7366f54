package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/chidera/unipal/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRuns int
	updates  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRuns++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func newTestRouter(t *testing.T) (*Router, map[Tab]*stubScreen) {
	t.Helper()
	stubs := make(map[Tab]*stubScreen, len(Tabs))
	screens := make(map[Tab]screen.Screen, len(Tabs))
	for _, tab := range Tabs {
		st := &stubScreen{title: tab.Label()}
		stubs[tab] = st
		screens[tab] = st
	}
	r, err := New(screens)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r, stubs
}

func TestNew_StartsOnHome(t *testing.T) {
	r, _ := newTestRouter(t)
	if r.Active() != TabHome {
		t.Errorf("expected home tab, got %q", r.Active())
	}
}

func TestNew_RequiresAllTabs(t *testing.T) {
	screens := map[Tab]screen.Screen{TabHome: &stubScreen{title: "Home"}}
	if _, err := New(screens); err == nil {
		t.Error("expected error for missing tab screens")
	}
}

func TestSelect_SwitchesAndInits(t *testing.T) {
	r, stubs := newTestRouter(t)

	if _, err := r.Select(TabGuru); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if r.Active() != TabGuru {
		t.Errorf("expected guru tab, got %q", r.Active())
	}
	if stubs[TabGuru].initRuns != 1 {
		t.Errorf("expected Init to run once on selection, got %d", stubs[TabGuru].initRuns)
	}
}

func TestSelect_SameTabIsNoop(t *testing.T) {
	r, stubs := newTestRouter(t)

	if _, err := r.Select(TabHome); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if r.Active() != TabHome {
		t.Errorf("expected home tab, got %q", r.Active())
	}
	if stubs[TabHome].initRuns != 0 {
		t.Errorf("re-selecting the active tab must not re-init, got %d inits", stubs[TabHome].initRuns)
	}
}

func TestSelect_InvalidTab(t *testing.T) {
	r, _ := newTestRouter(t)

	_, err := r.Select(Tab("timetable"))
	if !errors.Is(err, ErrInvalidTab) {
		t.Fatalf("expected ErrInvalidTab, got %v", err)
	}
	if r.Active() != TabHome {
		t.Errorf("invalid selection must not change the active tab, got %q", r.Active())
	}
}

func TestSelect_PreservesScreenState(t *testing.T) {
	r, stubs := newTestRouter(t)

	r.Update(tea.KeyPressMsg{}) // reaches home
	if _, err := r.Select(TabQuiz); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if _, err := r.Select(TabHome); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if stubs[TabHome].updates != 1 {
		t.Errorf("home screen state should survive tab switches, updates=%d", stubs[TabHome].updates)
	}
}

func TestUpdate_SelectTabMsg(t *testing.T) {
	r, _ := newTestRouter(t)

	r.Update(SelectTabMsg{Tab: TabLibrary})
	if r.Active() != TabLibrary {
		t.Errorf("expected library tab, got %q", r.Active())
	}
}

func TestUpdate_InvalidSelectTabMsgDropped(t *testing.T) {
	r, stubs := newTestRouter(t)

	r.Update(SelectTabMsg{Tab: Tab("nonsense")})
	if r.Active() != TabHome {
		t.Errorf("invalid SelectTabMsg must be dropped, got %q", r.Active())
	}
	// The message must not leak into the active screen either.
	if stubs[TabHome].updates != 0 {
		t.Errorf("SelectTabMsg should not reach screens, updates=%d", stubs[TabHome].updates)
	}
}

func TestUpdate_ForwardsToActiveScreenOnly(t *testing.T) {
	r, stubs := newTestRouter(t)
	r.Update(SelectTabMsg{Tab: TabGuru})

	r.Update(tea.KeyPressMsg{})

	if stubs[TabGuru].updates != 1 {
		t.Errorf("active screen should receive the message, updates=%d", stubs[TabGuru].updates)
	}
	if stubs[TabHome].updates != 0 {
		t.Errorf("inactive screens should not receive messages, updates=%d", stubs[TabHome].updates)
	}
}

func TestNextPrev_CycleAndWrap(t *testing.T) {
	r, _ := newTestRouter(t)

	for i := 1; i < len(Tabs); i++ {
		r.Next()
		if r.Active() != Tabs[i] {
			t.Fatalf("step %d: expected %q, got %q", i, Tabs[i], r.Active())
		}
	}
	r.Next()
	if r.Active() != TabHome {
		t.Errorf("Next should wrap to home, got %q", r.Active())
	}

	r.Prev()
	if r.Active() != TabSettings {
		t.Errorf("Prev should wrap to settings, got %q", r.Active())
	}
}

func TestView_RendersActiveScreen(t *testing.T) {
	r, _ := newTestRouter(t)
	r.Update(SelectTabMsg{Tab: TabQuiz})

	if got := r.View(80, 24); got != "Quiz" {
		t.Errorf("expected quiz view, got %q", got)
	}
}
