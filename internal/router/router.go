// Package router switches between the main shell's tabs. Unlike a
// navigation stack there is no history: every tab is always reachable
// and selecting one replaces the visible screen while the others keep
// their state.
package router

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/chidera/unipal/internal/screen"
)

// Tab identifies one of the main shell's tabs.
type Tab string

const (
	TabHome     Tab = "home"
	TabSubjects Tab = "subjects"
	TabLibrary  Tab = "library"
	TabGuru     Tab = "guru"
	TabQuiz     Tab = "quiz"
	TabSettings Tab = "settings"
)

// Tabs is the display order of the tab strip.
var Tabs = []Tab{TabHome, TabSubjects, TabLibrary, TabGuru, TabQuiz, TabSettings}

// ErrInvalidTab is returned when a tab identifier is not one of the six tabs.
var ErrInvalidTab = errors.New("invalid tab")

// SelectTabMsg requests the router to switch to the given tab.
type SelectTabMsg struct {
	Tab Tab
}

// Label returns the human-readable tab name.
func (t Tab) Label() string {
	switch t {
	case TabHome:
		return "Home"
	case TabSubjects:
		return "Subjects"
	case TabLibrary:
		return "Library"
	case TabGuru:
		return "AI Guru"
	case TabQuiz:
		return "Quiz"
	case TabSettings:
		return "Settings"
	}
	return string(t)
}

// Valid reports whether the tab is one of the six known tabs.
func (t Tab) Valid() bool {
	for _, known := range Tabs {
		if t == known {
			return true
		}
	}
	return false
}

// Router holds one screen per tab and tracks which is active.
type Router struct {
	screens map[Tab]screen.Screen
	active  Tab
}

// New creates a Router over the given screens, starting on the home tab.
// Every tab in Tabs must have a screen.
func New(screens map[Tab]screen.Screen) (*Router, error) {
	for _, t := range Tabs {
		if screens[t] == nil {
			return nil, fmt.Errorf("missing screen for tab %q", t)
		}
	}
	return &Router{screens: screens, active: TabHome}, nil
}

// Active returns the currently selected tab.
func (r *Router) Active() Tab {
	return r.active
}

// ActiveScreen returns the screen for the currently selected tab.
func (r *Router) ActiveScreen() screen.Screen {
	return r.screens[r.active]
}

// ActiveIndex returns the position of the active tab in Tabs.
func (r *Router) ActiveIndex() int {
	for i, t := range Tabs {
		if t == r.active {
			return i
		}
	}
	return 0
}

// Select switches to the given tab and runs its screen's Init.
// Selecting the already-active tab is a no-op. Unknown tabs return
// ErrInvalidTab without changing the selection.
func (r *Router) Select(t Tab) (tea.Cmd, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTab, t)
	}
	if t == r.active {
		return nil, nil
	}
	r.active = t
	return r.screens[t].Init(), nil
}

// Next cycles to the tab after the active one, wrapping around.
func (r *Router) Next() tea.Cmd {
	cmd, _ := r.Select(Tabs[(r.ActiveIndex()+1)%len(Tabs)])
	return cmd
}

// Prev cycles to the tab before the active one, wrapping around.
func (r *Router) Prev() tea.Cmd {
	cmd, _ := r.Select(Tabs[(r.ActiveIndex()+len(Tabs)-1)%len(Tabs)])
	return cmd
}

// Update forwards a message to the active screen and handles tab
// selection messages. Invalid tabs in a SelectTabMsg are dropped.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if sel, ok := msg.(SelectTabMsg); ok {
		cmd, err := r.Select(sel.Tab)
		if err != nil {
			return nil
		}
		return cmd
	}

	active := r.ActiveScreen()
	updated, cmd := active.Update(msg)
	r.screens[r.active] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.ActiveScreen().View(width, height)
}
