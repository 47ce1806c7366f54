// Package app wires the stores, provider, and screens into the root
// Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/guru"
	"github.com/chidera/unipal/internal/llm"
	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/quizgen"
	"github.com/chidera/unipal/internal/router"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/screens/guruchat"
	"github.com/chidera/unipal/internal/screens/home"
	"github.com/chidera/unipal/internal/screens/library"
	"github.com/chidera/unipal/internal/screens/login"
	"github.com/chidera/unipal/internal/screens/onboarding"
	"github.com/chidera/unipal/internal/screens/quizzone"
	"github.com/chidera/unipal/internal/screens/settings"
	"github.com/chidera/unipal/internal/screens/subjects"
	"github.com/chidera/unipal/internal/store"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

// Options carries the app's injected dependencies.
type Options struct {
	Profiles *profile.Store

	// Provider may be nil when no LLM backend is configured; the app
	// still runs with the chat and AI quiz disabled.
	Provider llm.Provider

	Events store.EventRepo
}

// restoredMsg signals that the persisted profile load finished.
type restoredMsg struct {
	Err error
}

// AppModel is the root Bubble Tea model. It owns the session gate:
// which of loading / login / onboarding / main is showing is always
// derived from the profile store, never tracked separately.
type AppModel struct {
	opts  Options
	stage profile.Stage

	gate    screen.Screen // login or onboarding screen when not in main
	tabs    *router.Router
	adapter *guru.Adapter

	navOpen    int // selected index while the nav overlay is open
	navShowing bool
	width      int
	height     int
}

// newAppModel creates the root model in the loading stage.
func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:  opts,
		stage: profile.StageLoading,
	}
}

func (m AppModel) Init() tea.Cmd {
	profiles := m.opts.Profiles
	return func() tea.Msg {
		return restoredMsg{Err: profiles.Restore(context.Background())}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case restoredMsg:
		return m.syncStage()

	case router.SelectTabMsg:
		// Selecting a tab always dismisses the nav overlay.
		m.navShowing = false
		if m.tabs != nil {
			return m, m.tabs.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		if m.stage == profile.StageMain {
			if model, cmd, handled := m.handleMainKey(msg); handled {
				return model, cmd
			}
		}
	}

	cmd := m.forward(msg)

	// A login, onboarding finish, or logout changes the derived stage;
	// rebuild the visible screen when that happens.
	model, syncCmd := m.syncStage()
	return model, tea.Batch(cmd, syncCmd)
}

// handleMainKey processes shell-level keys in the main stage. The
// returned bool reports whether the key was consumed.
func (m AppModel) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if m.navShowing {
		switch msg.String() {
		case "up", "k":
			if m.navOpen > 0 {
				m.navOpen--
			}
		case "down", "j":
			if m.navOpen < len(router.Tabs)-1 {
				m.navOpen++
			}
		case "enter":
			tab := router.Tabs[m.navOpen]
			m.navShowing = false
			return m, func() tea.Msg { return router.SelectTabMsg{Tab: tab} }, true
		case "esc", "ctrl+o":
			m.navShowing = false
		}
		return m, nil, true
	}

	switch msg.String() {
	case "ctrl+o":
		m.navShowing = true
		m.navOpen = m.tabs.ActiveIndex()
		return m, nil, true
	case "tab":
		return m, m.tabs.Next(), true
	case "shift+tab":
		return m, m.tabs.Prev(), true
	}
	return m, nil, false
}

// forward routes a message to whichever screen the gate is showing.
func (m *AppModel) forward(msg tea.Msg) tea.Cmd {
	switch m.stage {
	case profile.StageMain:
		if m.tabs != nil {
			return m.tabs.Update(msg)
		}
	case profile.StageLogin, profile.StageOnboarding:
		if m.gate != nil {
			updated, cmd := m.gate.Update(msg)
			m.gate = updated
			return cmd
		}
	}
	return nil
}

// syncStage rebuilds the visible screen when the derived stage moved.
func (m AppModel) syncStage() (tea.Model, tea.Cmd) {
	stage := m.opts.Profiles.Stage()
	if stage == m.stage {
		return m, nil
	}
	m.stage = stage
	m.navShowing = false

	switch stage {
	case profile.StageLogin:
		m.tabs = nil
		m.adapter = nil
		m.gate = login.New(m.opts.Profiles)
		return m, m.gate.Init()

	case profile.StageOnboarding:
		m.gate = onboarding.New(m.opts.Profiles)
		return m, m.gate.Init()

	case profile.StageMain:
		m.gate = nil
		return m.enterMain()
	}

	return m, nil
}

// enterMain builds the tab shell with all six screens.
func (m AppModel) enterMain() (tea.Model, tea.Cmd) {
	if m.opts.Provider != nil {
		m.adapter = guru.NewAdapter(m.opts.Provider)
	} else {
		m.adapter = guru.NewAdapter(llm.NewMockProvider())
	}

	var generator *quizgen.Generator
	if m.opts.Provider != nil {
		generator = quizgen.New(m.opts.Provider, quizgen.DefaultConfig())
	}

	screens := map[router.Tab]screen.Screen{
		router.TabHome:     home.New(m.opts.Profiles),
		router.TabSubjects: subjects.New(m.opts.Profiles),
		router.TabLibrary:  library.New(),
		router.TabGuru:     guruchat.New(m.adapter, m.opts.Profiles),
		router.TabQuiz:     quizzone.New(m.opts.Profiles, generator, m.opts.Events),
		router.TabSettings: settings.New(m.opts.Profiles),
	}

	tabs, err := router.New(screens)
	if err != nil {
		// All six are constructed above; this is unreachable in practice.
		panic(err)
	}
	m.tabs = tabs
	return m, tabs.ActiveScreen().Init()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.stage == profile.StageMain && m.tabs != nil {
		v.SetContent(m.mainView())
		return v
	}

	v.SetContent(m.gateView())
	return v
}

// gateView renders the loading, login, and onboarding stages.
func (m AppModel) gateView() string {
	header := layout.RenderHeader(m.gateTitle(), "", "", m.width)
	footer := layout.RenderFooter(m.footerHints(m.gate), m.width)

	content := ""
	switch {
	case m.stage == profile.StageLoading:
		content = lipgloss.Place(m.width, layout.ContentHeight(m.height),
			lipgloss.Center, lipgloss.Center, theme.Hint.Render("Loading..."))
	case m.gate != nil:
		content = m.gate.View(m.width, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) gateTitle() string {
	if m.gate != nil {
		return m.gate.Title()
	}
	return ""
}

// mainView renders the tab shell: header, tab bar, content, footer.
func (m AppModel) mainView() string {
	name, level := "", ""
	if p := m.opts.Profiles.Current(); p != nil {
		name = p.FirstName()
		level = string(p.Level)
	}

	active := m.tabs.ActiveScreen()
	header := layout.RenderHeader(active.Title(), name, level, m.width)

	labels := make([]string, len(router.Tabs))
	for i, t := range router.Tabs {
		labels[i] = t.Label()
	}
	tabBar := layout.RenderTabBar(labels, m.tabs.ActiveIndex(), m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabBar) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.navShowing {
		content = m.navOverlay(contentHeight)
	} else {
		content = m.tabs.View(m.width, contentHeight)
	}

	styled := lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)
	return header + "\n" + tabBar + "\n" + styled + "\n" + footer
}

// navOverlay renders the full tab list as a centered menu.
func (m AppModel) navOverlay(contentHeight int) string {
	var b string
	for i, t := range router.Tabs {
		if i == m.navOpen {
			b += theme.Selected.Render("  ▸ "+t.Label()) + "\n"
		} else {
			b += theme.Unselected.Render("    "+t.Label()) + "\n"
		}
	}
	card := theme.Card.Render(b)
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, card)
}

// footerHints combines a screen's own hints with the global ones.
func (m AppModel) footerHints(s screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if m.navShowing {
		hints = []layout.KeyHint{
			{Key: "↑/↓", Description: "Navigate"},
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Close"},
		}
	} else if provider, ok := s.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	if m.stage == profile.StageMain && !m.navShowing {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "Menu"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
