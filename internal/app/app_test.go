package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/router"
)

// memProfileRepo is an in-memory store.ProfileRepo for driving the
// session gate without a database.
type memProfileRepo struct {
	raw []byte
}

func (m *memProfileRepo) Save(_ context.Context, raw []byte) error {
	m.raw = append([]byte(nil), raw...)
	return nil
}

func (m *memProfileRepo) Load(_ context.Context) ([]byte, error) { return m.raw, nil }
func (m *memProfileRepo) Clear(_ context.Context) error          { m.raw = nil; return nil }

// syncMsg is an arbitrary message; any message makes the model
// re-derive its stage from the profile store.
type syncMsg struct{}

func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	model, _ := m.Update(msg)
	next, ok := model.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", model)
	}
	return next
}

func strPtr(v string) *string               { return &v }
func lvlPtr(v profile.Level) *profile.Level { return &v }

// restoredApp returns a model that has finished restoring an empty
// profile store, so it sits at the login stage.
func restoredApp(t *testing.T) (AppModel, *profile.Store) {
	t.Helper()
	profiles := profile.NewStore(&memProfileRepo{})
	m := newAppModel(Options{Profiles: profiles})

	if m.stage != profile.StageLoading {
		t.Fatalf("fresh model stage = %v, want loading", m.stage)
	}

	m = drive(t, m, m.Init()())
	return m, profiles
}

// mainStageApp walks a model through login and onboarding into the
// main shell.
func mainStageApp(t *testing.T) (AppModel, *profile.Store) {
	t.Helper()
	m, profiles := restoredApp(t)
	ctx := context.Background()

	if _, err := profiles.Login(ctx, "Ada Eze", "ada@uni.edu.ng", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	m = drive(t, m, syncMsg{})

	_, err := profiles.UpdateProfile(ctx, profile.Changes{
		University: strPtr("University of Lagos"),
		Course:     strPtr("Law"),
		Level:      lvlPtr(profile.Level200),
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	m = drive(t, m, syncMsg{})

	if m.stage != profile.StageMain {
		t.Fatalf("stage = %v, want main", m.stage)
	}
	return m, profiles
}

func TestStageFlow_LoginToMain(t *testing.T) {
	m, profiles := restoredApp(t)

	if m.stage != profile.StageLogin {
		t.Fatalf("stage after restore = %v, want login", m.stage)
	}
	if m.gate == nil {
		t.Fatal("login stage must show a gate screen")
	}
	if m.tabs != nil {
		t.Error("tab shell must not exist before login")
	}

	// The login screen mutates the store; the model re-derives its
	// stage on the next message.
	if _, err := profiles.Login(context.Background(), "Ada Eze", "ada@uni.edu.ng", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	m = drive(t, m, syncMsg{})

	if m.stage != profile.StageOnboarding {
		t.Fatalf("stage after login = %v, want onboarding", m.stage)
	}
	if m.gate == nil {
		t.Fatal("onboarding stage must show a gate screen")
	}

	_, err := profiles.UpdateProfile(context.Background(), profile.Changes{
		University: strPtr("University of Lagos"),
		Course:     strPtr("Law"),
		Level:      lvlPtr(profile.Level200),
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	m = drive(t, m, syncMsg{})

	if m.stage != profile.StageMain {
		t.Fatalf("stage after onboarding = %v, want main", m.stage)
	}
	if m.tabs == nil {
		t.Fatal("main stage must build the tab shell")
	}
	if got := m.tabs.Active(); got != router.TabHome {
		t.Errorf("initial tab = %v, want home", got)
	}
	if m.gate != nil {
		t.Error("gate screen must be dropped in the main stage")
	}
}

func TestLogout_ReturnsToLogin(t *testing.T) {
	m, profiles := mainStageApp(t)

	if err := profiles.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	m = drive(t, m, syncMsg{})

	if m.stage != profile.StageLogin {
		t.Fatalf("stage after logout = %v, want login", m.stage)
	}
	if m.tabs != nil {
		t.Error("tab shell must be torn down after logout")
	}
	if m.adapter != nil {
		t.Error("chat adapter must be dropped after logout")
	}
}

func TestMainKeys_TabCycling(t *testing.T) {
	m, _ := mainStageApp(t)

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if got := m.tabs.Active(); got != router.TabSubjects {
		t.Errorf("after tab: active = %v, want subjects", got)
	}

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := m.tabs.Active(); got != router.TabHome {
		t.Errorf("after shift+tab: active = %v, want home", got)
	}

	// Cycling backwards from the first tab wraps to the last.
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := m.tabs.Active(); got != router.TabSettings {
		t.Errorf("wrap: active = %v, want settings", got)
	}
}

func TestSelectTabMsg_SwitchesTab(t *testing.T) {
	m, _ := mainStageApp(t)

	m = drive(t, m, router.SelectTabMsg{Tab: router.TabQuiz})
	if got := m.tabs.Active(); got != router.TabQuiz {
		t.Errorf("active = %v, want quiz", got)
	}

	// Re-selecting the active tab changes nothing.
	m = drive(t, m, router.SelectTabMsg{Tab: router.TabQuiz})
	if got := m.tabs.Active(); got != router.TabQuiz {
		t.Errorf("active = %v, want quiz", got)
	}
}

func TestNavOverlay_SelectsTab(t *testing.T) {
	m, _ := mainStageApp(t)

	m = drive(t, m, tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	if !m.navShowing {
		t.Fatal("ctrl+o must open the nav overlay")
	}

	model, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m = model.(AppModel)
	if cmd != nil {
		t.Error("moving the overlay cursor should not emit a command")
	}

	model, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = model.(AppModel)
	if cmd == nil {
		t.Fatal("enter must emit a tab selection")
	}
	sel, ok := cmd().(router.SelectTabMsg)
	if !ok {
		t.Fatalf("enter produced %T, want SelectTabMsg", cmd())
	}
	if sel.Tab != router.TabSubjects {
		t.Errorf("selected %v, want subjects", sel.Tab)
	}

	m = drive(t, m, sel)
	if m.navShowing {
		t.Error("selecting a tab must dismiss the overlay")
	}
	if got := m.tabs.Active(); got != router.TabSubjects {
		t.Errorf("active = %v, want subjects", got)
	}
}

func TestNavOverlay_EscCloses(t *testing.T) {
	m, _ := mainStageApp(t)

	m = drive(t, m, tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.navShowing {
		t.Error("esc must close the nav overlay")
	}
	if got := m.tabs.Active(); got != router.TabHome {
		t.Errorf("active = %v, want home unchanged", got)
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m, _ := restoredApp(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c produced %T, want QuitMsg", cmd())
	}
}
