package profile

// Stage is the top-level screen the application should show. It is a
// pure derivation of Store state and carries no state of its own.
type Stage int

const (
	// StageLoading: Restore has not completed yet.
	StageLoading Stage = iota
	// StageLogin: restore finished with no profile.
	StageLogin
	// StageOnboarding: profile present, academic fields incomplete.
	StageOnboarding
	// StageMain: onboarded profile, show the main shell.
	StageMain
)

// Stage derives the current top-level screen from Store state.
func (s *Store) Stage() Stage {
	switch {
	case !s.restored:
		return StageLoading
	case s.current == nil:
		return StageLogin
	case !s.current.HasCompletedOnboarding:
		return StageOnboarding
	default:
		return StageMain
	}
}

func (st Stage) String() string {
	switch st {
	case StageLoading:
		return "loading"
	case StageLogin:
		return "login"
	case StageOnboarding:
		return "onboarding"
	case StageMain:
		return "main"
	}
	return "unknown"
}
