package profile

// Level is a student's academic level. Five ordered values.
type Level string

const (
	Level100 Level = "100 Level"
	Level200 Level = "200 Level"
	Level300 Level = "300 Level"
	Level400 Level = "400 Level"
	Level500 Level = "500 Level / Final Year"
)

// Levels lists all levels in ascending order.
var Levels = []Level{Level100, Level200, Level300, Level400, Level500}

// UserProfile is the single client-local user record. The academic
// fields are empty until onboarding completes.
//
// Invariant: HasCompletedOnboarding is true iff University, Course and
// Level are all set. The Store maintains it on every mutation.
type UserProfile struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	University             string `json:"university,omitempty"`
	Course                 string `json:"course,omitempty"`
	Level                  Level  `json:"level,omitempty"`
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
}

// FirstName returns the first whitespace-separated word of Name.
func (p *UserProfile) FirstName() string {
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}

// onboardingComplete reports whether all academic fields are present.
func (p *UserProfile) onboardingComplete() bool {
	return p.University != "" && p.Course != "" && p.Level != ""
}

// Changes is a partial update applied by Store.UpdateProfile.
// Nil fields are left untouched.
type Changes struct {
	University *string
	Course     *string
	Level      *Level
}
