package theme

// Theme is the value of the page's data-theme attribute.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Parse returns the theme named by s.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	default:
		return "", false
	}
}

// Toggled returns the opposite theme. Anything that is not light counts as dark.
func (t Theme) Toggled() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Phase is where the most recent toggle chain is.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

func (p Phase) String() string {
	switch p {
	case PhaseFadingOut:
		return "fading_out"
	case PhaseFadingIn:
		return "fading_in"
	default:
		return "idle"
	}
}

// State is a point-in-time copy of the toggle.
type State struct {
	Theme    Theme
	Phase    Phase
	InFlight int
}
