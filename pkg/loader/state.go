package loader

import "github.com/linoteia/portfolio/pkg/i18n"

// Status classifies how a Select call resolved.
type Status int

const (
	// StatusUnchanged means the code was already applied; nothing happened.
	StatusUnchanged Status = iota
	// StatusRejected means the content source answered with a non-success
	// status. The request was abandoned and the page left as it was.
	StatusRejected
	// StatusScheduled means fetched content is waiting for the fade delay.
	StatusScheduled
	// StatusFallback means the request failed in transport and the built-in
	// empty content is waiting for the fade delay instead.
	StatusFallback
	// StatusSuperseded means a newer Select cancelled this fetch before it
	// finished. Nothing is scheduled.
	StatusSuperseded
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusRejected:
		return "rejected"
	case StatusScheduled:
		return "scheduled"
	case StatusFallback:
		return "fallback"
	case StatusSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// Outcome is the result of Select. A scheduled apply may still be discarded
// later if a newer Select supersedes it.
type Outcome struct {
	Status Status
	Code   i18n.Code
	Seq    uint64
	Err    error
}

// Phase is what the most recent request is doing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseApplying
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseApplying:
		return "applying"
	default:
		return "idle"
	}
}

// State is a point-in-time copy of the loader.
type State struct {
	LastApplied i18n.Code
	Sequence    uint64
	Visible     bool
	Phase       Phase
	PhaseCode   i18n.Code
	PhaseSeq    uint64
}
