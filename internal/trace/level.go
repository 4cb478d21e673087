package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // record into the ring only, dump on failure
	LevelPhase        // driver and pass spans
	LevelDetail       // plus per-file spans
	LevelDebug        // plus point events
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPhase:
		return "phase"
	case LevelDetail:
		return "detail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel accepts off|error|phase|detail|debug in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "phase":
		return LevelPhase, nil
	case "detail":
		return LevelDetail, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level %q (expected off|error|phase|detail|debug)", s)
	}
}

// ShouldEmit reports whether an event of kind k in scope s passes level l.
func (l Level) ShouldEmit(s Scope, k Kind) bool {
	switch l {
	case LevelError:
		// ring-only mode keeps everything a dump could need
		return s <= ScopeModule && k != KindPoint
	case LevelPhase:
		return s <= ScopePass && k != KindPoint
	case LevelDetail:
		return s <= ScopeModule && k != KindPoint
	case LevelDebug:
		return true
	default:
		return false
	}
}
