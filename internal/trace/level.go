package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelPhase
	LevelDetail
	LevelDebug
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// deepest scope written at each level; LevelError writes no scoped events
var levelDepth = [...]Scope{LevelPhase: ScopeRun, LevelDetail: ScopeFile, LevelDebug: ScopeCheck}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by String, in any case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(s)
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether an event of kind at scope passes the level.
// Errors pass at every level above off, heartbeats whenever tracing is on.
func (l Level) Allows(kind Kind, scope Scope) bool {
	switch {
	case l == LevelOff:
		return false
	case kind == KindError || kind == KindHeartbeat:
		return true
	case int(l) >= len(levelDepth):
		return false
	}
	return scope != 0 && scope <= levelDepth[l]
}
