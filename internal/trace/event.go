package trace

import "time"

// Kind is the type of an event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
	KindHeartbeat
	// KindError is a recovered failure.
	KindError
)

var kindNames = [...]string{"", "begin", "end", "point", "heartbeat", "error"}

func (k Kind) String() string {
	if k != 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeRun Scope = iota + 1
	ScopeFile
	ScopeDefinition
	ScopeCheck
)

var scopeNames = [...]string{"", "run", "file", "definition", "check"}

func (s Scope) String() string {
	if s != 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Attr is one key/value pair attached to a span end. Attrs keep the order
// they were added in.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // 0 для точечных событий
	ParentID uint64
	Name     string // "run", "file:pkg/m.py", "def:Foo.bar", "pydocstyle.D205"
	Detail   string
	Attrs    []Attr
	Elapsed  time.Duration // только у KindEnd
}

// Attr returns the value of key, or "".
func (e *Event) Attr(key string) string {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}
