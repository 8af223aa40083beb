package rules

// Kind is a diagnostic payload: it names its rule and renders its message.
type Kind interface {
	Rule() Rule
	Message() string
}

// Autofixable is implemented by kinds that can carry a fix. FixTitle is the
// short imperative label shown next to the fix ("Add period").
type Autofixable interface {
	Kind
	FixTitle() string
}

// Fixable reports whether k can carry a fix.
func Fixable(k Kind) bool {
	a, ok := k.(Autofixable)
	return ok && a.FixTitle() != ""
}

// Commit returns the fix title of k, if it has one.
func Commit(k Kind) (string, bool) {
	a, ok := k.(Autofixable)
	if !ok {
		return "", false
	}
	title := a.FixTitle()
	return title, title != ""
}
