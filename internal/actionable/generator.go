// Package actionable turns metrics into text cards through ordered
// condition→template rules.
package actionable

// Rule produces an item from subject when its condition holds.
type Rule[S, T any] struct {
	Name string
	When func(S) bool
	Then func(S) T
}

// Fire evaluates rules in order and collects the items of every rule whose
// condition holds. When none fires the result is the single fallback item,
// so callers never receive an empty list.
func Fire[S, T any](rules []Rule[S, T], subject S, fallback T) []T {
	out := Collect(rules, subject)
	if len(out) == 0 {
		return []T{fallback}
	}
	return out
}

// Collect is Fire without a fallback; the result may be empty.
func Collect[S, T any](rules []Rule[S, T], subject S) []T {
	out := make([]T, 0, len(rules))
	for _, r := range rules {
		if r.When == nil || r.Then == nil {
			continue
		}
		if r.When(subject) {
			out = append(out, r.Then(subject))
		}
	}
	return out
}

// Text is a rule whose item is a fixed string.
func Text[S any](name string, when func(S) bool, text string) Rule[S, string] {
	return Rule[S, string]{
		Name: name,
		When: when,
		Then: func(S) string { return text },
	}
}

// Names lists the rules that fire for subject, in order. Useful for logs.
func Names[S, T any](rules []Rule[S, T], subject S) []string {
	var out []string
	for _, r := range rules {
		if r.When != nil && r.When(subject) {
			out = append(out, r.Name)
		}
	}
	return out
}
