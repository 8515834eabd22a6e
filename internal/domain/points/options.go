package points

// Option applies a configuration option to the Assigner.
type Option func(*Assigner)

// WithOfficialFrom moves the first year scored from published tables.
// Years before it are scored synthetically. Non-positive years are
// ignored.
func WithOfficialFrom(year int) Option {
	return func(a *Assigner) {
		if year > 0 {
			a.officialFrom = year
		}
	}
}

// WithRule appends a rule covering the inclusive year range. A zero
// upper bound leaves the range open-ended. Supplying any rule replaces
// the default schedule entirely. Nil rules and inverted ranges are
// ignored.
func WithRule(from, to int, rule Rule) Option {
	return func(a *Assigner) {
		if rule == nil || from < 1 {
			return
		}
		if to != 0 && to < from {
			return
		}
		a.spans = append(a.spans, span{from: from, to: to, rule: rule})
	}
}
