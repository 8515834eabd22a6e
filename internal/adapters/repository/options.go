package repository

// Option applies a configuration option to the SeriesStore.
type Option func(*SeriesStore)

// WithYearsHint presizes the store for the expected number of
// evaluation years. Non-positive hints are ignored.
func WithYearsHint(n int) Option {
	return func(s *SeriesStore) {
		if n > 0 {
			s.yearsHint = n
		}
	}
}
