package cataloggen

// Option configures a Generator.
type Option func(*Generator)

// WithSeed pins the faker seed so runs reproduce.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithTeams sets the registry size. Values outside [4, 64] are
// ignored; the cap keeps identity draws inside the faker's country
// pool.
func WithTeams(n int) Option {
	return func(g *Generator) {
		if n >= 4 && n <= maxTeams {
			g.teams = n
		}
	}
}

// WithSpan sets the inclusive season range.
func WithSpan(from, to int) Option {
	return func(g *Generator) {
		if from > 0 && to >= from {
			g.from, g.to = from, to
		}
	}
}

// WithPointsFrom sets the first season whose rows carry official
// points.
func WithPointsFrom(year int) Option {
	return func(g *Generator) {
		if year > 0 {
			g.pointsFrom = year
		}
	}
}
