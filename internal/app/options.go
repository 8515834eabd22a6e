package service

import (
	"github.com/okian/rinkrank/internal/adapters/catalog"
	"github.com/okian/rinkrank/pkg/logger"
)

// Option configures the Service.
type Option func(*Service)

// WithCatalogPath sets the catalog file the service loads on Start.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.catalogPath = path
		}
	}
}

// WithLoader injects a catalog loader directly, bypassing path
// detection. Later options win.
func WithLoader(l catalog.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithWorkers sets the number of concurrent year workers.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithOfficialFrom sets the first year scored from published points
// instead of the synthetic formula.
func WithOfficialFrom(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.officialFrom = year
		}
	}
}

// WithPreOlympicFold toggles folding the championship preceding an
// Olympic year into the Olympic superevent.
func WithPreOlympicFold(enabled bool) Option {
	return func(s *Service) {
		s.foldPreOlympic = enabled
	}
}

// WithCountOther counts regional and invitational events against the
// championship slots of the rating window.
func WithCountOther(enabled bool) Option {
	return func(s *Service) {
		s.countOther = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
