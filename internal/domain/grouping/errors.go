package grouping

import (
	"fmt"

	"github.com/okian/rinkrank/internal/domain/model"
)

// Error localizes a grouping failure to the superevent or event it
// belongs to, so the engine can report it without failing the run.
type Error struct {
	Year  int
	Kind  model.Kind
	Event string
	Err   error
}

func (e *Error) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("grouping %s: %v", e.Event, e.Err)
	}
	return fmt.Sprintf("grouping %d %s: %v", e.Year, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
