package host

import "time"

// SetClock replaces the environment source and clock of h.
func (h *Local) SetClock(environ func() []string, now func() time.Time) {
	h.environ = environ
	h.now = now
}
