package app

// WithEnviron replaces the source of the controlling process environment.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}
