package registry

import "fmt"

// Guard keeps a scope open until Exit is called. The usual form is
//
//	defer r.Scope("parse").Exit()
//
// which closes the scope on every path out of the function, panics included.
type Guard struct {
	r      *Registry
	h      Handle
	exited bool
}

// Scope enters name and returns the guard that will exit it.
func (r *Registry) Scope(name string) *Guard {
	return &Guard{r: r, h: r.Enter(name)}
}

// Exit closes the scope. Calling it twice is a contract violation. Exit on a
// nil guard does nothing.
func (g *Guard) Exit() {
	if g == nil {
		return
	}
	if g.exited {
		g.r.violate(fmt.Errorf("registry: %w (scope %q)", ErrDoubleExit, g.h.name))
	}
	g.exited = true
	g.r.Exit(g.h)
}

// Do runs fn inside a scope named name. The scope is closed however fn
// returns.
func (r *Registry) Do(name string, fn func()) {
	defer r.Scope(name).Exit()
	fn()
}
