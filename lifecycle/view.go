package lifecycle

import "github.com/odvcencio/fuzzy-state/state"

// View couples a component with a subscription scope disposed on unmount.
// Embed it in component structs and pass Scope() to subscriptions made in
// Mount; they are torn down automatically in Unmount. A view may be
// remounted: each Mount opens a fresh scope.
type View struct {
	scope *state.Scope
}

// Scope returns the scope of the current mount. Before the first Mount it
// returns a disposed scope, so early subscriptions are torn down at once.
func (v *View) Scope() *state.Scope {
	if v == nil || v.scope == nil {
		dead := state.NewScope()
		dead.Dispose()
		return dead
	}
	return v.scope
}

// Mount opens a fresh scope.
func (v *View) Mount() {
	if v == nil {
		return
	}
	if v.scope != nil {
		v.scope.Dispose()
	}
	v.scope = state.NewScope()
}

// Unmount disposes the current scope.
func (v *View) Unmount() {
	if v == nil || v.scope == nil {
		return
	}
	v.scope.Dispose()
}
