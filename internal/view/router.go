package view

import "sync"

// Router holds the current view, the single source of visible UI state.
type Router struct {
	mu        sync.Mutex
	current   ViewID
	presenter Presenter
}

func NewRouter(presenter Presenter) *Router {
	return &Router{presenter: presenter}
}

// Show makes v the current view and synchronizes panel, title, and
// navigation in one step. Idempotent: showing the current view again
// re-applies the same frame.
func (r *Router) Show(v ViewID) {
	r.mu.Lock()
	r.current = v
	r.mu.Unlock()

	r.presenter.ShowFrame(FrameFor(v))
}

// Current returns the view last passed to Show. Loaders check it before
// rendering a response that may have arrived after the user navigated away.
func (r *Router) Current() ViewID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
