package tabs

import "caseview/pkg/models"

// Resolver owns the active result tab. It reconciles the selection against
// the set of tabs available for the current result, restores the persisted
// preference on first mount, and persists every change synchronously.
//
// Keyboard movement (Next/Prev/First/Last) operates only over the available
// set and activates the tab it lands on; the caller is responsible for
// moving UI focus to the selected tab's control afterwards.
type Resolver struct {
	store     PreferenceStore
	available []Tab
	active    Tab
	mounted   bool
}

// NewResolver creates a resolver backed by the given preference store.
func NewResolver(store PreferenceStore) *Resolver {
	return &Resolver{store: store}
}

// Init computes the available set for the first result of a display
// session and selects the initial tab: the persisted preference when it
// names an available tab, otherwise the first available tab, otherwise the
// configuration sentinel. The preference is read exactly once per mount.
func (r *Resolver) Init(result *models.CaseResult) Tab {
	r.available = Available(result)
	r.mounted = true

	preferred, err := r.store.Get(PreferenceKey)
	if err == nil && r.member(Tab(preferred)) {
		r.active = Tab(preferred)
		return r.active
	}

	// Stale or missing preference: fall back silently and persist the
	// corrected selection.
	r.active = r.fallback()
	r.persist()
	return r.active
}

// Reconcile recomputes the available set for a changed result. The caller
// invokes it on result identity change only, never on unrelated renders.
// If the active tab is no longer available it is reset by the same
// fallback rule as Init and the correction is persisted.
func (r *Resolver) Reconcile(result *models.CaseResult) Tab {
	if !r.mounted {
		return r.Init(result)
	}

	r.available = Available(result)
	if r.member(r.active) {
		return r.active
	}

	r.active = r.fallback()
	r.persist()
	return r.active
}

// Activate selects the given tab if it is currently available, persisting
// the change. Activating the already-active tab is a no-op so repeated
// Enter/Space presses do not rewrite the preference.
func (r *Resolver) Activate(tab Tab) Tab {
	if tab == r.active || !r.member(tab) {
		return r.active
	}
	r.active = tab
	r.persist()
	return r.active
}

// Next moves to the next available tab, wrapping to the first after the
// last.
func (r *Resolver) Next() Tab {
	return r.move(1)
}

// Prev moves to the previous available tab, wrapping to the last before
// the first.
func (r *Resolver) Prev() Tab {
	return r.move(-1)
}

// First moves to the first available tab.
func (r *Resolver) First() Tab {
	if len(r.available) == 0 {
		return r.active
	}
	return r.Activate(r.available[0])
}

// Last moves to the last available tab.
func (r *Resolver) Last() Tab {
	if len(r.available) == 0 {
		return r.active
	}
	return r.Activate(r.available[len(r.available)-1])
}

// Active returns the currently selected tab.
func (r *Resolver) Active() Tab {
	return r.active
}

// Available returns the tab set computed for the current result, in
// declared order.
func (r *Resolver) Available() []Tab {
	out := make([]Tab, len(r.available))
	copy(out, r.available)
	return out
}

func (r *Resolver) move(delta int) Tab {
	n := len(r.available)
	if n == 0 {
		return r.active
	}
	idx := r.indexOf(r.active)
	if idx < 0 {
		idx = 0
	}
	return r.Activate(r.available[((idx+delta)%n+n)%n])
}

func (r *Resolver) indexOf(tab Tab) int {
	for i, t := range r.available {
		if t == tab {
			return i
		}
	}
	return -1
}

func (r *Resolver) member(tab Tab) bool {
	return r.indexOf(tab) >= 0
}

// fallback is the shared selection rule: first available tab, else the
// configuration sentinel.
func (r *Resolver) fallback() Tab {
	if len(r.available) > 0 {
		return r.available[0]
	}
	return DefaultTab
}

// persist writes the active tab synchronously. Store failures are
// swallowed: losing a preference must never break the view.
func (r *Resolver) persist() {
	_ = r.store.Set(PreferenceKey, string(r.active))
}
