package di

import "sync/atomic"

// def is the process-wide default registry. Readers load it without locking;
// SetDefault swaps it atomically.
var def atomic.Pointer[Registry]

func init() {
	def.Store(NewRegistry())
}

// Default returns the process-wide default registry.
//
// Prefer passing a *Registry explicitly from your composition root; the
// default exists for hosts that want a single global table.
func Default() *Registry {
	return def.Load()
}

// SetDefault replaces the process-wide default registry and returns a
// function that restores the previous one. A nil r is ignored.
//
// Tests typically do:
//
//	restore := di.SetDefault(di.NewRegistry())
//	defer restore()
func SetDefault(r *Registry) (restore func()) {
	if r == nil {
		return func() {}
	}
	prev := def.Swap(r)
	return func() { def.Store(prev) }
}
