package di

// Injected holds the result of a resolve performed where a dependency is
// declared. It is the optional value an owner keeps when the dependency may
// legitimately be absent.
//
//	type Handler struct {
//		cache di.Injected[Cache]
//	}
//
//	h := Handler{cache: di.Inject[Cache](reg)}
//	if c, ok := h.cache.Get(); ok { ... }
type Injected[T any] struct {
	val T
	ok  bool
}

// Inject resolves T from r (passing args to its factory) and wraps the result.
//
// Like ResolveWith, it panics with *MissingArgumentError when T needs an
// argument and none is given.
func Inject[T any](r *Registry, args ...any) Injected[T] {
	v, ok := ResolveWith[T](r, args...)
	return Injected[T]{val: v, ok: ok}
}

// Get returns the value and whether it was resolved.
func (i Injected[T]) Get() (T, bool) { return i.val, i.ok }

// Present reports whether the value was resolved.
func (i Injected[T]) Present() bool { return i.ok }

// OrElse returns the value, or def when it was not resolved.
func (i Injected[T]) OrElse(def T) T {
	if !i.ok {
		return def
	}
	return i.val
}

// MustGet returns the value or panics with *NotRegisteredError.
func (i Injected[T]) MustGet() T {
	if !i.ok {
		panic(&NotRegisteredError{Key: KeyOf[T]()})
	}
	return i.val
}

// Injector mutates a target under construction and returns an error if
// wiring fails.
//
// Injectors are applied by Build.
type Injector[T any] func(target *T) error

// Build constructs a target with ctor and applies injectors in order.
//
// It stops at the first error and returns the partially wired target with
// that error. Nil injectors are skipped. A nil ctor, or a ctor returning nil,
// yields ErrNilTarget.
func Build[T any](ctor func() *T, injectors ...Injector[T]) (*T, error) {
	if ctor == nil {
		return nil, ErrNilTarget
	}
	target := ctor()
	if target == nil {
		return nil, ErrNilTarget
	}
	for _, inj := range injectors {
		if inj == nil {
			continue
		}
		if err := inj(target); err != nil {
			return target, err
		}
	}
	return target, nil
}

// Resolving builds an Injector for a required dependency D.
//
// The injector resolves D from r with args (see TryResolve) and calls bind to
// attach it to the target. It fails if:
//   - the target is nil (ErrNilTarget)
//   - bind is nil (NilBindError)
//   - D cannot be resolved (the TryResolve error)
func Resolving[T, D any](r *Registry, bind func(target *T, dependency D), args ...any) Injector[T] {
	return func(target *T) error {
		if target == nil {
			return ErrNilTarget
		}
		if bind == nil {
			return &NilBindError{Key: KeyOf[D]()}
		}
		d, err := TryResolve[D](r, args...)
		if err != nil {
			return err
		}
		bind(target, d)
		return nil
	}
}

// Optionally is like Resolving, but an unregistered D leaves the target
// untouched instead of failing. Other resolve errors are still returned.
func Optionally[T, D any](r *Registry, bind func(target *T, dependency D), args ...any) Injector[T] {
	return func(target *T) error {
		if target == nil {
			return ErrNilTarget
		}
		if bind == nil {
			return &NilBindError{Key: KeyOf[D]()}
		}
		if !IsRegistered[D](r) {
			return nil
		}
		d, err := TryResolve[D](r, args...)
		if err != nil {
			return err
		}
		bind(target, d)
		return nil
	}
}
