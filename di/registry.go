package di

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry maps a type Key to the factory registered for it.
//
// It is intentionally:
//   - transient: every resolve runs the factory again, nothing is cached
//   - flat: one factory per type, last registration wins
//   - explicit: factories receive their argument through the call, never
//     through state kept on the entry
//
// Expected usage:
//
//	reg := di.NewRegistry()
//	di.Register(reg, func() Widget { return NewGear(8) })
//	di.RegisterWithArg(reg, func(size int) *Gear { return NewGear(size) })
//
//	w, ok := di.Resolve[Widget](reg)
//	g, ok := di.ResolveWith[*Gear](reg, 12)
//
// All methods and functions are safe for concurrent use. Factories run
// outside the registry lock, so a factory may resolve its own dependencies
// from the same registry.
//
// The zero value is an empty registry ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key]entry
	log     *zap.Logger
}

// entry is immutable once stored.
type entry struct {
	key Key
	// arg is the parameter type of a one-argument factory, nil otherwise.
	arg    reflect.Type
	invoke func(args []any) (any, error)
}

func (e entry) arity() int {
	if e.arg == nil {
		return 0
	}
	return 1
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger makes the registry log registrations and resolve misses at
// debug level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{entries: make(map[Key]entry)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var nopLogger = zap.NewNop()

func (r *Registry) logger() *zap.Logger {
	if r.log == nil {
		return nopLogger
	}
	return r.log
}

func (r *Registry) store(e entry) {
	r.mu.Lock()
	if r.entries == nil {
		r.entries = make(map[Key]entry)
	}
	_, replaced := r.entries[e.key]
	r.entries[e.key] = e
	r.mu.Unlock()

	r.logger().Debug("registered",
		zap.Stringer("key", e.key),
		zap.Int("arity", e.arity()),
		zap.Bool("replaced", replaced),
	)
}

func (r *Registry) lookup(key Key) (entry, bool) {
	if r == nil {
		return entry{}, false
	}
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	return e, ok
}

// Register stores a zero-argument factory for T, replacing any factory
// previously registered for T.
//
// It panics with ErrNilFactory if factory is nil.
func Register[T any](r *Registry, factory func() T) {
	if factory == nil {
		panic(ErrNilFactory)
	}
	r.store(entry{
		key: KeyOf[T](),
		invoke: func([]any) (any, error) {
			return factory(), nil
		},
	})
}

// RegisterWithArg stores a one-argument factory for T, replacing any factory
// previously registered for T. The argument type A is inferred from factory.
//
// The factory consumes the first argument passed to ResolveWith; further
// arguments are ignored. A nil argument is accepted when A is a pointer,
// interface, map, slice, func or chan type and is passed as A's zero value.
//
// It panics with ErrNilFactory if factory is nil.
func RegisterWithArg[T, A any](r *Registry, factory func(A) T) {
	if factory == nil {
		panic(ErrNilFactory)
	}
	key := KeyOf[T]()
	argType := reflect.TypeFor[A]()

	r.store(entry{
		key: key,
		arg: argType,
		invoke: func(args []any) (any, error) {
			if len(args) == 0 {
				return nil, &MissingArgumentError{Key: key, Want: argType.String()}
			}
			a, ok := args[0].(A)
			if !ok && (args[0] != nil || !nilable(argType)) {
				return nil, &ArgumentTypeError{Key: key, Want: argType.String(), Got: typeString(args[0])}
			}
			return factory(a), nil
		},
	})
}

// Resolve builds a new T with the factory registered for it.
//
// ok is false if T is not registered or the factory result is not a T (a nil
// interface). Resolve panics with *MissingArgumentError if T was registered
// with RegisterWithArg; use ResolveWith for those.
func Resolve[T any](r *Registry) (T, bool) {
	return ResolveWith[T](r)
}

// ResolveWith builds a new T, passing args to the registered factory.
//
// A one-argument factory consumes args[0]; a zero-argument factory ignores
// args. ok is false if T is not registered, args[0] does not fit the factory
// parameter, or the result is not a T. ResolveWith panics with
// *MissingArgumentError when a one-argument factory gets no arguments.
func ResolveWith[T any](r *Registry, args ...any) (T, bool) {
	v, err := resolve[T](r, args)
	if err != nil {
		var missing *MissingArgumentError
		if errors.As(err, &missing) {
			panic(missing)
		}
		return v, false
	}
	return v, true
}

// TryResolve is ResolveWith with typed errors instead of a bool.
//
// It returns:
//   - *NotRegisteredError if T is not registered
//   - *ArgumentTypeError if args[0] does not fit the factory parameter
//   - *MissingArgumentError if a one-argument factory gets no arguments
//   - *WrongTypeError if the factory result is not a T
//   - *FactoryPanicError if the factory panics
func TryResolve[T any](r *Registry, args ...any) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			v = zero
			err = &FactoryPanicError{Key: KeyOf[T](), Value: rec}
		}
	}()
	return resolve[T](r, args)
}

// MustResolve returns the TryResolve value or panics with its error.
// Useful in composition roots where missing wiring should fail fast.
func MustResolve[T any](r *Registry, args ...any) T {
	v, err := TryResolve[T](r, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func resolve[T any](r *Registry, args []any) (T, error) {
	var zero T
	key := KeyOf[T]()

	e, ok := r.lookup(key)
	if !ok {
		if r != nil {
			r.logger().Debug("resolve miss", zap.Stringer("key", key))
		}
		return zero, &NotRegisteredError{Key: key}
	}

	raw, err := e.invoke(args)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, &WrongTypeError{Key: key, Got: typeString(raw)}
	}
	return v, nil
}

// IsRegistered reports whether a factory is registered for T.
func IsRegistered[T any](r *Registry) bool {
	_, ok := r.lookup(KeyOf[T]())
	return ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns the registered keys sorted by their string form.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

// Binding describes one registration for diagnostics.
type Binding struct {
	Key Key

	// Arg is the factory parameter type; the zero Key for zero-argument factories.
	Arg Key
}

// Arity returns 0 for zero-argument factories and 1 otherwise.
func (b Binding) Arity() int {
	if b.Arg.t == nil {
		return 0
	}
	return 1
}

// Describe returns a snapshot of all registrations, sorted like Keys.
func (r *Registry) Describe() []Binding {
	keys := r.Keys()
	out := make([]Binding, 0, len(keys))

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, k := range keys {
		e, ok := r.entries[k]
		if !ok {
			continue
		}
		out = append(out, Binding{Key: k, Arg: Key{t: e.arg}})
	}
	return out
}
