package di

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotRegistered matches NotRegisteredError.
	ErrNotRegistered = errors.New("di: type not registered")

	// ErrWrongType matches WrongTypeError.
	ErrWrongType = errors.New("di: factory result has wrong type")

	// ErrArgumentType matches ArgumentTypeError.
	ErrArgumentType = errors.New("di: argument has wrong type")

	// ErrMissingArgument matches MissingArgumentError.
	//
	// Resolve and ResolveWith panic with a MissingArgumentError instead of
	// returning it: asking a one-argument factory for a value without an
	// argument is a wiring bug, not a runtime condition.
	ErrMissingArgument = errors.New("di: factory requires an argument")

	// ErrFactoryPanic matches FactoryPanicError.
	ErrFactoryPanic = errors.New("di: panic in factory")

	// ErrNilFactory is the panic value of Register / RegisterWithArg when
	// called with a nil factory.
	ErrNilFactory = errors.New("di: nil factory")

	// ErrNilTarget is returned when an injector is applied to a nil target
	// or Build is given a nil constructor (or one returning nil).
	ErrNilTarget = errors.New("di: nil target")

	// ErrNilBind matches NilBindError.
	ErrNilBind = errors.New("di: nil bind function")
)

// NotRegisteredError is returned when no factory is registered for Key.
type NotRegisteredError struct{ Key Key }

// Error implements the error interface.
func (e *NotRegisteredError) Error() string {
	// Example: di: type "*widgets.Gear" not registered
	return "di: type " + strconv.Quote(e.Key.String()) + " not registered"
}

// Is reports whether target is ErrNotRegistered.
func (e *NotRegisteredError) Is(target error) bool { return target == ErrNotRegistered }

// WrongTypeError is returned when the factory result cannot be asserted to
// the requested type. With the generic API this only happens when a factory
// for an interface type returns a nil interface.
type WrongTypeError struct {
	Key Key

	// Got is the dynamic type of the factory result ("<nil>" for nil).
	Got string
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	// Example: di: factory for "widgets.Widget" returned <nil>
	return "di: factory for " + strconv.Quote(e.Key.String()) + " returned " + e.Got
}

// Is reports whether target is ErrWrongType.
func (e *WrongTypeError) Is(target error) bool { return target == ErrWrongType }

// ArgumentTypeError is returned when the argument passed to a one-argument
// factory is not assignable to the factory's parameter type.
type ArgumentTypeError struct {
	Key Key

	// Want is the factory's parameter type; Got the supplied dynamic type.
	Want string
	Got  string
}

// Error implements the error interface.
func (e *ArgumentTypeError) Error() string {
	// Example: di: factory for "widgets.Widget" wants int argument, got string
	return "di: factory for " + strconv.Quote(e.Key.String()) + " wants " + e.Want + " argument, got " + e.Got
}

// Is reports whether target is ErrArgumentType.
func (e *ArgumentTypeError) Is(target error) bool { return target == ErrArgumentType }

// MissingArgumentError reports a one-argument factory invoked without an
// argument.
type MissingArgumentError struct {
	Key  Key
	Want string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	// Example: di: factory for "widgets.Widget" requires a int argument
	return "di: factory for " + strconv.Quote(e.Key.String()) + " requires a " + e.Want + " argument"
}

// Is reports whether target is ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// FactoryPanicError wraps a panic recovered from a user factory by TryResolve.
type FactoryPanicError struct {
	Key   Key
	Value any
}

// Error implements the error interface.
func (e *FactoryPanicError) Error() string {
	return "di: panic in factory for " + strconv.Quote(e.Key.String()) + ": " + fmt.Sprint(e.Value)
}

// Is reports whether target is ErrFactoryPanic.
func (e *FactoryPanicError) Is(target error) bool { return target == ErrFactoryPanic }

// Unwrap returns the panic value when it is an error.
func (e *FactoryPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NilBindError indicates a nil bind function for the dependency Key.
type NilBindError struct{ Key Key }

// Error implements the error interface.
func (e *NilBindError) Error() string {
	return "di: nil bind function for " + strconv.Quote(e.Key.String())
}

// Is reports whether target is ErrNilBind.
func (e *NilBindError) Is(target error) bool { return target == ErrNilBind }

func typeString(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
