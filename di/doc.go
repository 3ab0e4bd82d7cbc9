// Package di provides a small, type-keyed service locator for Go.
//
// Components register a factory for a type; other components resolve a new
// instance of that type later without knowing how it is built:
//
//	reg := di.NewRegistry()
//
//	di.Register(reg, func() Clock { return SystemClock{} })
//	di.RegisterWithArg(reg, func(dsn string) *DB { return OpenDB(dsn) })
//
//	clock, ok := di.Resolve[Clock](reg)
//	db, ok := di.ResolveWith[*DB](reg, "postgres://prod")
//
// What it is
//
//   - Types are keyed by their Go type (see Key). Generic functions tie a
//     factory's return type to the type you ask for.
//   - Every resolve runs the factory again. There are no singleton or scoped
//     lifetimes; if you want one shared value, register a factory that
//     returns it.
//   - Factories take zero or one argument. The argument is passed through
//     the resolve call, so concurrent resolves never see each other's
//     arguments.
//   - Registering a type again replaces the previous factory.
//
// What it is not
//
// There is no dependency graph, no cycle detection, no reflection-based field
// injection and no lifecycle management. Wiring stays explicit in your
// composition root (main/bootstrap).
//
// Absence and misuse
//
// Resolving an unregistered type is an expected outcome and returns ok=false.
// Resolving a one-argument factory without an argument is a wiring bug and
// panics with *MissingArgumentError. TryResolve reports every failure as a
// typed error instead, including panics raised by factories.
//
// Injection helpers
//
// Inject resolves at the point of declaration and keeps an optional value
// (Injected). Build, Resolving and Optionally wire dependencies into a value
// under construction:
//
//	svc, err := di.Build(NewReportService,
//		di.Resolving(reg, func(s *ReportService, db *DB) { s.db = db }, dsn),
//		di.Optionally(reg, func(s *ReportService, c Cache) { s.cache = c }),
//	)
//
// Default registry
//
// Default returns a process-wide registry for hosts that want one global
// table. SetDefault swaps it (and returns a restore func) so tests can install
// their own.
//
// Import
//
//	"github.com/sghaida/locator/di"
package di
