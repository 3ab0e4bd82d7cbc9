// Package locator is a small, type-keyed service locator for Go.
//
// Components register a construction recipe (a factory) for a type, and other
// components later resolve a fresh instance of that type without knowing how
// it is built. Factories may take one runtime argument supplied at resolve
// time.
//
// The goal is to keep wiring explicit (usually in your composition root / main),
// keep the registry instance injectable (a swappable process default exists
// for hosts that want it), and keep the surface area intentionally small.
//
// See subpackages:
//   - di: the registry, typed errors and injection helpers
//   - examples/widgets: a runnable composition root (config, logging, wiring)
package locator
