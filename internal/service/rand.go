package service

// RandSource supplies uniform draws in [0, 1). Every random draw in the
// system (share counts, cost factors, perturbations, daily-change deltas)
// goes through an injected RandSource rather than a package-level generator,
// so builds and ticks are reproducible under test. *math/rand.Rand satisfies
// the interface.
//
// A RandSource is not required to be safe for concurrent use; callers must
// serialize draws. In this application all draws happen either during startup
// wiring or under the portfolio service's write lock.
type RandSource interface {
	Float64() float64
}
