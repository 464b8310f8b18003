// Package randomdata generates random test data: numbers, strings,
// timestamps, IP addresses, person names, and trivia facts.
//
// A Randomizer is seedable for reproducible runs and offers a Unique variant
// of every generator that retries until a value it has not produced before
// appears:
//
//	r := randomdata.New(randomdata.WithSeed(42))
//
//	port := r.Int(1024, 65535)
//	host := r.UniqueIPv4() // never repeats across calls
//	user := r.Name()
//
// Unique generators give up after an internal retry limit, log a warning, and
// return the (repeated) last candidate; with narrow value ranges there may
// simply be no unique value left.
//
// A Randomizer is not safe for concurrent use; give each goroutine its own.
package randomdata
