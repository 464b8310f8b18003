package randomdata

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/netip"
	"strings"
	"time"
)

// iterLimit bounds how often a unique generator retries before giving up.
const iterLimit = 1000

// Randomizer generates random test data from a seedable source.
// Not safe for concurrent use.
type Randomizer struct {
	rnd     *rand.Rand
	uniques map[string]map[any]struct{}
	logger  *slog.Logger
}

// Option configures a Randomizer.
type Option func(*randomizerConfig)

type randomizerConfig struct {
	seed   uint64
	seeded bool
	logger *slog.Logger
}

// WithSeed makes the generated sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(c *randomizerConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithLogger configures structured logging. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *randomizerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Randomizer. Without WithSeed the sequence differs per run.
func New(opts ...Option) *Randomizer {
	cfg := randomizerConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	src := rand.NewPCG(rand.Uint64(), rand.Uint64())
	if cfg.seeded {
		src = rand.NewPCG(cfg.seed, cfg.seed)
	}

	return &Randomizer{
		rnd:     rand.New(src),
		uniques: make(map[string]map[any]struct{}),
		logger:  cfg.logger,
	}
}

// Int returns a random integer in [min, max]. Panics when min >= max.
func (r *Randomizer) Int(min, max int) int {
	if min >= max {
		panic("randomdata: min must be less than max")
	}
	return min + r.rnd.IntN(max-min+1)
}

// UniqueInt is Int constrained to values not produced by UniqueInt before.
func (r *Randomizer) UniqueInt(min, max int) int {
	return unique(r, "int", func() int { return r.Int(min, max) })
}

// Float returns a random float in [min, max). Panics when min >= max.
func (r *Randomizer) Float(min, max float64) float64 {
	if min >= max {
		panic("randomdata: min must be less than max")
	}
	return min + r.rnd.Float64()*(max-min)
}

// UniqueFloat is Float constrained to values not produced by UniqueFloat
// before.
func (r *Randomizer) UniqueFloat(min, max float64) float64 {
	return unique(r, "float", func() float64 { return r.Float(min, max) })
}

// String returns a random string of the given length. By default the
// characters are drawn from lower case, upper case, digits, and punctuation;
// use the options to restrict or replace the character set.
func (r *Randomizer) String(length int, opts ...StringOption) string {
	charset := buildCharset(opts)

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(charset[r.rnd.IntN(len(charset))])
	}
	return b.String()
}

// UniqueString is String constrained to values not produced by UniqueString
// before.
func (r *Randomizer) UniqueString(length int, opts ...StringOption) string {
	return unique(r, "string", func() string { return r.String(length, opts...) })
}

// Time returns a random instant in [min, max). Panics when min is not before
// max.
func (r *Randomizer) Time(min, max time.Time) time.Time {
	if !min.Before(max) {
		panic("randomdata: min must be before max")
	}
	span := max.Sub(min)
	return min.Add(time.Duration(r.rnd.Int64N(int64(span))))
}

// UniqueTime is Time constrained to values not produced by UniqueTime before.
func (r *Randomizer) UniqueTime(min, max time.Time) time.Time {
	return unique(r, "time", func() time.Time { return r.Time(min, max) })
}

// Bool returns true with the given probability. Panics when the probability
// is outside [0, 1].
func (r *Randomizer) Bool(trueProbability float64) bool {
	if trueProbability < 0 || trueProbability > 1 {
		panic("randomdata: probability must be between 0 and 1")
	}
	return r.rnd.Float64() < trueProbability
}

// IPv4 returns a random IPv4 address in dotted decimal form.
func (r *Randomizer) IPv4() string {
	var octets [4]byte
	for i := range octets {
		octets[i] = byte(r.rnd.UintN(256))
	}
	return netip.AddrFrom4(octets).String()
}

// UniqueIPv4 is IPv4 constrained to addresses not produced by UniqueIPv4
// before.
func (r *Randomizer) UniqueIPv4() string {
	return unique(r, "ipv4", r.IPv4)
}

// IPv6 returns a random IPv6 address in fully expanded form.
func (r *Randomizer) IPv6() string {
	var groups [16]byte
	for i := range groups {
		groups[i] = byte(r.rnd.UintN(256))
	}
	return netip.AddrFrom16(groups).StringExpanded()
}

// UniqueIPv6 is IPv6 constrained to addresses not produced by UniqueIPv6
// before.
func (r *Randomizer) UniqueIPv6() string {
	return unique(r, "ipv6", r.IPv6)
}

// Name returns a random person name.
func (r *Randomizer) Name() string {
	return firstNames[r.rnd.IntN(len(firstNames))] + " " + lastNames[r.rnd.IntN(len(lastNames))]
}

// UniqueName is Name constrained to names not produced by UniqueName before.
func (r *Randomizer) UniqueName() string {
	return unique(r, "name", r.Name)
}

// Fact returns a random trivia fact.
func (r *Randomizer) Fact() string {
	return facts[r.rnd.IntN(len(facts))]
}

// UniqueFact is Fact constrained to facts not produced by UniqueFact before.
func (r *Randomizer) UniqueFact() string {
	return unique(r, "fact", r.Fact)
}

// unique retries gen until it produces a value not seen under key, up to
// iterLimit attempts. When the limit is reached the last candidate is
// returned even though it repeats; narrow ranges may hold no unique value.
func unique[T comparable](r *Randomizer, key string, gen func() T) T {
	seen, ok := r.uniques[key]
	if !ok {
		seen = make(map[any]struct{})
		r.uniques[key] = seen
	}

	var candidate T
	for i := 0; ; i++ {
		candidate = gen()
		if _, dup := seen[candidate]; !dup {
			break
		}
		if i >= iterLimit {
			r.logger.Warn("no unique value found, returning a repeated one",
				slog.String("generator", key), slog.Int("attempts", iterLimit))
			break
		}
	}
	seen[candidate] = struct{}{}
	return candidate
}

// StringOption restricts or replaces the character set used by String.
type StringOption func(*stringConfig)

type stringConfig struct {
	charset string
	noLower bool
	noUpper bool
	noDigit bool
	noPunct bool
}

// WithCharset replaces the default character classes entirely.
func WithCharset(charset string) StringOption {
	return func(c *stringConfig) { c.charset = charset }
}

// WithoutLowercase excludes lower case letters.
func WithoutLowercase() StringOption {
	return func(c *stringConfig) { c.noLower = true }
}

// WithoutUppercase excludes upper case letters.
func WithoutUppercase() StringOption {
	return func(c *stringConfig) { c.noUpper = true }
}

// WithoutDigits excludes digits.
func WithoutDigits() StringOption {
	return func(c *stringConfig) { c.noDigit = true }
}

// WithoutPunctuation excludes punctuation characters.
func WithoutPunctuation() StringOption {
	return func(c *stringConfig) { c.noPunct = true }
}

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
	punctChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

func buildCharset(opts []StringOption) string {
	var cfg stringConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.charset != "" {
		return cfg.charset
	}

	var b strings.Builder
	if !cfg.noLower {
		b.WriteString(lowerChars)
	}
	if !cfg.noUpper {
		b.WriteString(upperChars)
	}
	if !cfg.noDigit {
		b.WriteString(digitChars)
	}
	if !cfg.noPunct {
		b.WriteString(punctChars)
	}
	if b.Len() == 0 {
		panic("randomdata: all character classes excluded and no charset given")
	}
	return b.String()
}
