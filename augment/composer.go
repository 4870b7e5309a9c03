// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DefaultMaxEffects caps the chain length when no option overrides it.
const DefaultMaxEffects = 4

// Buffer is a media buffer that can be deep-copied.
type Buffer[T any] interface {
	Clone() T
}

// Effect is one parameterised transform. Apply draws its parameters from rng
// on every call. It may modify buf in place and return it, but must leave buf
// untouched when it returns an error.
type Effect[T any] interface {
	Name() string
	Apply(rng *rand.Rand, buf T) (T, error)
}

// Policy decides what a failing kernel does to the rest of the chain.
type Policy int

const (
	// ChainAbort discards the whole chain on the first failure and returns
	// the buffer as it was before any kernel ran.
	ChainAbort Policy = iota
	// SkipAndContinue drops only the failing kernel; the buffer flows on to
	// the next one unchanged.
	SkipAndContinue
)

func (p Policy) String() string {
	switch p {
	case ChainAbort:
		return "chain-abort"
	case SkipAndContinue:
		return "skip-and-continue"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Result describes one Augment call.
type Result[T any] struct {
	Buffer T
	// Planned lists the sampled kernels in application order.
	Planned []string
	// Applied lists the kernels whose output made it into Buffer.
	Applied []string
	Errors  []error
}

// Failed reports whether any kernel failed.
func (r Result[T]) Failed() bool { return len(r.Errors) > 0 }

type options struct {
	maxEffects int
	logger     *zap.Logger
}

type Option func(o *options)

// WithMaxEffects caps the number of kernels per chain. Values below 1 are
// ignored.
func WithMaxEffects(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxEffects = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Composer applies a random subset of its pool to a buffer.
type Composer[T Buffer[T]] struct {
	pool       []Effect[T]
	policy     Policy
	maxEffects int
	logger     *zap.Logger
}

func New[T Buffer[T]](pool []Effect[T], policy Policy, opts ...Option) *Composer[T] {
	o := &options{
		maxEffects: DefaultMaxEffects,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Composer[T]{
		pool:       pool,
		policy:     policy,
		maxEffects: o.maxEffects,
		logger:     o.logger,
	}
}

func (c *Composer[T]) Policy() Policy { return c.policy }

// Pool lists the kernel names in declaration order.
func (c *Composer[T]) Pool() []string {
	return names(c.pool)
}

// Plan draws k uniformly from 1..min(maxEffects, len(pool)) and samples k
// distinct kernels. The returned order is the application order. An empty
// pool yields an empty plan.
func (c *Composer[T]) Plan(rng *rand.Rand) []Effect[T] {
	limit := min(c.maxEffects, len(c.pool))
	if limit == 0 {
		return nil
	}

	k := 1 + rng.IntN(limit)
	perm := rng.Perm(len(c.pool))

	return lo.Map(perm[:k], func(i int, _ int) Effect[T] {
		return c.pool[i]
	})
}

// Augment runs a freshly planned chain over buf. It never fails: kernel
// errors and panics are contained according to the composer's policy and
// reported in the result. buf is owned by the chain and may be modified.
func (c *Composer[T]) Augment(rng *rand.Rand, buf T) Result[T] {
	plan := c.Plan(rng)
	res := Result[T]{Buffer: buf, Planned: names(plan)}

	c.logger.Debug("augment",
		zap.Stringer("policy", c.policy),
		zap.Strings("effects", res.Planned),
	)

	switch c.policy {
	case ChainAbort:
		c.chainAbort(rng, plan, &res)
	default:
		c.skipAndContinue(rng, plan, &res)
	}

	return res
}

func (c *Composer[T]) chainAbort(rng *rand.Rand, plan []Effect[T], res *Result[T]) {
	snapshot := res.Buffer.Clone()

	for _, eff := range plan {
		out, err := apply(eff, rng, res.Buffer)
		if err != nil {
			c.logger.Warn("effect chain aborted, keeping original",
				zap.String("effect", eff.Name()),
				zap.Error(err),
			)
			res.Buffer = snapshot
			res.Applied = nil
			res.Errors = append(res.Errors, err)
			return
		}

		res.Buffer = out
		res.Applied = append(res.Applied, eff.Name())
	}
}

func (c *Composer[T]) skipAndContinue(rng *rand.Rand, plan []Effect[T], res *Result[T]) {
	for _, eff := range plan {
		// a panicking kernel may leave its input half written
		before := res.Buffer.Clone()

		out, err := apply(eff, rng, res.Buffer)
		if err != nil {
			c.logger.Warn("effect skipped",
				zap.String("effect", eff.Name()),
				zap.Error(err),
			)
			res.Buffer = before
			res.Errors = append(res.Errors, err)
			continue
		}

		res.Buffer = out
		res.Applied = append(res.Applied, eff.Name())
	}
}

// apply runs one kernel, turning errors and panics into *EffectError.
func apply[T any](eff Effect[T], rng *rand.Rand, buf T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EffectError{Effect: eff.Name(), Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	out, err = eff.Apply(rng, buf)
	if err != nil {
		return out, &EffectError{Effect: eff.Name(), Err: err}
	}
	return out, nil
}

func names[T any](effs []Effect[T]) []string {
	return lo.Map(effs, func(e Effect[T], _ int) string {
		return e.Name()
	})
}
