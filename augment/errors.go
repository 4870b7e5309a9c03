// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"errors"
	"fmt"
)

// ErrPanic marks an EffectError recovered from a panicking kernel.
var ErrPanic = errors.New("effect panicked")

// EffectError records which kernel failed during a chain.
type EffectError struct {
	Effect string
	Err    error
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("effect %s: %v", e.Effect, e.Err)
}

func (e *EffectError) Unwrap() error { return e.Err }
