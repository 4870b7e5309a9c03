// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrInvalidDstSize,
		ErrInvalidRate,
		ErrInvalidChannels,
		ErrRaggedSamples,
		ErrUnknownFormat,
		ErrFormatMismatch,
	}

	for i, a := range all {
		if a == nil || a.Error() == "" {
			t.Fatalf("error %d is nil or empty", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: %d", ErrInvalidRate, -1)
	if !errors.Is(wrapped, ErrInvalidRate) {
		t.Error("errors.Is() failed for wrapped ErrInvalidRate")
	}

	joined := errors.Join(ErrInvalidDstSize, errors.New("additional context"))
	if !errors.Is(joined, ErrInvalidDstSize) {
		t.Error("errors.Is() failed for joined ErrInvalidDstSize")
	}
}
