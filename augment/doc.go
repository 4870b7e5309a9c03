// SPDX-License-Identifier: EPL-2.0

// Package augment implements the stochastic effect chain shared by the image
// and audio pipelines.
//
// A Composer holds a fixed pool of kernels. Each Augment call draws a chain
// length k from 1..min(4, len(pool)), samples k distinct kernels in random
// order and applies them one after another. All randomness comes from the
// *rand.Rand passed in, so a seeded source reproduces the same chain.
//
// Failures never escape Augment. Under ChainAbort the first failing kernel
// discards the whole chain and the original buffer is returned; under
// SkipAndContinue only the failing kernel is dropped.
//
//	c := augment.New(imagefx.Pool(), augment.ChainAbort, augment.WithLogger(logger))
//	res := c.Augment(rng, img.Clone())
//	if res.Failed() {
//	    logger.Warn("augmentation fell back", zap.Errors("errors", res.Errors))
//	}
package augment
