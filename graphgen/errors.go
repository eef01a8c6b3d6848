// SPDX-License-Identifier: MIT

package graphgen

import "errors"

// ErrTooFewVertices indicates a size parameter below the family's minimum.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrNeedRandSource indicates a stochastic generator ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("graphgen: rng is required")

// ErrInvalidWeight indicates a WeightFn produced a negative or non-finite weight.
var ErrInvalidWeight = errors.New("graphgen: weight must be finite and >= 0")

// ErrInvalidPoints indicates malformed point-cloud parameters (no centers,
// ragged or empty center coordinates, negative spread).
var ErrInvalidPoints = errors.New("graphgen: invalid point-cloud parameters")
