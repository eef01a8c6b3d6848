// SPDX-License-Identifier: MIT

package ising

import (
	"errors"
	"fmt"
)

// Error categories shared by every package of the sampling pipeline.
var (
	// ErrInvalidInput marks malformed problem data: weight matrices, couplings,
	// spin configurations.
	ErrInvalidInput = errors.New("ising: invalid input")

	// ErrInvalidConfiguration marks bad run parameters: clamps, schedules,
	// temperatures, repetition counts, enumeration sizes.
	ErrInvalidConfiguration = errors.New("ising: invalid configuration")
)

// Specific sentinels. Each wraps its category.
var (
	// ErrNodeOutOfRange indicates a coupling or bias refers to a node outside 0..N-1.
	ErrNodeOutOfRange = fmt.Errorf("%w: node id out of range", ErrInvalidInput)

	// ErrSelfCoupling indicates a coupling J(i,i).
	ErrSelfCoupling = fmt.Errorf("%w: self coupling", ErrInvalidInput)

	// ErrNonFinite indicates a NaN or ±Inf bias or coupling.
	ErrNonFinite = fmt.Errorf("%w: non-finite value", ErrInvalidInput)

	// ErrEmptyModel indicates a model with zero nodes.
	ErrEmptyModel = fmt.Errorf("%w: model has no nodes", ErrInvalidInput)

	// ErrConfigLength indicates a configuration whose length differs from the node count.
	ErrConfigLength = fmt.Errorf("%w: configuration length mismatch", ErrInvalidInput)

	// ErrBadSpinValue indicates a configuration entry other than -1 or +1.
	ErrBadSpinValue = fmt.Errorf("%w: spin must be -1 or +1", ErrInvalidInput)

	// ErrNilModel indicates a nil *Model.
	ErrNilModel = fmt.Errorf("%w: model is nil", ErrInvalidConfiguration)

	// ErrUnknownNode indicates a clamped node id that does not exist in the model.
	ErrUnknownNode = fmt.Errorf("%w: clamped node not in model", ErrInvalidConfiguration)

	// ErrBadClamp indicates a clamp value other than -1 or +1.
	ErrBadClamp = fmt.Errorf("%w: clamp value must be -1 or +1", ErrInvalidConfiguration)

	// ErrTooLarge indicates an exhaustive enumeration over more than MaxEnumerate free spins.
	ErrTooLarge = fmt.Errorf("%w: too many free spins to enumerate", ErrInvalidConfiguration)
)
