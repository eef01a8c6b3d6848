// SPDX-License-Identifier: MIT

package graphgen

import (
	"fmt"
	"math"
)

const methodBlobs = "Blobs"

// Blobs draws perCenter points around each center with independent Gaussian
// noise of standard deviation sigma per coordinate. Points are emitted
// center by center; labels[k] is the index of the center point k was drawn
// around. sigma == 0 returns exact copies of the centers. An RNG is required
// when sigma > 0.
//
// Errors: ErrInvalidPoints (no centers, empty or ragged coordinates, negative
// or non-finite sigma), ErrTooFewVertices (perCenter < 1), ErrNeedRandSource.
func Blobs(centers [][]float64, perCenter int, sigma float64, opts ...Option) (points [][]float64, labels []int, err error) {
	cfg := newConfig(opts...)
	if len(centers) == 0 || len(centers[0]) == 0 {
		return nil, nil, fmt.Errorf("%s: no centers: %w", methodBlobs, ErrInvalidPoints)
	}
	dim := len(centers[0])
	for c := range centers {
		if len(centers[c]) != dim {
			return nil, nil, fmt.Errorf("%s: center %d has %d coordinates, want %d: %w",
				methodBlobs, c, len(centers[c]), dim, ErrInvalidPoints)
		}
	}
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		return nil, nil, fmt.Errorf("%s: sigma=%g: %w", methodBlobs, sigma, ErrInvalidPoints)
	}
	if perCenter < 1 {
		return nil, nil, fmt.Errorf("%s: perCenter=%d < 1: %w", methodBlobs, perCenter, ErrTooFewVertices)
	}
	if sigma > 0 && cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBlobs, ErrNeedRandSource)
	}

	points = make([][]float64, 0, len(centers)*perCenter)
	labels = make([]int, 0, len(centers)*perCenter)
	for c, center := range centers {
		for k := 0; k < perCenter; k++ {
			p := make([]float64, dim)
			for d, x := range center {
				p[d] = x
				if sigma > 0 {
					p[d] += cfg.rng.NormFloat64() * sigma
				}
			}
			points = append(points, p)
			labels = append(labels, c)
		}
	}

	return points, labels, nil
}
