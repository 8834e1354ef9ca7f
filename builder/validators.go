// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each helper wraps the matching sentinel with method context.
package builder

import "fmt"

// validateMin ensures that got ≥ min.
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}
	return nil
}

// validatePartition checks that both sides of a bipartition are non-empty.
// Complexity: O(1) time and space.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartitionSize || n2 < MinPartitionSize {
		return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, MinPartitionSize, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}
