// Package builder provides validation helpers to enforce parameter
// contracts in the constructors.
//
// Each function returns a formatted error via builderErrorf when its
// precondition is violated.
package builder

// validateMin ensures that got ≥ min for the named parameter.
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooSmall, "%s must be ≥ %d, got %d", name, min, got)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %v", MinProbability, MaxProbability, p)
	}
	return nil
}
