package catalog

import "fmt"

// ValidationError reports a catalog entry that breaks a catalog invariant.
// Index is -1 when the error concerns the catalog as a whole.
type ValidationError struct {
	Index   int
	Key     string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	prefix := "catalog validation error"
	if e.Index >= 0 {
		prefix = fmt.Sprintf("catalog validation error at entry %d (%s)", e.Index, e.Key)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// LoadError represents a failure reading or decoding a catalog file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
