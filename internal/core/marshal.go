package core

// Marshaler abstracts serialization for configuration writers.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
