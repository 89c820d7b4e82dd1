package persist

// Backend is the interchangeable text-serialization strategy behind
// the coordinator. Implementations wrap any failure of the underlying
// format library in a *FormatError.
type Backend interface {
	// Name returns the backend identifier used for diagnostics.
	Name() string

	// Marshal serializes v into the backend's compact textual form.
	Marshal(v any) ([]byte, error)

	// MarshalIndent serializes v into the backend's pretty textual form.
	MarshalIndent(v any) ([]byte, error)

	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
}
