package jsoniter

// Ptr returns a pointer to v, handy for constructing optional/nullable
// field values inline in tests and call sites without a separate local
// variable.
func Ptr[T any](v T) *T { return &v }
