package session

// pathEmptyError signals a load attempt with an empty model path.
type pathEmptyError struct{}

func (pathEmptyError) Error() string { return "model path is empty" }

// ErrPathEmpty constructs a pathEmptyError.
func ErrPathEmpty() error { return pathEmptyError{} }

// IsPathEmpty reports whether err indicates an empty model path (map to 400).
func IsPathEmpty(err error) bool {
	_, ok := err.(pathEmptyError)
	return ok
}

// modelNotAccessibleError signals that a model path does not refer to a
// readable file, so the HTTP layer can return 404 instead of 500.
type modelNotAccessibleError struct {
	path  string
	cause error
}

func (e modelNotAccessibleError) Error() string {
	if e.cause != nil {
		return "model not accessible: " + e.path + ": " + e.cause.Error()
	}
	return "model not accessible: " + e.path
}

func (e modelNotAccessibleError) Unwrap() error { return e.cause }

// ErrModelNotAccessible constructs a modelNotAccessibleError.
func ErrModelNotAccessible(path string, cause error) error {
	return modelNotAccessibleError{path: path, cause: cause}
}

// IsModelNotAccessible reports whether err indicates an unreadable model path.
func IsModelNotAccessible(err error) bool {
	_, ok := err.(modelNotAccessibleError)
	return ok
}
