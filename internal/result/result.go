// Package result holds the outcome type returned by the repository layer.
package result

// Kind tags the active variant of a Result.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
	// KindLoading marks an operation still in progress. The repository layer
	// never returns it; it exists for callers that stage progress themselves.
	KindLoading
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Result carries either a payload or the error that prevented it.
type Result[T any] struct {
	kind Kind
	data T
	err  error
}

func Success[T any](data T) Result[T] {
	return Result[T]{kind: KindSuccess, data: data}
}

// Error wraps err. A nil err is still an error variant.
func Error[T any](err error) Result[T] {
	return Result[T]{kind: KindError, err: err}
}

func Loading[T any]() Result[T] {
	return Result[T]{kind: KindLoading}
}

func (r Result[T]) Kind() Kind { return r.kind }

// Data returns the payload and whether r is a success.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.kind == KindSuccess
}

// Err returns the captured cause for the error variant and nil otherwise.
func (r Result[T]) Err() error {
	if r.kind != KindError {
		return nil
	}
	return r.err
}

// From builds a Result from the usual (value, error) pair.
func From[T any](data T, err error) Result[T] {
	if err != nil {
		return Error[T](err)
	}
	return Success(data)
}
