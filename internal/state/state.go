package state

import "fmt"

type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is what a screen shows for one piece of data: nothing yet, a
// spinner, the data, or an error message.
type State[T any] struct {
	Kind    Kind
	Data    T
	Message string
}

func Idle[T any]() State[T] { return State[T]{Kind: KindIdle} }

func Loading[T any]() State[T] { return State[T]{Kind: KindLoading} }

func Success[T any](data T) State[T] { return State[T]{Kind: KindSuccess, Data: data} }

func Error[T any](message string) State[T] { return State[T]{Kind: KindError, Message: message} }

func (s State[T]) String() string {
	switch s.Kind {
	case KindSuccess:
		return fmt.Sprintf("success(%v)", s.Data)
	case KindError:
		return "error(" + s.Message + ")"
	default:
		return s.Kind.String()
	}
}
