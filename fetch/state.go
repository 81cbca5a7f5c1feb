// Package fetch owns the lifecycle of a remote request driven by parameter snapshots.
package fetch

import "github.com/samber/mo"

// Status is the tag of a State.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is one of Idle, Loading, Success(data, total) or Failed(err).
// Data and Err are only populated for the matching status.
type State[T any] struct {
	status Status
	data   T
	total  int
	err    error
}

// Status returns the tag.
func (s State[T]) Status() Status {
	return s.status
}

// Data is present only in Success.
func (s State[T]) Data() mo.Option[T] {
	if s.status != Success {
		return mo.None[T]()
	}
	return mo.Some(s.data)
}

// Total is the corpus size reported with Success, 0 otherwise.
func (s State[T]) Total() int {
	return s.total
}

// Err is the failure of Failed, nil otherwise.
func (s State[T]) Err() error {
	return s.err
}

func (s State[T]) IsIdle() bool    { return s.status == Idle }
func (s State[T]) IsLoading() bool { return s.status == Loading }
func (s State[T]) IsSuccess() bool { return s.status == Success }
func (s State[T]) IsFailed() bool  { return s.status == Failed }

func idle[T any]() State[T] {
	return State[T]{status: Idle}
}

func loading[T any]() State[T] {
	return State[T]{status: Loading}
}

func succeeded[T any](data T, total int) State[T] {
	return State[T]{status: Success, data: data, total: total}
}

func failed[T any](err error) State[T] {
	return State[T]{status: Failed, err: err}
}
