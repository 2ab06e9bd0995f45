package uthread

import "errors"

var (
	// ErrTableFull is returned by Create when every thread-table slot is occupied.
	ErrTableFull = errors.New("uthread: thread table full")
	// ErrUnknownTid is returned by Join when no live or terminated thread has the given tid.
	ErrUnknownTid = errors.New("uthread: unknown tid")
	// ErrClosed is returned by Channel.Send/Recv once a channel is closed and,
	// for Recv, drained.
	ErrClosed = errors.New("uthread: channel closed")
	// ErrInvalidCapacity is returned by NewChannel for a non-positive capacity.
	ErrInvalidCapacity = errors.New("uthread: channel capacity must be >= 1")
)
