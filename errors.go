package fibheap

import "errors"

var (
	// ErrEmptyHeap is returned when the minimum of an empty heap is requested.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")
	// ErrInvalidKey is returned by DecreaseKey when the new key is not smaller
	// than the current one.
	ErrInvalidKey = errors.New("fibheap: new key is not smaller than current key")
	// ErrInvalidHandle is returned when a node is nil, already extracted, or
	// belongs to a different heap.
	ErrInvalidHandle = errors.New("fibheap: invalid node handle")
	// ErrHeapConsumed is returned by every operation on a heap that has been
	// melded into another heap.
	ErrHeapConsumed = errors.New("fibheap: heap was melded into another heap")
	// ErrCorrupt is wrapped by Check to report a broken structural invariant.
	ErrCorrupt = errors.New("fibheap: corrupt heap")
)
