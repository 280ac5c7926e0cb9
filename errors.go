package ledgerdocs

import "fmt"

// MissingInputError reports an absent source file or record. Optional
// sources are logged and treated as empty; the batch carries on.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input %q not found", e.Path)
}

// MalformedInputError reports structured input that could not be parsed.
// It is fatal for the pipeline stage reading that input.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// InvalidAllocationError reports an allocation request that cannot be
// reconciled: an empty weight set, or weights that sum to zero while a
// proportional split was requested.
type InvalidAllocationError struct {
	Reason string
}

func (e *InvalidAllocationError) Error() string {
	return fmt.Sprintf("invalid allocation: %s", e.Reason)
}

// TimelineOrderError reports offset ranges that would not produce a
// chronologically ordered timeline.
type TimelineOrderError struct {
	Index int
}

func (e *TimelineOrderError) Error() string {
	return fmt.Sprintf("timeline offset range %d overlaps the next range: derived dates would not be ordered", e.Index)
}
