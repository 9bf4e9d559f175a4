package pipeline

// Result is the outcome of one Collect call. It owns its output slice, and
// Stats is a value copy taken at completion: resetting or reusing any stats
// block afterwards does not change a returned Result.
type Result[Out any] struct {
	// Data holds the surviving elements. Order depends on the policy the
	// chain was collected under.
	Data []Out

	// Stats describes the completed run.
	Stats Snapshot
}

// Len returns the number of output elements.
func (r *Result[Out]) Len() int {
	return len(r.Data)
}

// Empty returns true when no elements passed the chain.
func (r *Result[Out]) Empty() bool {
	return len(r.Data) == 0
}
