package commands

// BatchResult is the per-invocation accounting of a batch operation.
// Batch handlers always return one, even when every item failed, so the
// caller can render a complete per-order accounting instead of an opaque
// error.
//
// Invariant: Succeeded + len(Errors) <= Requested never breaks under
// sequential or concurrent processing, because each order id records
// exactly one outcome.
type BatchResult struct {
	// Requested is the number of order ids the batch was invoked with.
	Requested int

	// Succeeded is the number of orders updated successfully.
	Succeeded int

	// Errors holds one human-readable message per failed order, each
	// naming the offending order.
	Errors []string
}

// HasFailures reports whether any item in the batch failed.
func (r BatchResult) HasFailures() bool {
	return len(r.Errors) > 0
}

func (r *BatchResult) recordSuccess() {
	r.Succeeded++
}

func (r *BatchResult) recordFailure(message string) {
	r.Errors = append(r.Errors, message)
}
