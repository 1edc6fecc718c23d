package verify

// CheckResult aggregates the outcome of a single verification run.
// OK is true iff Errors is empty. The error order is fixed: tracked files,
// license, README, tags.
type CheckResult struct {
	OK     bool
	Errors []string
}

func newResult(errors []string) CheckResult {
	return CheckResult{
		OK:     len(errors) == 0,
		Errors: errors,
	}
}
