package batch

import "squarify/pkg/imgutil"

// Job is one unit of batch work, owned exclusively by the worker that
// processes it.
type Job struct {
	SourcePath string
	OutputPath string
	Display    string
	Size       int
	Format     imgutil.Format
}

// Result is the outcome of one job: a saved path, or the error that
// excluded the file from the batch.
type Result struct {
	Job       Job
	SavedPath string
	Err       error
}

type Summary struct {
	Eligible  int
	Processed int
	Failed    int
}

// ProgressUpdate carries counter deltas to the progress UI.
type ProgressUpdate struct {
	EligibleDelta  int
	ProcessedDelta int
	FailedDelta    int
}
