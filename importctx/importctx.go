// Package importctx holds the per-job ImportContext: values constant
// across every line of one job, consumed only by the value-source
// resolver.
package importctx

import "time"

// ImportContext carries the values shared by every line of a single job.
type ImportContext struct {
	ImportedAtUTC time.Time
	SourceSystem  string
	BatchID       string
}
