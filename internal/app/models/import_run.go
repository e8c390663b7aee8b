package models

import "time"

// CountSource identifies which source of truth a company-count recalculation
// used. The two sources are never mixed within a single recalculation.
type CountSource string

const (
	// CountSourceFormalAssignments counts COUNT(DISTINCT student) from the
	// formal assignment table, authoritative whenever assignments exist.
	CountSourceFormalAssignments CountSource = "FORMAL_ASSIGNMENTS"
	// CountSourceImportObserved counts unique student-company pairs observed
	// during the import run, the fallback early in a batch's lifecycle.
	CountSourceImportObserved CountSource = "IMPORT_OBSERVED"
)

// ImportRun records one roster import invocation against a batch, including
// which count source the recalculation resolved to.
type ImportRun struct {
	ID          int64       `json:"id" db:"id"`
	BatchID     int64       `json:"batchId" db:"batch_id"`
	FileName    string      `json:"fileName" db:"file_name"`
	Imported    int         `json:"imported" db:"imported"`
	Errors      int         `json:"errors" db:"errors"`
	CountSource CountSource `json:"countSource" db:"count_source"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}
