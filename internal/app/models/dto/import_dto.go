package dto

// ImportResult summarizes one roster import run
type ImportResult struct {
	Imported     int      `json:"imported" example:"42"`
	Errors       int      `json:"errors" example:"2"`
	ErrorDetails []string `json:"errorDetails"`
	CountSource  string   `json:"countSource" example:"IMPORT_OBSERVED"`
}
