package report

// SummaryResponse is the reporting page's one-shot aggregate over the whole
// dataset. Counts are grouped by the enum values the collections carry.
type SummaryResponse struct {
	Headcount  HeadcountSummary  `json:"headcount"`
	Leave      LeaveSummary      `json:"leave"`
	Attendance AttendanceSummary `json:"attendance"`
}

type HeadcountSummary struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	ByDepartment map[string]int `json:"byDepartment"`
}

type LeaveSummary struct {
	Total    int            `json:"total"`
	ByType   map[string]int `json:"byType"`
	ByStatus map[string]int `json:"byStatus"`
}

type AttendanceSummary struct {
	Date     string         `json:"date"`
	ByStatus map[string]int `json:"byStatus"`
}
