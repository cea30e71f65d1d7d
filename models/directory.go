package models

// Technician is the read model returned by the technician directory. This
// service never writes technicians.
type Technician struct {
	ID           string   `json:"id"`
	Active       bool     `json:"active"`
	Competencies []string `json:"competencies"`
}

// Client is the read model returned by the client directory.
type Client struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// ActivityStats summarizes the activity ledger for one assignment.
type ActivityStats struct {
	TotalActivities     int     `json:"totalActivities"`
	CompletedActivities int     `json:"completedActivities"`
	HoursWorked         float64 `json:"hoursWorked"`
}
