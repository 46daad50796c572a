// internal/model/dashboard.go
package model

// DashboardResponse aggregates one user's learning state. ChartLabels and
// ChartData are parallel slices (one entry per language, same index order)
// ready for a charting frontend.
type DashboardResponse struct {
	TotalLanguages       int64        `json:"total_languages"`
	TotalProgressEntries int64        `json:"total_progress_entries"`
	UpcomingGoals        []*Goal      `json:"upcoming_goals"`
	RecentMilestones     []*Milestone `json:"recent_milestones"`
	ChartLabels          []string     `json:"chart_labels"`
	ChartData            []int64      `json:"chart_data"`
}

// DeleteConfirmation is returned by the first, non-mutating request to a
// delete endpoint. The record is only removed once the client repeats the
// request with confirm=true.
type DeleteConfirmation struct {
	ConfirmationRequired bool   `json:"confirmation_required"`
	Message              string `json:"message"`
	Record               any    `json:"record"`
}
