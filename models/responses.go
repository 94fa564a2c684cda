package models

// UserResponse is the public profile returned by login and /api/me.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DayCount is one bucket of the trailing-7-day creation histogram.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	Total               int64      `json:"total"`
	Completed           int64      `json:"completed"`
	HighPriorityPending int64      `json:"high_priority_pending"`
	Weekly              []DayCount `json:"weekly"`
}
