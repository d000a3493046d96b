package domain

type ActivityStats struct {
	Minutes          int   `json:"minutes"`
	ActiveUsers      int64 `json:"active_users"`
	LocationUpdates  int64 `json:"location_updates"`
	VolunteersOnline int   `json:"volunteers_online"`
	PendingReports   int64 `json:"pending_reports"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}
