package domain

import "time"

type PortalStatus struct {
	TotalUsers        int       `json:"total_users"`
	TotalJobs         int       `json:"total_jobs"`
	TotalApplications int       `json:"total_applications"`
	ApplicationsToday int       `json:"applications_today"`
	LiveSubscribers   int       `json:"live_subscribers"`
	DatabaseHealthy   bool      `json:"database_healthy"`
	RedisHealthy      bool      `json:"redis_healthy"`
	ServerTime        time.Time `json:"server_time"`
}
