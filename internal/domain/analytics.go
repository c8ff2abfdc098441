package domain

import "time"

// RoomUsage is one row of the per-room utilisation report.
type RoomUsage struct {
	RoomID       string  `json:"roomId"`
	RoomName     string  `json:"roomName"`
	TotalHours   float64 `json:"totalHours"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ReportFilter bounds the analytics report. Zero values mean "no bound".
type ReportFilter struct {
	From time.Time
	To   time.Time
}
