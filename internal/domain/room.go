package domain

type Room struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BaseHourlyRate float64 `json:"base_hourly_rate"`
	Capacity       int     `json:"capacity"`
	Description    string  `json:"description,omitempty"`
}

// RoomInput is the create/update payload the backend accepts for a room.
type RoomInput struct {
	Name           string  `json:"name"`
	BaseHourlyRate float64 `json:"base_hourly_rate"`
	Capacity       int     `json:"capacity"`
	Description    string  `json:"description,omitempty"`
}
