package catalog

type RoomRequest struct {
	Name           string  `json:"name" binding:"required"`
	BaseHourlyRate float64 `json:"base_hourly_rate" binding:"required,gt=0"`
	Capacity       int     `json:"capacity" binding:"required,gte=1"`
	Description    string  `json:"description"`
}
