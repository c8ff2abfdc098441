package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	BookingID  string        `json:"bookingId"`
	RoomID     string        `json:"roomId"`
	RoomName   string        `json:"roomName,omitempty"`
	UserName   string        `json:"userName"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt,omitempty"`
}

// BookingRequest is the creation payload sent to the booking backend.
// StartTime/EndTime are absolute UTC instants; the backend never sees
// wall-clock strings.
type BookingRequest struct {
	RoomID    string    `json:"roomId"`
	UserName  string    `json:"userName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// BookingFilter narrows booking listings. Zero values mean "no bound".
type BookingFilter struct {
	From   time.Time
	To     time.Time
	RoomID string
}
