package booking

import (
	"roombook/internal/modules/pricing"
)

// CreateBookingRequest carries IST wall-clock strings as typed by the user;
// the service resolves them before anything leaves the process.
type CreateBookingRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	UserName   string `json:"userName"`
	StartLocal string `json:"startLocal"`
	EndLocal   string `json:"endLocal"`
}

// PreviewResponse mirrors the live form sidebar: field errors when the input
// is not yet acceptable, an estimate and display strings once it is.
type PreviewResponse struct {
	Errors       FieldErrors      `json:"errors"`
	Estimate     pricing.Estimate `json:"estimate"`
	StartDisplay string           `json:"startDisplay,omitempty"`
	EndDisplay   string           `json:"endDisplay,omitempty"`
}

type ListBookingsQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	RoomID string `form:"roomId"`
}
