package dto

import "time"

// CarRentalRequest carries the mutable rental fields; dates are RFC3339.
// Like PostRequest, any owner field in the payload is ignored.
type CarRentalRequest struct {
	CarModel        string    `json:"carModel" validate:"required"`
	PickupLocation  string    `json:"pickupLocation" validate:"required"`
	DropoffLocation string    `json:"dropoffLocation" validate:"required"`
	PickupDate      time.Time `json:"pickupDate" validate:"required"`
	DropoffDate     time.Time `json:"dropoffDate" validate:"required"`
}
