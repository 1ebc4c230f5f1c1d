package models

import "time"

type CarRental struct {
	ID              string    `json:"id"`
	CarModel        string    `json:"carModel"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	PickupDate      time.Time `json:"pickupDate"`
	DropoffDate     time.Time `json:"dropoffDate"`
	OwnerID         uint      `json:"userId"`
}
