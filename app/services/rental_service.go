package services

import (
	"context"
	"time"

	"booking-backend/app/apperr"
	"booking-backend/app/models"
	"booking-backend/app/repo"
)

// RentalFields are the mutable fields of a car rental.
type RentalFields struct {
	CarModel        string
	PickupLocation  string
	DropoffLocation string
	PickupDate      time.Time
	DropoffDate     time.Time
}

type RentalService struct{ rentals *repo.RentalRepository }

func NewRentalService(rentals *repo.RentalRepository) *RentalService {
	return &RentalService{rentals: rentals}
}

func (s *RentalService) Create(ctx context.Context, p models.Principal, f RentalFields) (*models.CarRental, error) {
	rental := &models.CarRental{
		CarModel:        f.CarModel,
		PickupLocation:  f.PickupLocation,
		DropoffLocation: f.DropoffLocation,
		PickupDate:      f.PickupDate,
		DropoffDate:     f.DropoffDate,
		OwnerID:         p.ID,
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *RentalService) List(ctx context.Context, p models.Principal) ([]models.CarRental, error) {
	if p.IsAdmin() {
		return s.rentals.ListAll(ctx)
	}
	return s.rentals.ListByOwner(ctx, p.ID)
}

func (s *RentalService) Update(ctx context.Context, p models.Principal, id string, f RentalFields) (*models.CarRental, error) {
	rental, err := s.rentals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.OwnerID != p.ID && !p.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	rental.CarModel = f.CarModel
	rental.PickupLocation = f.PickupLocation
	rental.DropoffLocation = f.DropoffLocation
	rental.PickupDate = f.PickupDate
	rental.DropoffDate = f.DropoffDate
	if err := s.rentals.Save(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *RentalService) Delete(ctx context.Context, p models.Principal, id string) error {
	rental, err := s.rentals.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rental.OwnerID != p.ID && !p.IsAdmin() {
		return apperr.ErrForbidden
	}
	return s.rentals.Delete(ctx, id, rental.OwnerID)
}
