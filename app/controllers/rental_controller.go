package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"booking-backend/app/dto"
	"booking-backend/app/middleware"
	"booking-backend/app/services"
)

type RentalController struct {
	Rentals  *services.RentalService
	validate *validator.Validate
}

func NewRentalController(rentals *services.RentalService) *RentalController {
	return &RentalController{Rentals: rentals, validate: validator.New()}
}

func rentalFields(req dto.CarRentalRequest) services.RentalFields {
	return services.RentalFields{
		CarModel:        req.CarModel,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupDate:      req.PickupDate,
		DropoffDate:     req.DropoffDate,
	}
}

func (c *RentalController) Create(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.CarRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		writeError(w, r, validationError(err))
		return
	}
	rental, err := c.Rentals.Create(r.Context(), *p, rentalFields(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (c *RentalController) List(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	rentals, err := c.Rentals.List(r.Context(), *p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (c *RentalController) Update(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	var req dto.CarRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		writeError(w, r, validationError(err))
		return
	}
	rental, err := c.Rentals.Update(r.Context(), *p, id, rentalFields(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Rental updated successfully", "rental": rental})
}

func (c *RentalController) Delete(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	if err := c.Rentals.Delete(r.Context(), *p, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Rental deleted successfully"})
}
