package repo

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"booking-backend/app/docstore"
	"booking-backend/app/models"
)

type RentalRepository struct{ col *docstore.Collection }

func NewRentalRepository(rdb *redis.Client) *RentalRepository {
	return &RentalRepository{col: docstore.NewCollection(rdb, "car_rentals")}
}

func (r *RentalRepository) Create(ctx context.Context, cr *models.CarRental) error {
	cr.ID = docstore.NewID()
	return r.col.Put(ctx, cr.ID, cr.OwnerID, cr)
}

func (r *RentalRepository) FindByID(ctx context.Context, id string) (*models.CarRental, error) {
	var cr models.CarRental
	if err := r.col.Get(ctx, id, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *RentalRepository) Save(ctx context.Context, cr *models.CarRental) error {
	return r.col.Put(ctx, cr.ID, cr.OwnerID, cr)
}

func (r *RentalRepository) Delete(ctx context.Context, id string, owner uint) error {
	return r.col.Delete(ctx, id, owner)
}

func (r *RentalRepository) ListAll(ctx context.Context) ([]models.CarRental, error) {
	docs, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRentals(docs)
}

func (r *RentalRepository) ListByOwner(ctx context.Context, owner uint) ([]models.CarRental, error) {
	docs, err := r.col.ByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return decodeRentals(docs)
}

func decodeRentals(docs []json.RawMessage) ([]models.CarRental, error) {
	rentals := make([]models.CarRental, 0, len(docs))
	for _, d := range docs {
		var cr models.CarRental
		if err := json.Unmarshal(d, &cr); err != nil {
			return nil, err
		}
		rentals = append(rentals, cr)
	}
	return rentals, nil
}
