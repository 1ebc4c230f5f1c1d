package middleware

import (
	"context"

	"booking-backend/app/models"
)

func GetPrincipal(ctx context.Context) *models.Principal {
	if v := ctx.Value(principalKey); v != nil {
		if p, ok := v.(*models.Principal); ok {
			return p
		}
	}
	return nil
}
