package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"booking-backend/app/controllers"
	"booking-backend/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, postCtrl *controllers.PostController, rentalCtrl *controllers.RentalController, mw *middleware.Auth) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)

	// public
	r.Post("/register", authCtrl.Register)
	r.Post("/login", authCtrl.Login)

	// everything below requires a bearer token
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)

		r.Post("/posts", postCtrl.Create)
		r.Get("/posts", postCtrl.List)
		r.Put("/posts/{id}", postCtrl.Update)
		r.Delete("/posts/{id}", postCtrl.Delete)

		r.Post("/car-rentals", rentalCtrl.Create)
		r.Get("/car-rentals", rentalCtrl.List)
		r.Put("/car-rentals/{id}", rentalCtrl.Update)
		r.Delete("/car-rentals/{id}", rentalCtrl.Delete)
	})

	return r
}
