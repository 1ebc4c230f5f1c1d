package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"booking-backend/app/dto"
	jwtutil "booking-backend/app/jwt"
	"booking-backend/app/services"
)

type AuthController struct {
	Users    *services.UserService
	Signer   *jwtutil.Signer
	validate *validator.Validate
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer, validate: validator.New()}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		writeError(w, r, validationError(err))
		return
	}
	if _, err := c.Users.Register(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		writeError(w, r, validationError(err))
		return
	}
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		// Unknown user and wrong password are both a 400 here, matching
		// the pre-token contract clients already depend on.
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrBadPassword) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeError(w, r, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}
