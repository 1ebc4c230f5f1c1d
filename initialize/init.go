package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"booking-backend/app/controllers"
	jwtutil "booking-backend/app/jwt"
	"booking-backend/app/middleware"
	"booking-backend/app/models"
	"booking-backend/app/repo"
	"booking-backend/app/services"
	"booking-backend/config"
	"booking-backend/db"
	"booking-backend/global"
	"booking-backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Router  http.Handler
	Users   *services.UserService
	Posts   *services.PostService
	Rentals *services.RentalService
}

// Build wires the whole process: config, both stores, services, router.
// A store that cannot be reached is fatal; serving with a broken
// dependency is worse than not starting.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	global.Rdb = rdb

	// Services
	userRepo := repo.NewUserRepository(gdb)
	postRepo := repo.NewPostRepository(rdb)
	rentalRepo := repo.NewRentalRepository(rdb)
	userSvc := services.NewUserService(userRepo)
	postSvc := services.NewPostService(postRepo)
	rentalSvc := services.NewRentalService(rentalRepo)

	// Registration only ever creates "user" accounts; the seeded admin is
	// the single path to an admin role.
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := userSvc.EnsureAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("seed admin")
		}
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer, Users: userSvc, TrustTokenRole: cfg.Auth.TrustTokenRole}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	postCtrl := controllers.NewPostController(postSvc)
	rentalCtrl := controllers.NewRentalController(rentalSvc)

	h := router.NewRouter(authCtrl, postCtrl, rentalCtrl, mw)

	return &App{Cfg: cfg, DB: gdb, Redis: rdb, Router: h, Users: userSvc, Posts: postSvc, Rentals: rentalSvc}, nil
}

func (a *App) Close() {
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.Redis.Close()
}
