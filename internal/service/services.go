package service

import (
	"github.com/MKhiriev/go-pulse-keeper/internal/config"
	"github.com/MKhiriev/go-pulse-keeper/internal/crypto"
	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	DataPointService DataPointService
}

func NewServices(storages *store.Storages, hasher *crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, cfg, logger),
		UserService:      NewUserService(storages.UserRepository, logger),
		DataPointService: NewDataPointService(storages.DataPointRepository, logger),
	}
}
