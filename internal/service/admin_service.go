package service

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"

	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

// AdminService вход администратора и журнал заказов
type AdminService struct {
	username string
	password string
	orders   repository.OrderRepository
}

func NewAdminService(username, password string, orders repository.OrderRepository) *AdminService {
	return &AdminService{username: username, password: password, orders: orders}
}

func (s *AdminService) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		zap.S().Warnw("admin login rejected", "username", username)
		return ErrUnauthorized
	}
	return nil
}

func (s *AdminService) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}
