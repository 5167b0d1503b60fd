package service

import (
	"context"
	"errors"
	"strings"

	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

// CommunityService доска сообщений: читать может любой, писать только вошедший
type CommunityService struct {
	repo repository.CommunityRepository
}

func NewCommunityService(repo repository.CommunityRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) List(ctx context.Context) ([]domain.CommunityMessage, error) {
	return s.repo.List(ctx)
}

// Post публикует сообщение от имени пользователя сессии
func (s *CommunityService) Post(ctx context.Context, sess *Session, text string) (*domain.CommunityMessage, error) {
	if sess == nil {
		return nil, ErrUnauthorized
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("message text is empty")
	}
	return s.repo.Add(ctx, text, sess.User.Name, sess.User.Email)
}

// Delete удалять может только автор, определяемый по email сессии.
// Сообщения без владельца (старые записи, приветствие) покупатель удалить не может.
// Отсутствующее сообщение не ошибка.
func (s *CommunityService) Delete(ctx context.Context, sess *Session, id string) error {
	if sess == nil {
		return ErrUnauthorized
	}
	msg, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if msg.Owner == "" || msg.Owner != sess.User.Email {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
