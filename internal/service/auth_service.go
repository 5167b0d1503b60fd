package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"glutivia/internal/checkout"
	"glutivia/internal/domain"
	"glutivia/internal/repository"
)

const minPasswordLen = 6

var (
	ErrWrongPassword    = invalid("the current password you entered is incorrect")
	ErrPasswordTooShort = invalid("new password must be at least 6 characters long")
	ErrPasswordMismatch = invalid("new passwords do not match")
)

var inputValidator = validator.New()

// Session токен и профиль вошедшего покупателя
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthConfig длительность имитации входа и оплаты тарифа
type AuthConfig struct {
	LoginDelay time.Duration
	PlanDelay  time.Duration
}

// AuthService вход, регистрация, профиль и тарифы покупателя
type AuthService struct {
	sessions repository.SessionRepository
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(sessions repository.SessionRepository, cfg AuthConfig) *AuthService {
	return &AuthService{sessions: sessions, cfg: cfg, now: time.Now}
}

// Login принимает любую пару email/пароль; имя выводится из email
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := wait(ctx, s.cfg.LoginDelay); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if err := checkCredentials(email, password); err != nil {
		return nil, err
	}
	return s.open(ctx, email, NameFromEmail(email), password)
}

// Register то же, что Login, но с явным именем
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	if err := wait(ctx, s.cfg.LoginDelay); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("please fill in all fields")
	}
	if err := checkCredentials(email, password); err != nil {
		return nil, err
	}
	return s.open(ctx, email, name, password)
}

func checkCredentials(email, password string) error {
	if email == "" || password == "" {
		return invalid("please fill in all fields")
	}
	if inputValidator.Var(email, "email") != nil {
		return invalid("email is not valid")
	}
	return nil
}

func (s *AuthService) open(ctx context.Context, email, name, password string) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Plan:         domain.PlanExplorer,
		CreatedAt:    s.now().UTC(),
	}
	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, u); err != nil {
		return nil, err
	}
	zap.S().Infow("customer signed in", "email", email)
	return &Session{Token: token, User: u}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Resolve находит сессию по токену
func (s *AuthService) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	u, err := s.sessions.Get(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: *u}, nil
}

// ChangePassword проверяет текущий пароль и длину/подтверждение нового
func (s *AuthService) ChangePassword(ctx context.Context, sess *Session, current, next, confirm string) error {
	if sess == nil {
		return ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword(sess.User.PasswordHash, []byte(current)) != nil {
		return ErrWrongPassword
	}
	if utf8.RuneCountInString(next) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if next != confirm {
		return ErrPasswordMismatch
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	sess.User.PasswordHash = hash
	return s.sessions.Save(ctx, sess.Token, sess.User)
}

// ActivatePlan платные тарифы требуют валидную карту и проходят имитацию оплаты
func (s *AuthService) ActivatePlan(ctx context.Context, sess *Session, plan domain.Plan, card checkout.CardData) (*domain.User, error) {
	if sess == nil {
		return nil, ErrUnauthorized
	}
	price, ok := domain.PlanPrice(plan)
	if !ok {
		return nil, invalid("unknown plan")
	}
	if price > 0 {
		if errs := checkout.ValidateCard(checkout.MaskCard(card)); len(errs) > 0 {
			return nil, &checkout.ValidationError{Fields: errs}
		}
		if err := wait(ctx, s.cfg.PlanDelay); err != nil {
			return nil, err
		}
	}
	sess.User.Plan = plan
	if err := s.sessions.Save(ctx, sess.Token, sess.User); err != nil {
		return nil, err
	}
	zap.S().Infow("plan activated", "email", sess.User.Email, "plan", plan)
	return &sess.User, nil
}

// NameFromEmail "jane.doe-smith@x" -> "Jane Doe Smith"
func NameFromEmail(email string) string {
	handle, _, _ := strings.Cut(email, "@")
	parts := strings.FieldsFunc(handle, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

// wait имитирует обработку на сервере; прерывается контекстом
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
