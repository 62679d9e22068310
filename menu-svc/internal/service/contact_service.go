package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"ravintola-sinet/menu-svc/internal/domain"
)

const (
	DefaultContactLimit = 200
	maxContactMessage   = 5000
)

var ErrInvalidContact = errors.New("invalid contact message")

type ContactService struct {
	repository ContactRepository
}

func NewContactService(repository ContactRepository) *ContactService {
	return &ContactService{repository: repository}
}

func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	if msg == nil {
		return ErrInvalidContact
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	}
	addr, err := mail.ParseAddress(msg.Email)
	if err != nil || addr.Address != msg.Email {
		return fmt.Errorf("%w: email address is not valid", ErrInvalidContact)
	}
	if msg.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidContact)
	}
	if len(msg.Message) > maxContactMessage {
		return fmt.Errorf("%w: message is too long", ErrInvalidContact)
	}
	return s.repository.CreateMessage(ctx, msg)
}

func (s *ContactService) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	if limit <= 0 || limit > DefaultContactLimit {
		limit = DefaultContactLimit
	}
	return s.repository.ListMessages(ctx, limit)
}
