package contact

import (
	"context"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SendInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (s *Service) Send(ctx context.Context, in SendInput) (Message, error) {
	msg := Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Body:    strings.TrimSpace(in.Message),
	}

	var errs validate.Errors
	errs.AddIf(msg.Name == "", "Name is required.")
	if msg.Email == "" {
		errs.Add("Email is required.")
	} else if !validate.Email(msg.Email) {
		errs.Add("Please enter a valid email address.")
	}
	errs.AddIf(msg.Subject == "", "Subject is required.")
	errs.AddIf(msg.Body == "", "Message cannot be empty.")

	if err := errs.Err(); err != nil {
		return Message{}, err
	}

	msg.ID = uuid.NewString()
	msg.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
