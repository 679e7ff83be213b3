package service

import (
	"context"
	"errors"
	"strings"

	"github.com/akhilkushwaha/portfolio-backend/internal/model"
	"github.com/akhilkushwaha/portfolio-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type contactService struct {
	contacts repository.ContactRepository
	validate *validator.Validate
	log      zerolog.Logger
}

// NewContactService wires the contact-form use cases.
func NewContactService(contacts repository.ContactRepository, logger zerolog.Logger) ContactService {
	l := logger.With().Str("module", "service").Str("component", "contact").Logger()
	return &contactService{contacts: contacts, validate: validator.New(), log: l}
}

// Submit validates and persists one contact-form submission. Every field is
// optional; validation only enforces the stored format hints.
func (s *contactService) Submit(ctx context.Context, in ContactInput) (model.Contact, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Website = strings.TrimSpace(in.Website)
	in.Message = strings.TrimSpace(in.Message)

	if err := s.validate.Struct(&in); err != nil {
		return model.Contact{}, NewInvalidInputError(fieldErrorsFrom(err))
	}

	contact, err := s.contacts.Insert(ctx, model.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Website:   in.Website,
		Message:   in.Message,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		Referrer:  in.Referrer,
		Status:    model.ContactStatusPending,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("contact insert failed")
		return model.Contact{}, err
	}

	s.log.Info().Str("id", contact.ID.Hex()).Msg("contact submission stored")
	return contact, nil
}

// ListRecent returns the newest submissions for the admin view.
func (s *contactService) ListRecent(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.ListRecent(ctx, 50)
}

// fieldErrorsFrom flattens validator output into the API's field errors.
func fieldErrorsFrom(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "max":
			msg = "cannot exceed " + fe.Param() + " characters"
		case "email":
			msg = "must be a valid email address"
		case "url":
			msg = "must be a valid URL"
		default:
			msg = "is invalid"
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
