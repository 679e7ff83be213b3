package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akhilkushwaha/portfolio-backend/internal/model"
	"github.com/akhilkushwaha/portfolio-backend/internal/repository"
	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeContactRepo struct {
	inserted []model.Contact
	insertFn func(model.Contact) (model.Contact, error)
}

func (f *fakeContactRepo) Insert(_ context.Context, c model.Contact) (model.Contact, error) {
	if f.insertFn != nil {
		return f.insertFn(c)
	}
	c.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, c)
	return c, nil
}

func (f *fakeContactRepo) ListRecent(_ context.Context, limit int64) ([]model.Contact, error) {
	if int64(len(f.inserted)) < limit {
		return f.inserted, nil
	}
	return f.inserted[:limit], nil
}

var _ repository.ContactRepository = (*fakeContactRepo)(nil)

func TestContactService_Submit_OK(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := service.NewContactService(repo, zerolog.Nop())

	contact, err := svc.Submit(context.Background(), service.ContactInput{
		Name:      "  Jane Doe ",
		Email:     "Jane@Example.COM",
		Message:   "Hello!",
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID.IsZero() {
		t.Fatal("expected a generated id")
	}
	if contact.Name != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", contact.Name)
	}
	if contact.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", contact.Email)
	}
	if contact.Status != model.ContactStatusPending {
		t.Fatalf("expected pending status, got %q", contact.Status)
	}
}

func TestContactService_Submit_AllFieldsOptional(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := service.NewContactService(repo, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), service.ContactInput{}); err != nil {
		t.Fatalf("empty submission must be accepted, got %v", err)
	}
}

func TestContactService_Submit_Validation(t *testing.T) {
	svc := service.NewContactService(&fakeContactRepo{}, zerolog.Nop())

	cases := []struct {
		name  string
		in    service.ContactInput
		field string
	}{
		{"name too long", service.ContactInput{Name: strings.Repeat("x", 101)}, "name"},
		{"bad email", service.ContactInput{Email: "not-an-email"}, "email"},
		{"bad website", service.ContactInput{Website: "::::"}, "website"},
		{"message too long", service.ContactInput{Message: strings.Repeat("x", 1001)}, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.in)
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			fields := service.FieldErrors(err)
			if len(fields) != 1 || fields[0].Field != tc.field {
				t.Fatalf("expected field error for %s, got %+v", tc.field, fields)
			}
		})
	}
}

func TestContactService_Submit_PersistenceFailure(t *testing.T) {
	repo := &fakeContactRepo{insertFn: func(model.Contact) (model.Contact, error) {
		return model.Contact{}, errors.New("write concern error")
	}}
	svc := service.NewContactService(repo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), service.ContactInput{Message: "hi"})
	if err == nil || err.Error() != "write concern error" {
		t.Fatalf("expected underlying persistence error, got %v", err)
	}
}

func TestContactService_ListRecent(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := service.NewContactService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), service.ContactInput{Message: "m"}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	contacts, err := svc.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(contacts))
	}
}
