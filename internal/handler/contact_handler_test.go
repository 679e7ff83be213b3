package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/model"
	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContactHandler_Submit_Created(t *testing.T) {
	id := primitive.NewObjectID()
	stub := &stubContactService{contact: model.Contact{
		ID:        id,
		Name:      "Jane",
		Email:     "jane@example.com",
		Status:    model.ContactStatusPending,
		CreatedAt: time.Now(),
	}}
	r := newRouter(nil, stub, nil)

	body, _ := json.Marshal(map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hi there",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Success || resp.Data.ID != id.Hex() || resp.Data.Email != "jane@example.com" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if resp.Message == "" {
		t.Fatal("expected a confirmation message")
	}
}

func TestContactHandler_Submit_ValidationFailure(t *testing.T) {
	stub := &stubContactService{err: service.NewInvalidInputError([]service.FieldError{
		{Field: "email", Message: "must be a valid email address"},
	})}
	r := newRouter(nil, stub, nil)

	body, _ := json.Marshal(map[string]string{"email": "nope"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Success || resp.Message == "" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestContactHandler_Submit_MalformedBody(t *testing.T) {
	r := newRouter(nil, &stubContactService{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json"))))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestContactHandler_Admin_ListRecent(t *testing.T) {
	stub := &stubContactService{list: []model.Contact{
		{Name: "Newest"},
		{Name: "Older"},
	}}
	r := newRouter(nil, stub, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact/admin", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Success bool            `json:"success"`
		Data    []model.Contact `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Success || len(resp.Data) != 2 || resp.Data[0].Name != "Newest" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
