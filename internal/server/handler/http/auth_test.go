package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/service"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	seller      *models.Seller
	loginErr    error
	registerErr error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*models.Seller, error) {
	return f.seller, f.loginErr
}

func (f *fakeAuthService) Register(ctx context.Context, email, password, firstName, lastName, phone string) (*models.Seller, error) {
	return f.seller, f.registerErr
}

// fakeIssuer implements TokenIssuer for testing.
type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) Issue(sellerID string) (string, error) { return f.token, f.err }

func TestAuthHandler_Login(t *testing.T) {
	seller := &models.Seller{ID: "s1", Email: "jane@shop.com", FirstName: "Jane"}

	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		issuer         *fakeIssuer
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			issuer:         &fakeIssuer{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty email",
			body:           `{"email":"","password":"pw"}`,
			service:        &fakeAuthService{},
			issuer:         &fakeIssuer{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "wrong credentials",
			body:           `{"email":"jane@shop.com","password":"bad"}`,
			service:        &fakeAuthService{loginErr: service.ErrInvalidCredentials},
			issuer:         &fakeIssuer{},
			expectedCode:   http.StatusUnauthorized,
			expectedSubstr: "invalid credentials",
		},
		{
			name:           "service failure",
			body:           `{"email":"jane@shop.com","password":"pw"}`,
			service:        &fakeAuthService{loginErr: errors.New("db down")},
			issuer:         &fakeIssuer{},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name:           "issuer failure",
			body:           `{"email":"jane@shop.com","password":"pw"}`,
			service:        &fakeAuthService{seller: seller},
			issuer:         &fakeIssuer{err: errors.New("no key")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "failed to issue token",
		},
		{
			name:           "success",
			body:           `{"email":"jane@shop.com","password":"pw"}`,
			service:        &fakeAuthService{seller: seller},
			issuer:         &fakeIssuer{token: "tok-123"},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"token":"tok-123"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{Auth: tt.service, Tokens: tt.issuer}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `{{`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "email taken",
			body:         `{"email":"jane@shop.com","password":"longenough"}`,
			service:      &fakeAuthService{registerErr: service.ErrEmailTaken},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "validation failure",
			body:         `{"email":"bad","password":"short"}`,
			service:      &fakeAuthService{registerErr: service.ErrValidation},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "success",
			body:         `{"email":"new@shop.com","password":"longenough"}`,
			service:      &fakeAuthService{seller: &models.Seller{ID: "s2", Email: "new@shop.com"}},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{Auth: tt.service, Tokens: &fakeIssuer{token: "tok"}}
			h.Register(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestAuthHandler_LoginResponseShape(t *testing.T) {
	seller := &models.Seller{ID: "s1", Email: "jane@shop.com", FirstName: "Jane"}
	h := &AuthHandler{
		Auth:   &fakeAuthService{seller: seller},
		Tokens: &fakeIssuer{token: "tok-123"},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login",
		bytes.NewBufferString(`{"email":"jane@shop.com","password":"pw"}`))
	h.Login(rec, req)

	var resp tokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Errorf("token = %q; want %q", resp.Token, "tok-123")
	}
	if resp.Seller == nil || resp.Seller.FirstName != "Jane" {
		t.Errorf("unexpected seller: %+v", resp.Seller)
	}
}
