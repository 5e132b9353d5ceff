package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/repository"
)

type mockSellerRepo struct {
	GetByEmailFunc    func(ctx context.Context, email string) (*models.Seller, error)
	GetByIDFunc       func(ctx context.Context, id string) (*models.Seller, error)
	EmailExistsFunc   func(ctx context.Context, email string) (bool, error)
	CreateFunc        func(ctx context.Context, s *models.Seller) error
	UpdateProfileFunc func(ctx context.Context, id string, p models.UserProfile) error
	UpdateBankFunc    func(ctx context.Context, id, holder, bank, branch, account string) error
	UpdateShopFunc    func(ctx context.Context, id, name, description string) error
}

func (m *mockSellerRepo) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *mockSellerRepo) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockSellerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.EmailExistsFunc(ctx, email)
}
func (m *mockSellerRepo) Create(ctx context.Context, s *models.Seller) error {
	return m.CreateFunc(ctx, s)
}
func (m *mockSellerRepo) UpdateProfile(ctx context.Context, id string, p models.UserProfile) error {
	return m.UpdateProfileFunc(ctx, id, p)
}
func (m *mockSellerRepo) UpdateBank(ctx context.Context, id, holder, bank, branch, account string) error {
	return m.UpdateBankFunc(ctx, id, holder, bank, branch, account)
}
func (m *mockSellerRepo) UpdateShop(ctx context.Context, id, name, description string) error {
	return m.UpdateShopFunc(ctx, id, name, description)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	repo := &mockSellerRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Seller, error) {
			if email != "jane@shop.com" {
				t.Errorf("GetByEmail received email = %q; want %q", email, "jane@shop.com")
			}
			return &models.Seller{ID: "s1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo)

	seller, err := svc.Login(context.Background(), "Jane@Shop.com", "hunter22")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if seller.ID != "s1" {
		t.Errorf("Login seller ID = %q; want %q", seller.ID, "s1")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	repo := &mockSellerRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Seller, error) {
			return &models.Seller{ID: "s1", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "jane@shop.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v; want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockSellerRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Seller, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@shop.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v; want ErrInvalidCredentials", err)
	}
}

func TestLogin_EmptyFields(t *testing.T) {
	svc := NewAuthService(&mockSellerRepo{})
	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v; want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v; want ErrInvalidCredentials", err)
	}
}

func TestRegister_Success(t *testing.T) {
	var created *models.Seller
	repo := &mockSellerRepo{
		EmailExistsFunc: func(ctx context.Context, email string) (bool, error) { return false, nil },
		CreateFunc: func(ctx context.Context, s *models.Seller) error {
			created = s
			return nil
		},
	}
	svc := NewAuthService(repo)

	seller, err := svc.Register(context.Background(), "New@Shop.com", "longenough", "New", "Seller", "777")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatal("expected Create to be called with an assigned ID")
	}
	if seller.Email != "new@shop.com" {
		t.Errorf("Register email = %q; want lowercased %q", seller.Email, "new@shop.com")
	}
	if bcrypt.CompareHashAndPassword(seller.PasswordHash, []byte("longenough")) != nil {
		t.Error("stored hash does not match password")
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &mockSellerRepo{
		EmailExistsFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), "jane@shop.com", "longenough", "", "", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register error = %v; want ErrEmailTaken", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(&mockSellerRepo{})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "longenough"},
		{"short password", "a@b.c", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password, "", "", "")
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Register error = %v; want ErrValidation", err)
			}
		})
	}
}

func TestUpdateBank_Validation(t *testing.T) {
	svc := NewAuthService(&mockSellerRepo{})
	err := svc.UpdateBank(context.Background(), "s1", "", "Bank", "Branch", "123")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("UpdateBank error = %v; want ErrValidation", err)
	}
}

func TestUpdateShop_Delegates(t *testing.T) {
	called := false
	repo := &mockSellerRepo{
		UpdateShopFunc: func(ctx context.Context, id, name, description string) error {
			called = true
			if id != "s1" || name != "Shop" {
				t.Errorf("UpdateShop received (%q, %q)", id, name)
			}
			return nil
		},
	}
	svc := NewAuthService(repo)

	if err := svc.UpdateShop(context.Background(), "s1", "Shop", "desc"); err != nil {
		t.Fatalf("UpdateShop returned error: %v", err)
	}
	if !called {
		t.Fatal("expected UpdateShop to be called on repo")
	}
}
