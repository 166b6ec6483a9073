package service

import (
	"errors"
	"testing"

	"github.com/biji-next/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPlainPassword(t *testing.T) {
	svc := NewAuthService(config.AdminConfig{Username: "admin", Password: "s3cret"})

	if err := svc.Verify("admin", "s3cret"); err != nil {
		t.Fatalf("valid credentials should pass, got %v", err)
	}
	if err := svc.Verify("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if err := svc.Verify("root", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong username want ErrInvalidCredentials got %v", err)
	}
}

func TestVerifyBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash failed: %v", err)
	}
	svc := NewAuthService(config.AdminConfig{Username: "admin", Password: string(hash)})

	if err := svc.Verify("admin", "s3cret"); err != nil {
		t.Fatalf("valid credentials should pass, got %v", err)
	}
	if err := svc.Verify("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
}

func TestVerifyMissingConfigAlwaysFails(t *testing.T) {
	svc := NewAuthService(config.AdminConfig{Username: "admin"})

	if err := svc.Verify("admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty configured password must fail, got %v", err)
	}
}
