package auth

import (
	"context"
	"strings"

	autherrors "go-ems/internal/auth/errors"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

type staticRepository struct {
	admin Admin
}

// NewStaticRepository serves the one admin account built from configuration.
func NewStaticRepository(admin Admin) Repository {
	return &staticRepository{admin: admin}
}

func (r *staticRepository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	if !strings.EqualFold(strings.TrimSpace(email), r.admin.Email) {
		return nil, autherrors.ErrAdminNotFound
	}
	admin := r.admin
	return &admin, nil
}
