package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/store"
	"github.com/MKhiriev/go-life-vault/models"
)

type tokenService struct {
	repo   store.CredentialRepository
	logger *logger.Logger
}

// NewTokenService builds the token facade over repo.
func NewTokenService(repo store.CredentialRepository, log *logger.Logger) TokenService {
	return &tokenService{repo: repo, logger: log}
}

func (s *tokenService) StoreTokens(ctx context.Context, accountID, provider string, record models.CredentialRecord) error {
	stored, err := s.repo.Put(ctx, accountID, provider, record)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "tokenService.StoreTokens").
		Str("provider", provider).
		Time("expires_at", stored.ExpiresAt()).
		Msg("tokens stored")
	return nil
}

func (s *tokenService) GetTokens(ctx context.Context, accountID, provider string) (*models.CredentialRecord, error) {
	rec, err := s.repo.Get(ctx, accountID, provider)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *tokenService) DeleteTokens(ctx context.Context, accountID, provider string) error {
	err := s.repo.Delete(ctx, accountID, provider)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (s *tokenService) ListTokens(ctx context.Context, provider string) ([]models.CredentialRecord, error) {
	return s.repo.List(ctx, provider)
}
