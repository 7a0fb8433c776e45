package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/mock"
	"github.com/MKhiriev/go-life-vault/internal/store"
	"github.com/MKhiriev/go-life-vault/models"
)

func newTestTokenSvc(t *testing.T) (TokenService, *mock.MockCredentialRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)
	return NewTokenService(repo, logger.Nop()), repo
}

func TestTokenService_StoreTokens(t *testing.T) {
	svc, repo := newTestTokenSvc(t)
	ctx := context.Background()
	rec := models.CredentialRecord{AccessToken: "ya29", ExpiresIn: 3600, TokenType: "Bearer"}

	repo.EXPECT().Put(ctx, "google-gmail", "google", rec).DoAndReturn(
		func(_ context.Context, accountID, provider string, r models.CredentialRecord) (models.CredentialRecord, error) {
			r.AccountID, r.Provider, r.StoredAt = accountID, provider, time.Now()
			return r, nil
		},
	)

	require.NoError(t, svc.StoreTokens(ctx, "google-gmail", "google", rec))
}

func TestTokenService_StoreTokens_ValidationError(t *testing.T) {
	svc, repo := newTestTokenSvc(t)

	repo.EXPECT().Put(gomock.Any(), "", "google", gomock.Any()).Return(models.CredentialRecord{}, store.ErrInvalidKey)

	err := svc.StoreTokens(context.Background(), "", "google", models.CredentialRecord{AccessToken: "a"})
	assert.ErrorIs(t, err, store.ErrInvalidKey)
}

func TestTokenService_GetTokens(t *testing.T) {
	svc, repo := newTestTokenSvc(t)
	ctx := context.Background()
	want := models.CredentialRecord{AccountID: "me", Provider: "google", AccessToken: "ya29"}

	gomock.InOrder(
		repo.EXPECT().Get(ctx, "me", "google").Return(want, nil),
		repo.EXPECT().Get(ctx, "ghost", "google").Return(models.CredentialRecord{}, store.ErrNotFound),
		repo.EXPECT().Get(ctx, "me", "google").Return(models.CredentialRecord{}, errors.New("disk")),
	)

	got, err := svc.GetTokens(ctx, "me", "google")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	got, err = svc.GetTokens(ctx, "ghost", "google")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetTokens(ctx, "me", "google")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestTokenService_DeleteTokens_Idempotent(t *testing.T) {
	svc, repo := newTestTokenSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, "me", "google").Return(nil),
		repo.EXPECT().Delete(ctx, "me", "google").Return(store.ErrNotFound),
	)

	assert.NoError(t, svc.DeleteTokens(ctx, "me", "google"))
	assert.NoError(t, svc.DeleteTokens(ctx, "me", "google"))
}

func TestTokenService_ListTokens(t *testing.T) {
	svc, repo := newTestTokenSvc(t)
	ctx := context.Background()
	recs := []models.CredentialRecord{{AccountID: "a", Provider: "google"}, {AccountID: "b", Provider: "google"}}

	repo.EXPECT().List(ctx, "google").Return(recs, nil)

	got, err := svc.ListTokens(ctx, "google")
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

// TestTokenService_OverwriteSemantics runs against the real store.
func TestTokenService_OverwriteSemantics(t *testing.T) {
	svc := NewTokenService(store.NewCredentialStore(store.NewMemoryBackend(), nil, logger.Nop()), logger.Nop())
	ctx := context.Background()

	r1 := models.CredentialRecord{AccessToken: "one", RefreshToken: "r1", Scope: "a b"}
	r2 := models.CredentialRecord{AccessToken: "two"}

	require.NoError(t, svc.StoreTokens(ctx, "me", "google", r1))
	require.NoError(t, svc.StoreTokens(ctx, "me", "google", r2))

	got, err := svc.GetTokens(ctx, "me", "google")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "two", got.AccessToken)
	assert.Empty(t, got.RefreshToken)
	assert.Empty(t, got.Scope)
}
