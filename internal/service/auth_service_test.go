package service

import (
	"context"
	"testing"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/pkg/scalekit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentityProvider struct {
	identity *scalekit.Identity
	err      error
	calls    int
}

func (p *fakeIdentityProvider) AuthorizationURL(state string) string {
	return "https://auth.example.com/oauth/authorize?state=" + state
}

func (p *fakeIdentityProvider) AuthenticateWithCode(ctx context.Context, code string) (*scalekit.Identity, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.identity, nil
}

func TestHandleCallbackCreatesUser(t *testing.T) {
	store := newFakeStore()
	provider := &fakeIdentityProvider{identity: &scalekit.Identity{
		Email:          "new@example.com",
		Name:           "New User",
		OrganizationId: "org_123",
	}}
	svc := NewAuthService(newFakeFactory(store), provider, nopLogger{})

	user, err := svc.HandleCallback(context.Background(), "code123")
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "org_123", user.OrganizationId)
	require.Len(t, store.users, 1)
	assert.Equal(t, "New User", store.users[0].Name)
}

func TestHandleCallbackUpsertsByEmail(t *testing.T) {
	store := newFakeStore()
	store.users = []*entity.User{{
		Id:             uuid.New(),
		Email:          "existing@example.com",
		Name:           "Old Name",
		OrganizationId: "org_old",
	}}
	provider := &fakeIdentityProvider{identity: &scalekit.Identity{
		Email:          "existing@example.com",
		Name:           "New Name",
		OrganizationId: "org_new",
	}}
	svc := NewAuthService(newFakeFactory(store), provider, nopLogger{})

	user, err := svc.HandleCallback(context.Background(), "code123")
	require.NoError(t, err)

	assert.Equal(t, "org_new", user.OrganizationId)
	require.Len(t, store.users, 1)
	assert.Equal(t, "New Name", store.users[0].Name)
	assert.Equal(t, "org_new", store.users[0].OrganizationId)
}

func TestHandleCallbackMissingOrganization(t *testing.T) {
	store := newFakeStore()
	provider := &fakeIdentityProvider{err: scalekit.ErrMissingOrganization}
	svc := NewAuthService(newFakeFactory(store), provider, nopLogger{})

	_, err := svc.HandleCallback(context.Background(), "code123")

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Empty(t, store.users)
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	store := newFakeStore()
	provider := &fakeIdentityProvider{err: assert.AnError}
	svc := NewAuthService(newFakeFactory(store), provider, nopLogger{})

	_, err := svc.HandleCallback(context.Background(), "badcode")

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
	assert.Empty(t, store.users)
}
