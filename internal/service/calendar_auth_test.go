package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authDeps struct {
	repo     *mocks.MockCredentialRepo
	provider *mocks.MockOAuthProvider
	states   *mocks.MockOAuthStateStore
}

func newCalendarAuthService(t *testing.T) (*CalendarAuthService, authDeps) {
	t.Helper()
	d := authDeps{
		repo:     mocks.NewMockCredentialRepo(t),
		provider: mocks.NewMockOAuthProvider(t),
		states:   mocks.NewMockOAuthStateStore(t),
	}
	log := newTestLogger(t)
	creds := NewCredentialService(d.repo, d.provider, log)
	creds.now = func() time.Time { return credNow }
	return NewCalendarAuthService(creds, d.provider, d.states, log), d
}

func TestCalendarAuthService_Connect_ReturnsToken(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.repo.EXPECT().Get(mock.Anything, "u1").Return(&domain.Credential{
		UserID: "u1", AccessToken: "live", Expiry: credNow.Add(time.Hour),
	}, nil)

	res, err := svc.Connect(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "live", res.AccessToken)
	assert.Empty(t, res.URL)
}

func TestCalendarAuthService_Connect_ReturnsConsentURL(t *testing.T) {
	svc, d := newCalendarAuthService(t)
	var saved string

	d.repo.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrCredentialNotFound)
	d.states.EXPECT().Save(mock.Anything, mock.Anything, "u1").
		Run(func(_ context.Context, state, _ string) { saved = state }).
		Return(nil)
	d.provider.EXPECT().AuthCodeURL(mock.Anything).RunAndReturn(func(state string) string {
		return "https://accounts.example.com/auth?state=" + state
	})

	res, err := svc.Connect(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, res.AccessToken)
	require.NotEmpty(t, saved)
	assert.Equal(t, "https://accounts.example.com/auth?state="+saved, res.URL)
}

func TestCalendarAuthService_Callback_StoresCredential(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.states.EXPECT().Consume(mock.Anything, "st1").Return("u1", nil)
	d.provider.EXPECT().Exchange(mock.Anything, "code1").Return(&domain.Credential{
		AccessToken: "a1", RefreshToken: "r1", Expiry: credNow.Add(time.Hour),
	}, nil)
	d.repo.EXPECT().Upsert(mock.Anything, &domain.Credential{
		UserID: "u1", AccessToken: "a1", RefreshToken: "r1", Expiry: credNow.Add(time.Hour),
	}).Return(nil)

	require.NoError(t, svc.Callback(context.Background(), "code1", "st1"))
}

func TestCalendarAuthService_Callback_UnknownState(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.states.EXPECT().Consume(mock.Anything, "forged").Return("", domain.ErrInvalidOAuthState)

	err := svc.Callback(context.Background(), "code1", "forged")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCalendarAuthService_Callback_MissingCode(t *testing.T) {
	svc, _ := newCalendarAuthService(t)

	err := svc.Callback(context.Background(), "", "st1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarAuthService_Disconnect_RevokeFailureStillDeletes(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.repo.EXPECT().Get(mock.Anything, "u1").Return(&domain.Credential{
		UserID: "u1", AccessToken: "a1", RefreshToken: "r1",
	}, nil)
	d.provider.EXPECT().Revoke(mock.Anything, "r1").Return(errors.New("revoke endpoint down"))
	d.repo.EXPECT().Delete(mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.Disconnect(context.Background(), "u1"))
}

func TestCalendarAuthService_Disconnect_NotConnected(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.repo.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrCredentialNotFound)

	err := svc.Disconnect(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestCalendarAuthService_Connect_UnreadableCredentialRestartsConsent(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.repo.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrCredentialUnreadable)
	d.repo.EXPECT().Delete(mock.Anything, "u1").Return(nil)
	d.states.EXPECT().Save(mock.Anything, mock.AnythingOfType("string"), "u1").Return(nil)
	d.provider.EXPECT().AuthCodeURL(mock.AnythingOfType("string")).Return("https://consent.example/auth")

	res, err := svc.Connect(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "https://consent.example/auth", res.URL)
	assert.Empty(t, res.AccessToken)
}

func TestCalendarAuthService_Disconnect_UnreadableCredentialStillDeletes(t *testing.T) {
	svc, d := newCalendarAuthService(t)

	d.repo.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrCredentialUnreadable)
	d.repo.EXPECT().Delete(mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.Disconnect(context.Background(), "u1"))
}
