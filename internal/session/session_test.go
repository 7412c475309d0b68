package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, 0)
}

func TestGuestSeesNoRecipients(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Nobody signed in yet: still a guest session.
	require.True(t, svc.IsGuest())
	got, err := svc.Recipients(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	svc.ContinueAsGuest()
	require.True(t, svc.IsGuest())
	got, err = svc.Recipients(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// The store itself still holds the seeded recipients.
	stored, err := svc.Store().ListRecipients(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestSignInRevealsRecipients(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.SignIn(ctx, "abebe@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abebe", user.Name)
	assert.False(t, svc.IsGuest())

	got, err := svc.Recipients(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestSignIn_RequiresInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SignIn(context.Background(), "", "secret")
	assert.Error(t, err)

	_, err = svc.SignIn(context.Background(), "abebe@example.com", "")
	assert.Error(t, err)
	assert.True(t, svc.IsGuest())
}

func TestSignUpAndSignOut(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.SignUp(context.Background(), "Abebe Kebede", "abebe@example.com", "+1 555 0100", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Abebe Kebede", user.Name)
	assert.False(t, svc.IsGuest())

	svc.SignOut()
	assert.True(t, svc.IsGuest())
	assert.Nil(t, svc.User())
}

func TestGuestCannotSaveRecipients(t *testing.T) {
	svc := newTestService(t)
	svc.ContinueAsGuest()

	err := svc.AddRecipient(context.Background(), &model.Recipient{Name: "X", Phone: "1"})
	assert.Error(t, err)
}

func TestSetLanguage(t *testing.T) {
	svc := newTestService(t)
	svc.ContinueAsGuest()

	assert.Equal(t, "en", svc.Language())
	require.NoError(t, svc.SetLanguage("am"))
	assert.Equal(t, "am", svc.Language())
	assert.Error(t, svc.SetLanguage("fr"))
}
