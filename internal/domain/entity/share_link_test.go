package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

func newTestFolder(t *testing.T) *Entry {
	t.Helper()
	folder, err := NewFolder("Docs", nil, uuid.New())
	require.NoError(t, err)
	return folder
}

func TestNewDefaultShareLink(t *testing.T) {
	folder := newTestFolder(t)

	link, err := NewDefaultShareLink(folder, folder.OwnerID)

	require.NoError(t, err)
	assert.Equal(t, authz.AccessRead, link.Access)
	assert.True(t, link.Primary)
	assert.False(t, link.Internal)
	assert.Nil(t, link.ExpiresAt)
	assert.False(t, link.Token.IsEmpty())
	assert.NotEqual(t, folder.ID, link.ID)
}

func TestNewShareLink_NoneAccess_ReturnsError(t *testing.T) {
	_, err := NewShareLink(newTestFolder(t), authz.AccessNone, false, uuid.New())

	assert.ErrorIs(t, err, ErrShareLinkAccessNone)
}

func TestShareLink_IsExpired(t *testing.T) {
	link, err := NewDefaultShareLink(newTestFolder(t), uuid.New())
	require.NoError(t, err)
	now := time.Now()

	assert.False(t, link.IsExpired(now))

	require.NoError(t, link.UpdateExpiry(ptrTime(now.Add(time.Second)), now))
	assert.False(t, link.IsExpired(now))
	assert.True(t, link.IsExpired(now.Add(2*time.Second)))
	assert.False(t, link.IsLive(now.Add(2*time.Second)))
}

func TestShareLink_UpdateExpiry_PastIsRejected(t *testing.T) {
	link, err := NewDefaultShareLink(newTestFolder(t), uuid.New())
	require.NoError(t, err)
	now := time.Now()

	err = link.UpdateExpiry(ptrTime(now.Add(-time.Minute)), now)

	assert.ErrorIs(t, err, ErrShareLinkExpiryInPast)
	assert.Nil(t, link.ExpiresAt)
}

func TestShareLink_Password(t *testing.T) {
	link, err := NewDefaultShareLink(newTestFolder(t), uuid.New())
	require.NoError(t, err)
	assert.NoError(t, link.ValidatePassword("anything"))
	assert.Empty(t, link.PasswordStamp())

	pw, err := valueobject.NewLinkPassword("open-sesame")
	require.NoError(t, err)
	link.UpdatePassword(&pw)

	assert.True(t, link.RequiresPassword())
	assert.NoError(t, link.ValidatePassword("open-sesame"))
	assert.ErrorIs(t, link.ValidatePassword("nope"), ErrShareLinkInvalidPassword)
	assert.NotEmpty(t, link.PasswordStamp())

	link.UpdatePassword(nil)
	assert.False(t, link.RequiresPassword())
}

func TestShareLink_ForcePublic(t *testing.T) {
	link, err := NewDefaultShareLink(newTestFolder(t), uuid.New())
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, link.UpdateExpiry(ptrTime(now.Add(24*time.Hour)), now))
	link.UpdateInternal(true)

	link.ForcePublic()

	assert.Nil(t, link.ExpiresAt)
	assert.False(t, link.Internal)
}

func TestShareLink_Replacement_HasNewIdentity(t *testing.T) {
	folder := newTestFolder(t)
	link, err := NewDefaultShareLink(folder, folder.OwnerID)
	require.NoError(t, err)

	repl, err := link.Replacement(folder, folder.OwnerID)

	require.NoError(t, err)
	assert.NotEqual(t, link.ID, repl.ID)
	assert.False(t, link.Token.Equals(repl.Token))
	assert.True(t, repl.Primary)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
