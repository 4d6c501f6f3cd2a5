package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCredential_Constructors(t *testing.T) {
	userID := uuid.New()

	user := AuthenticatedUser(userID)
	assert.True(t, user.IsAuthenticated())
	assert.False(t, user.HasLinkToken())

	bearer := LinkBearer("tok").WithSession("sess")
	assert.False(t, bearer.IsAuthenticated())
	assert.True(t, bearer.HasLinkToken())
	assert.Equal(t, "sess", bearer.SessionKey)

	both := bearer.WithUser(userID)
	assert.True(t, both.IsAuthenticated())
	assert.Equal(t, userID, *both.UserID)
	assert.False(t, bearer.IsAuthenticated(), "WithUser must not mutate the receiver")
}

func TestCredential_IsEmpty(t *testing.T) {
	assert.True(t, Credential{}.IsEmpty())
	assert.True(t, Credential{UserID: &uuid.Nil}.IsEmpty())
	assert.False(t, LinkBearer("x").IsEmpty())
}
