package valueobject_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

func TestNewLinkPassword_Verify(t *testing.T) {
	p, err := valueobject.NewLinkPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, p.IsSet())
	assert.NotEqual(t, "s3cret", p.Hash())
	assert.True(t, p.Verify("s3cret"))
	assert.False(t, p.Verify("wrong"))
}

func TestNewLinkPassword_Invalid(t *testing.T) {
	_, err := valueobject.NewLinkPassword("")
	assert.ErrorIs(t, err, valueobject.ErrLinkPasswordEmpty)

	_, err = valueobject.NewLinkPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, valueobject.ErrLinkPasswordTooLong)
}

func TestLinkPassword_StampChangesWithPassword(t *testing.T) {
	a, err := valueobject.NewLinkPassword("one")
	require.NoError(t, err)
	b, err := valueobject.NewLinkPassword("one")
	require.NoError(t, err)

	assert.NotEmpty(t, a.Stamp())
	assert.Equal(t, a.Stamp(), valueobject.LinkPasswordFromHash(a.Hash()).Stamp())
	assert.NotEqual(t, a.Stamp(), b.Stamp(), "re-hashing produces a new salt and so a new stamp")
	assert.Empty(t, valueobject.LinkPassword{}.Stamp())
	assert.False(t, valueobject.LinkPassword{}.Verify(""))
}
