package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/library-membership/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestIssuer_NewTokenParse(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Secret: "secret", TokenTTL: time.Hour})

	token, exp, err := issuer.NewToken("alice")
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)

	other := auth.NewIssuer(auth.Config{Secret: "other", TokenTTL: time.Hour})
	_, err = other.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssuer_Expired(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Secret: "secret", TokenTTL: -time.Minute})

	token, _, err := issuer.NewToken("bob")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUserNameContext(t *testing.T) {
	t.Parallel()
	_, err := auth.GetUserName(context.Background())
	require.Error(t, err)

	name, err := auth.GetUserName(auth.SetUserName(context.Background(), "carol"))
	require.NoError(t, err)
	require.Equal(t, "carol", name)
}
