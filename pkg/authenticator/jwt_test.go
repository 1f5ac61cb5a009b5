package authenticator_test

import (
	"testing"
	"time"

	"github.com/ekranoplan/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type session struct {
	ID int64 `json:"id,string"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[session]("secret", time.Minute)
	token, err := engine.Generate("1", session{ID: 1070885219381252096})
	require.NoError(t, err)

	got, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(1070885219381252096), got.ID)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[session]("secret", -time.Minute)
	token, err := engine.Generate("1", session{ID: 1})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := authenticator.NewTokenEngine[session]("secret", time.Minute).Generate("1", session{ID: 1})
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine[session]("other", time.Minute).Verify(token)
	require.Error(t, err)

	_, err = authenticator.NewTokenEngine[session]("secret", time.Minute).Verify("not-a-token")
	require.Error(t, err)
}
