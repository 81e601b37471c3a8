package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := testConfig()
	return NewAuthService(newTestDB(t), cfg, NewNotifier(cfg))
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resp.Email)
	assert.NotEmpty(t, resp.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginIssuesToken(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(newTestDB(t), cfg, NewNotifier(cfg))

	reg, err := svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, reg.UserID.String(), claims["userId"])
	assert.Equal(t, "a@b.com", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	// 7-day expiry
	assert.InDelta(t, 7*24*3600, exp-iat, 1)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginSecrecy(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(&dto.LoginRequest{Email: "nobody@b.com", Password: "pw123456"})
	_, wrongPassErr := svc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "wrong-pass"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestLoginRejectsUserWithoutCredentialHash(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	svc := NewAuthService(db, cfg, NewNotifier(cfg))

	user := seedUser(t, db, "")
	require.NoError(t, db.Model(user).Update("password_hash", "").Error)

	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
