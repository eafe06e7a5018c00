package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/core/auth"
	"booknest/internal/domain"
	"booknest/internal/repo"
	"booknest/internal/testutil"
	"booknest/pkg/utils"
)

func newUserService(t *testing.T) (*UserService, *auth.JWTer) {
	t.Helper()
	db := testutil.NewTestDB(t)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "booknest", TTL: time.Hour}
	return NewUserService(repo.NewUserRepo(db), jwter), jwter
}

func TestRegisterThenLogin(t *testing.T) {
	svc, jwter := newUserService(t)

	id, err := svc.Register("alice", "alice@x.com", "pw1")
	require.NoError(t, err)
	require.NotZero(t, id)

	token, u, err := svc.Authenticate("alice@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.False(t, u.IsAdmin)

	// token claim mirrors the stored flag
	claims, err := jwter.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UID)
	assert.False(t, claims.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserService(t)

	for _, tc := range []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@x.com", ""},
	} {
		_, err := svc.Register(tc.username, tc.email, tc.password)
		assert.Equal(t, domain.CodeInvalidInput, appCode(t, err))
	}
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	// same username, fresh email
	_, err = svc.Register("alice", "fresh@x.com", "pw2")
	assert.Equal(t, domain.CodeConflict, appCode(t, err))

	// same email, fresh username
	_, err = svc.Register("fresh", "alice@x.com", "pw2")
	assert.Equal(t, domain.CodeConflict, appCode(t, err))
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	_, _, err = svc.Authenticate("alice@x.com", "wrong")
	assert.Equal(t, domain.CodeUnauthenticated, appCode(t, err))

	_, _, err = svc.Authenticate("nobody@x.com", "pw1")
	assert.Equal(t, domain.CodeUnauthenticated, appCode(t, err))
}

func TestAdminTokenCarriesClaim(t *testing.T) {
	svc, jwter := newUserService(t)

	id, err := svc.CreateUser("root", "root@x.com", "pw", true)
	require.NoError(t, err)

	token, _, err := svc.Authenticate("root@x.com", "pw")
	require.NoError(t, err)

	claims, err := jwter.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UID)
	assert.True(t, claims.IsAdmin)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	svc, _ := newUserService(t)

	id, err := svc.Register("alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	newPw := "pw2"
	u, err := svc.UpdateProfile(id, ProfileUpdate{Password: &newPw})
	require.NoError(t, err)

	assert.NotEqual(t, "pw2", u.PasswordHash)
	assert.True(t, utils.CheckPassword("pw2", u.PasswordHash))

	_, _, err = svc.Authenticate("alice@x.com", "pw1")
	assert.Error(t, err)
	_, _, err = svc.Authenticate("alice@x.com", "pw2")
	assert.NoError(t, err)
}

func TestSetAdminFlagBothWays(t *testing.T) {
	svc, _ := newUserService(t)

	id, err := svc.Register("alice", "alice@x.com", "pw1")
	require.NoError(t, err)

	require.NoError(t, svc.SetAdminFlag(id, true))
	u, err := svc.Profile(id)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)

	require.NoError(t, svc.SetAdminFlag(id, false))
	u, err = svc.Profile(id)
	require.NoError(t, err)
	assert.False(t, u.IsAdmin)
}
