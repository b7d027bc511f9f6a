package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-0123"

func TestVerifier_IssueAndVerify(t *testing.T) {
	v := NewVerifier(testSecret)

	token, err := v.Issue(Principal{ID: "user-42", Email: "ana@example.com"}, time.Hour)
	require.NoError(t, err)

	p, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{ID: "user-42", Email: "ana@example.com"}, p)
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier(testSecret)
	expired, err := v.Issue(Principal{ID: "user-42"}, -time.Minute)
	require.NoError(t, err)
	otherKey, err := NewVerifier("another-secret-entirely").Issue(Principal{ID: "user-42"}, time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":      "",
		"garbage":    "not.a.valid.jwt",
		"expired":    expired,
		"wrong key":  otherKey,
		"no subject": noSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(token)
			assert.Error(t, err)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "", BearerToken("Basic xyz"))
	assert.Equal(t, "", BearerToken("Bearer "))
	assert.Equal(t, "", BearerToken(""))
}

func TestPrincipalFrom_DefaultsToSharedUser(t *testing.T) {
	assert.Equal(t, Principal{}, PrincipalFrom(context.Background()))
}

func TestMiddleware(t *testing.T) {
	v := NewVerifier(testSecret)
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, v))

	type whoAmIOutput struct {
		Body struct {
			ID string `json:"id"`
		}
	}
	huma.Register(api, huma.Operation{
		OperationID: "who-am-i",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		out.Body.ID = PrincipalFrom(ctx).ID
		return out, nil
	})

	resp := api.Get("/whoami")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Get("/whoami", "Authorization: Basic xyz")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	token, err := v.Issue(Principal{ID: "user-42"}, time.Hour)
	require.NoError(t, err)
	resp = api.Get("/whoami", "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"user-42"`)
}
