package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequireAuth_RejectionsIdentical(t *testing.T) {
	router := newTestRouter(t)

	// A registered user whose token works, to prove the gate is otherwise open.
	w := doJSON(t, router, http.MethodPost, "/register", `{"email":"a@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cases := []struct {
		name    string
		headers map[string]string
	}{
		{"missing header", nil},
		{"wrong scheme", map[string]string{"Authorization": "Basic abc"}},
		{"lowercase bearer", map[string]string{"Authorization": "bearer a@x.com"}},
		{"empty token", map[string]string{"Authorization": "Bearer "}},
		{"unknown user", map[string]string{"Authorization": "Bearer ghost@x.com"}},
	}

	var firstBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/pix", "", tc.headers)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			if firstBody == "" {
				firstBody = w.Body.String()
				return
			}
			// Every rejection path must be externally identical.
			require.Equal(t, firstBody, w.Body.String())
		})
	}
}

func TestRequireAuth_AcceptsValidToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/register", `{"email":"a@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// The plain scheme mints the email itself as the token.
	w = doJSON(t, router, http.MethodGet, "/pix", "", map[string]string{
		"Authorization": "Bearer a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
}
