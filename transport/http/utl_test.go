package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/kuadroapp/kuadro"
	"github.com/kuadroapp/kuadro/testutil"
)

func Test_err2code(t *testing.T) {
	tt := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{errBadRequest, http.StatusBadRequest},
		{&kuadro.ValidationError{Fields: map[string]string{"email": "required"}}, http.StatusBadRequest},
		{kuadro.ErrEmailTaken, http.StatusBadRequest},
		{kuadro.ErrUsernameTaken, http.StatusBadRequest},
		{kuadro.ErrInvalidCredentials, http.StatusUnauthorized},
		{kuadro.ErrInvalidToken, http.StatusUnauthorized},
		{kuadro.ErrExpiredToken, http.StatusUnauthorized},
		{kuadro.ErrUnauthenticated, http.StatusUnauthorized},
		{kuadro.ErrImageNotFound, http.StatusNotFound},
		{kuadro.ErrImageUploadFailed, http.StatusInternalServerError},
		{errors.New("sql: connection is already closed"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", kuadro.ErrImageNotFound), http.StatusNotFound},
	}
	for _, tc := range tt {
		name := "nil"
		if tc.err != nil {
			name = tc.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.want, err2code(tc.err), "status code")
		})
	}
}
