package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kuadroapp/kuadro"
)

type signupReqBody kuadro.SignupInput

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var reqBody signupReqBody
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		h.respondErr(w, errBadRequest)
		return
	}

	out, err := h.svc.Signup(r.Context(), kuadro.SignupInput(reqBody))
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

type loginReqBody kuadro.LoginInput

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var reqBody loginReqBody
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		h.respondErr(w, errBadRequest)
		return
	}

	out, err := h.svc.Login(r.Context(), kuadro.LoginInput(reqBody))
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) authUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.AuthUser(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, u, http.StatusOK)
}

// withAuth decodes the bearer token, if any, and leaves the embedded user ID
// in the request context. Handlers needing auth reject from there; a present
// but bad token is rejected right away.
func (h *handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if a := r.Header.Get("Authorization"); strings.HasPrefix(a, "Bearer ") {
			token = a[7:]
		}

		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		uid, err := h.svc.AuthUserIDFromToken(token)
		if err != nil {
			h.respondErr(w, err)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, kuadro.KeyAuthUserID, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
