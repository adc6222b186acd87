package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-kit/log"

	"github.com/kuadroapp/kuadro"
	"github.com/kuadroapp/kuadro/testutil"
	"github.com/kuadroapp/kuadro/transport"
)

func testServer(t *testing.T, svc *transport.ServiceMock) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(New(svc, log.NewNopLogger(), http.NotFoundHandler()))
	t.Cleanup(srv.Close)
	return srv
}

func decodeErrResp(t *testing.T, resp *http.Response) errRespBody {
	t.Helper()

	var body errRespBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("could not json decode error response body: %v", err)
	}
	return body
}

func Test_handler_signup(t *testing.T) {
	validBody := []byte(`{"username":"gopher","email":"gopher@example.org","password":"secret1"}`)

	tt := []struct {
		name     string
		body     []byte
		svc      *transport.ServiceMock
		testResp func(*testing.T, *http.Response)
	}{
		{
			name: "malformed_request_body",
			body: []byte(`nope`),
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusBadRequest, resp.StatusCode, "status code")
				testutil.AssertEqual(t, "bad request", decodeErrResp(t, resp).Message, "message")
			},
		},
		{
			name: "validation_failure",
			body: []byte(`{}`),
			svc: &transport.ServiceMock{
				SignupFunc: func(context.Context, kuadro.SignupInput) (kuadro.AuthOutput, error) {
					return kuadro.AuthOutput{}, &kuadro.ValidationError{Fields: map[string]string{
						"username": "required",
						"email":    "required",
						"password": "required",
					}}
				},
			},
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusBadRequest, resp.StatusCode, "status code")
				body := decodeErrResp(t, resp)
				testutil.AssertEqual(t, "validation failed", body.Message, "message")
				testutil.AssertEqual(t, 3, len(body.Errors), "field errors")
				testutil.AssertEqual(t, "required", body.Errors["email"], "email field error")
			},
		},
		{
			name: "email_taken",
			body: validBody,
			svc: &transport.ServiceMock{
				SignupFunc: func(context.Context, kuadro.SignupInput) (kuadro.AuthOutput, error) {
					return kuadro.AuthOutput{}, kuadro.ErrEmailTaken
				},
			},
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusBadRequest, resp.StatusCode, "status code")
				testutil.AssertEqual(t, "email taken", decodeErrResp(t, resp).Message, "message")
			},
		},
		{
			name: "internal_error",
			body: validBody,
			svc: &transport.ServiceMock{
				SignupFunc: func(context.Context, kuadro.SignupInput) (kuadro.AuthOutput, error) {
					return kuadro.AuthOutput{}, errors.New("sql: connection is already closed")
				},
			},
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusInternalServerError, resp.StatusCode, "status code")
				testutil.AssertEqual(t, "internal server error", decodeErrResp(t, resp).Message, "message")
			},
		},
		{
			name: "ok",
			body: validBody,
			svc: &transport.ServiceMock{
				SignupFunc: func(_ context.Context, in kuadro.SignupInput) (kuadro.AuthOutput, error) {
					return kuadro.AuthOutput{
						User: kuadro.User{
							ID:       "ce94eee8-4914-4cf0-8f3e-79a92b8d77a1",
							Username: in.Username,
							Email:    in.Email,
						},
						Token:     "token-value",
						ExpiresAt: time.Now().Add(time.Hour),
					}, nil
				},
			},
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusCreated, resp.StatusCode, "status code")

				var out kuadro.AuthOutput
				err := json.NewDecoder(resp.Body).Decode(&out)
				testutil.AssertEqual(t, nil, err, "json decode")
				testutil.AssertEqual(t, "gopher", out.User.Username, "username")
				testutil.AssertEqual(t, "token-value", out.Token, "token")
			},
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			srv := testServer(t, tc.svc)

			resp, err := http.Post(srv.URL+"/api/v1/auth/signup", "application/json", bytes.NewReader(tc.body))
			if err != nil {
				t.Fatalf("failed to do signup request: %v", err)
			}

			defer resp.Body.Close()

			tc.testResp(t, resp)
		})
	}
}

func Test_handler_login(t *testing.T) {
	tt := []struct {
		name     string
		body     []byte
		svc      *transport.ServiceMock
		testResp func(*testing.T, *http.Response)
	}{
		{
			name: "invalid_credentials",
			body: []byte(`{"email":"gopher@example.org","password":"wrong"}`),
			svc: &transport.ServiceMock{
				LoginFunc: func(context.Context, kuadro.LoginInput) (kuadro.AuthOutput, error) {
					return kuadro.AuthOutput{}, kuadro.ErrInvalidCredentials
				},
			},
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusUnauthorized, resp.StatusCode, "status code")
				testutil.AssertEqual(t, "invalid credentials", decodeErrResp(t, resp).Message, "message")
			},
		},
		{
			name: "ok",
			body: []byte(`{"email":"gopher@example.org","password":"secret1"}`),
			svc: &transport.ServiceMock{
				LoginFunc: func(_ context.Context, in kuadro.LoginInput) (kuadro.AuthOutput, error) {
					return kuadro.AuthOutput{
						User:  kuadro.User{ID: "ce94eee8-4914-4cf0-8f3e-79a92b8d77a1", Email: in.Email},
						Token: "token-value",
					}, nil
				},
			},
			testResp: func(t *testing.T, resp *http.Response) {
				testutil.AssertEqual(t, http.StatusOK, resp.StatusCode, "status code")
			},
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			srv := testServer(t, tc.svc)

			resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(tc.body))
			if err != nil {
				t.Fatalf("failed to do login request: %v", err)
			}

			defer resp.Body.Close()

			tc.testResp(t, resp)
		})
	}
}

func Test_handler_authUser(t *testing.T) {
	const uid = "ce94eee8-4914-4cf0-8f3e-79a92b8d77a1"

	t.Run("no_token", func(t *testing.T) {
		svc := &transport.ServiceMock{
			AuthUserFunc: func(ctx context.Context) (kuadro.User, error) {
				if _, ok := ctx.Value(kuadro.KeyAuthUserID).(string); ok {
					return kuadro.User{}, errors.New("unexpected user ID in context")
				}
				return kuadro.User{}, kuadro.ErrUnauthenticated
			},
		}
		srv := testServer(t, svc)

		resp, err := http.Get(srv.URL + "/api/v1/auth/me")
		if err != nil {
			t.Fatalf("failed to do auth user request: %v", err)
		}

		defer resp.Body.Close()

		testutil.AssertEqual(t, http.StatusUnauthorized, resp.StatusCode, "status code")
	})

	t.Run("bad_token", func(t *testing.T) {
		svc := &transport.ServiceMock{
			AuthUserIDFromTokenFunc: func(string) (string, error) {
				return "", kuadro.ErrInvalidToken
			},
		}
		srv := testServer(t, svc)

		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("failed to do auth user request: %v", err)
		}

		defer resp.Body.Close()

		testutil.AssertEqual(t, http.StatusUnauthorized, resp.StatusCode, "status code")
		testutil.AssertEqual(t, "invalid token", decodeErrResp(t, resp).Message, "message")
		testutil.AssertEqual(t, 0, len(svc.AuthUserCalls()), "auth user calls")
	})

	t.Run("ok", func(t *testing.T) {
		svc := &transport.ServiceMock{
			AuthUserIDFromTokenFunc: func(token string) (string, error) {
				return uid, nil
			},
			AuthUserFunc: func(ctx context.Context) (kuadro.User, error) {
				return kuadro.User{ID: uid, Username: "gopher", Email: "gopher@example.org"}, nil
			},
		}
		srv := testServer(t, svc)

		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer token-value")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("failed to do auth user request: %v", err)
		}

		defer resp.Body.Close()

		testutil.AssertEqual(t, http.StatusOK, resp.StatusCode, "status code")

		var usr kuadro.User
		err = json.NewDecoder(resp.Body).Decode(&usr)
		testutil.AssertEqual(t, nil, err, "json decode")
		testutil.AssertEqual(t, "gopher", usr.Username, "username")

		testutil.AssertEqual(t, "token-value", svc.AuthUserIDFromTokenCalls()[0].Token, "decoded token")
		gotUID, _ := svc.AuthUserCalls()[0].Ctx.Value(kuadro.KeyAuthUserID).(string)
		testutil.AssertEqual(t, uid, gotUID, "context user ID")
	})
}
