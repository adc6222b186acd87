package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kuadroapp/kuadro"
)

var errBadRequest = errors.New("bad request")

type errRespBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (h *handler) respond(w http.ResponseWriter, v interface{}, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		h.respondErr(w, fmt.Errorf("could not json marshal http response body: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, context.Canceled) {
		_ = h.logger.Log("error", fmt.Errorf("could not write down http response: %w", err))
	}
}

func (h *handler) respondErr(w http.ResponseWriter, err error) {
	statusCode := err2code(err)
	if statusCode == http.StatusInternalServerError && !errors.Is(err, kuadro.ErrUpstream) {
		_ = h.logger.Log("error", err)
		h.respond(w, errRespBody{Message: "internal server error"}, statusCode)
		return
	}

	body := errRespBody{Message: err.Error()}
	var ve *kuadro.ValidationError
	if errors.As(err, &ve) {
		body.Message = "validation failed"
		body.Errors = ve.Fields
	}

	h.respond(w, body, statusCode)
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case err == errBadRequest:
		return http.StatusBadRequest
	case errors.Is(err, kuadro.ErrInvalidArgument):
		return http.StatusBadRequest
	// Duplicate identities respond 400, not 409. Product contract.
	case errors.Is(err, kuadro.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, kuadro.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, kuadro.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, kuadro.ErrUpstream):
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
