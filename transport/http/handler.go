package http

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/matryer/way"

	"github.com/kuadroapp/kuadro/transport"
)

type handler struct {
	svc    transport.Service
	logger log.Logger
}

// New makes use of the service to provide an http.Handler with predefined routing.
func New(svc transport.Service, logger log.Logger, promHandler http.Handler) http.Handler {
	h := &handler{
		svc:    svc,
		logger: logger,
	}

	api := way.NewRouter()
	api.HandleFunc("POST", "/api/v1/auth/signup", h.signup)
	api.HandleFunc("POST", "/api/v1/auth/login", h.login)
	api.HandleFunc("GET", "/api/v1/auth/me", h.authUser)
	api.HandleFunc("POST", "/api/v1/images/upload", h.uploadImage)
	api.HandleFunc("GET", "/api/v1/images", h.images)
	api.HandleFunc("GET", "/api/v1/images/:image_id", h.image)
	api.HandleFunc("DELETE", "/api/v1/images/:image_id", h.deleteImage)
	api.Handle("GET", "/api/v1/metrics", promHandler)

	r := way.NewRouter()
	r.Handle("*", "/api/...", h.withAuth(api))

	return r
}
