package transport

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kuadroapp/kuadro"
)

var (
	reqDur_Signup              = promauto.NewHistogram(prometheus.HistogramOpts{Name: "signup_request_duration_ms"})
	reqDur_Login               = promauto.NewHistogram(prometheus.HistogramOpts{Name: "login_request_duration_ms"})
	reqDur_AuthUserIDFromToken = promauto.NewHistogram(prometheus.HistogramOpts{Name: "auth_user_id_from_token_request_duration_ms"})
	reqDur_AuthUser            = promauto.NewHistogram(prometheus.HistogramOpts{Name: "auth_user_request_duration_ms"})
	reqDur_UploadImage         = promauto.NewHistogram(prometheus.HistogramOpts{Name: "upload_image_request_duration_ms"})
	reqDur_Images              = promauto.NewHistogram(prometheus.HistogramOpts{Name: "images_request_duration_ms"})
	reqDur_Image               = promauto.NewHistogram(prometheus.HistogramOpts{Name: "image_request_duration_ms"})
	reqDur_DeleteImage         = promauto.NewHistogram(prometheus.HistogramOpts{Name: "delete_image_request_duration_ms"})
)

type ServiceWithInstrumentation struct {
	Next Service
}

func (mw *ServiceWithInstrumentation) Signup(ctx context.Context, in kuadro.SignupInput) (kuadro.AuthOutput, error) {
	defer func(begin time.Time) {
		reqDur_Signup.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.Signup(ctx, in)
}

func (mw *ServiceWithInstrumentation) Login(ctx context.Context, in kuadro.LoginInput) (kuadro.AuthOutput, error) {
	defer func(begin time.Time) {
		reqDur_Login.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.Login(ctx, in)
}

func (mw *ServiceWithInstrumentation) AuthUserIDFromToken(token string) (string, error) {
	defer func(begin time.Time) {
		reqDur_AuthUserIDFromToken.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.AuthUserIDFromToken(token)
}

func (mw *ServiceWithInstrumentation) AuthUser(ctx context.Context) (kuadro.User, error) {
	defer func(begin time.Time) {
		reqDur_AuthUser.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.AuthUser(ctx)
}

func (mw *ServiceWithInstrumentation) UploadImage(ctx context.Context, in kuadro.UploadImageInput) (kuadro.Image, error) {
	defer func(begin time.Time) {
		reqDur_UploadImage.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.UploadImage(ctx, in)
}

func (mw *ServiceWithInstrumentation) Images(ctx context.Context, page, limit int) (kuadro.ImagesPage, error) {
	defer func(begin time.Time) {
		reqDur_Images.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.Images(ctx, page, limit)
}

func (mw *ServiceWithInstrumentation) Image(ctx context.Context, imageID string) (kuadro.Image, error) {
	defer func(begin time.Time) {
		reqDur_Image.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.Image(ctx, imageID)
}

func (mw *ServiceWithInstrumentation) DeleteImage(ctx context.Context, imageID string) error {
	defer func(begin time.Time) {
		reqDur_DeleteImage.Observe(float64(time.Since(begin)) / float64(time.Millisecond))
	}(time.Now())
	return mw.Next.DeleteImage(ctx, imageID)
}
