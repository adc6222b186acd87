package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kuadroapp/kuadro"
	"github.com/kuadroapp/kuadro/assets/s3"
	"github.com/kuadroapp/kuadro/transport"
	kuadrohttp "github.com/kuadroapp/kuadro/transport/http"
)

func main() {
	_ = godotenv.Load()

	logger := log.With(
		log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)),
		"ts", log.DefaultTimestampUTC,
	)

	if err := run(logger); err != nil {
		_ = logger.Log("error", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	ctx := context.Background()

	var (
		addr        = env("ADDR", ":4000")
		originStr   = env("ORIGIN", "http://localhost:4000")
		databaseURL = env("DATABASE_URL", "postgresql://root@127.0.0.1:26257/kuadro?sslmode=disable")
		tokenKey    = os.Getenv("TOKEN_KEY")
		s3Endpoint  = env("S3_ENDPOINT", "localhost:9000")
		s3Region    = os.Getenv("S3_REGION")
		s3AccessKey = os.Getenv("S3_ACCESS_KEY")
		s3SecretKey = os.Getenv("S3_SECRET_KEY")
		s3Secure    = boolEnv("S3_SECURE", false)
		s3Bucket    = env("S3_BUCKET", "kuadro")
		s3Folder    = env("S3_FOLDER", "gallery")
	)

	// Secrets have no fallback. Refusing to boot beats running unsigned.
	if tokenKey == "" {
		return errors.New("TOKEN_KEY missing on environment variables")
	}
	if len(tokenKey) != 32 {
		return fmt.Errorf("TOKEN_KEY must be exactly 32 bytes long; got %d", len(tokenKey))
	}
	if s3AccessKey == "" || s3SecretKey == "" {
		return errors.New("S3_ACCESS_KEY and S3_SECRET_KEY missing on environment variables")
	}

	origin, err := url.Parse(originStr)
	if err != nil || !origin.IsAbs() {
		return fmt.Errorf("invalid origin %q", originStr)
	}

	pool, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("could not open db pool: %w", err)
	}

	defer pool.Close()

	if err := pool.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping db: %w", err)
	}

	if err := kuadro.MigrateSQL(ctx, pool); err != nil {
		return fmt.Errorf("could not migrate sql: %w", err)
	}

	assetsHost := &s3.Host{
		Secure:    s3Secure,
		Endpoint:  s3Endpoint,
		Region:    s3Region,
		AccessKey: s3AccessKey,
		SecretKey: s3SecretKey,
		Bucket:    s3Bucket,
		Folder:    s3Folder,
	}
	if err := assetsHost.Setup(ctx); err != nil {
		return fmt.Errorf("could not setup asset host: %w", err)
	}

	svc := &kuadro.Service{
		Logger:   logger,
		DB:       pool,
		Assets:   assetsHost,
		Origin:   origin,
		TokenKey: tokenKey,
	}

	h := kuadrohttp.New(
		&transport.ServiceWithInstrumentation{Next: svc},
		logger,
		promhttp.Handler(),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: time.Second * 5,
		ReadTimeout:       time.Second * 15,
		WriteTimeout:      time.Second * 30,
		IdleTimeout:       time.Second * 30,
	}

	defer srv.Close()

	_ = logger.Log("msg", "listening", "addr", addr, "origin", origin)

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen and serve: %w", err)
	}

	return nil
}

func env(key, fallbackValue string) string {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallbackValue
	}
	return s
}

func boolEnv(key string, fallbackValue bool) bool {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallbackValue
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallbackValue
	}
	return b
}
