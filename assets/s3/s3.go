// Package s3 implements the asset host on top of any S3 compatible
// object storage, applying the fixed transformation policy on upload.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"

	"github.com/disintegration/imaging"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kuadroapp/kuadro/assets"
)

// Transformation policy: stored variants are bounded to this box,
// preserving aspect ratio and never upscaling.
const (
	boundWidth  = 800
	boundHeight = 600
	jpegQuality = 80
)

// Host must call Setup.
type Host struct {
	client *minio.Client

	Secure    bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Folder    string
}

func (h *Host) Setup(ctx context.Context) error {
	var err error
	h.client, err = minio.New(h.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(h.AccessKey, h.SecretKey, ""),
		Secure: h.Secure,
		Region: h.Region,
	})
	if err != nil {
		return fmt.Errorf("could not create minio client: %w", err)
	}

	err = h.client.MakeBucket(ctx, h.Bucket, minio.MakeBucketOptions{
		Region: h.Region,
	})
	if err != nil {
		exists, errExists := h.client.BucketExists(ctx, h.Bucket)
		if errExists != nil {
			return fmt.Errorf("could not check bucket %q existence: %w", h.Bucket, errExists)
		}

		if !exists {
			return fmt.Errorf("could not create bucket %q: %w", h.Bucket, err)
		}
	}

	return nil
}

// Upload transforms the payload and stores the result under the configured
// folder. The returned descriptor reflects the stored variant.
func (h *Host) Upload(ctx context.Context, data []byte, opts ...assets.UploadOpt) (assets.Descriptor, error) {
	var options assets.UploadOpts
	for _, o := range opts {
		o(&options)
	}

	var desc assets.Descriptor

	encoded, format, width, height, err := transform(data)
	if err != nil {
		return desc, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return desc, fmt.Errorf("could not generate object name: %w", err)
	}

	key := id + "." + extension(format)
	if h.Folder != "" {
		key = path.Join(h.Folder, key)
	}

	r := bytes.NewReader(encoded)
	size := int64(len(encoded))
	_, err = h.client.PutObject(ctx, h.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "image/" + format,
	})
	if err != nil {
		return desc, fmt.Errorf("could not put object: %w", err)
	}

	desc.SecureURL = h.objectURL(key)
	desc.PublicID = key
	desc.Format = format
	desc.Bytes = size
	desc.Width = width
	desc.Height = height
	return desc, nil
}

// Delete an asset by its public ID (object key).
func (h *Host) Delete(ctx context.Context, publicID string) error {
	err := h.client.RemoveObject(ctx, h.Bucket, publicID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("could not delete object: %w", err)
	}

	return nil
}

func (h *Host) objectURL(key string) string {
	scheme := "http"
	if h.Secure {
		scheme = "https"
	}
	return scheme + "://" + h.Endpoint + "/" + h.Bucket + "/" + key
}

// transform decodes the payload, bounds it to the policy box and re-encodes it.
func transform(data []byte) (encoded []byte, format string, width, height int, err error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("could not decode image: %w", err)
	}

	_, formatName, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("could not detect image format: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > boundWidth || bounds.Dy() > boundHeight {
		img = imaging.Fit(img, boundWidth, boundHeight, imaging.Lanczos)
		bounds = img.Bounds()
	}

	f, err := imaging.FormatFromExtension(extension(formatName))
	if err != nil {
		// Formats we cannot write back (e.g. webp) are stored as JPEG.
		f = imaging.JPEG
		formatName = "jpeg"
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, f, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("could not encode image: %w", err)
	}

	return buf.Bytes(), formatName, bounds.Dx(), bounds.Dy(), nil
}

func extension(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
