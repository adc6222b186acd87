//go:generate go run -mod mod github.com/matryer/moq -rm -out host_mock.go . Host

package assets

import "context"

// Descriptor reports what the host actually stored for an upload:
// the stored variant after the transformation policy, not the raw payload.
type Descriptor struct {
	SecureURL string
	PublicID  string
	Format    string
	Bytes     int64
	Width     int
	Height    int
}

// Host stores and deletes image assets remotely.
type Host interface {
	Upload(ctx context.Context, data []byte, opts ...UploadOpt) (Descriptor, error)
	Delete(ctx context.Context, publicID string) error
}

// UploadOpts to set while uploading.
type UploadOpts struct {
	ContentType string
	FileName    string
}

// UploadOpt type.
type UploadOpt func(*UploadOpts)

// UploadWithContentType option.
func UploadWithContentType(s string) UploadOpt {
	return func(opts *UploadOpts) {
		opts.ContentType = s
	}
}

// UploadWithFileName option.
func UploadWithFileName(s string) UploadOpt {
	return func(opts *UploadOpts) {
		opts.FileName = s
	}
}
