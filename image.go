package kuadro

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/cockroach-go/v2/crdb"
	"golang.org/x/sync/errgroup"

	"github.com/kuadroapp/kuadro/assets"
)

const (
	// MaxImageBytes is the upload size ceiling. Larger payloads are rejected
	// before any remote call instead of being spilled to disk.
	MaxImageBytes = 10 << 20 // 10MiB

	maxImageTitleLen       = 100
	maxImageDescriptionLen = 500

	defaultImagesPageSize = 12
	maxImagesPageSize     = 100
)

var (
	// ErrImageNotFound denotes an absent image, or one owned by somebody else.
	// Both cases look the same on purpose, so ownership cannot be probed.
	ErrImageNotFound = NotFoundError("image not found")
	// ErrImageUploadFailed denotes that the asset host rejected or dropped the upload.
	ErrImageUploadFailed = UpstreamError("image upload failed")
)

// Image model. Every field besides title and description
// comes from the asset host descriptor, never from the client.
type Image struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	PublicID    string    `json:"publicId"`
	Format      string    `json:"format"`
	Size        int64     `json:"size"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UploadImageInput request.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Title       string
	Description string
}

// Pagination metadata for image listings.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalImages int64 `json:"totalImages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ImagesPage response.
type ImagesPage struct {
	Images     []Image    `json:"images"`
	Pagination Pagination `json:"pagination"`
}

func (in *UploadImageInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	fields := map[string]string{}
	if len(in.Data) == 0 {
		fields["image"] = "required"
	} else if !strings.HasPrefix(in.ContentType, "image/") {
		fields["image"] = "only image files are allowed"
	} else if len(in.Data) > MaxImageBytes {
		fields["image"] = fmt.Sprintf("cannot exceed %d bytes", MaxImageBytes)
	}
	if in.Title == "" {
		fields["title"] = "required"
	} else if len(in.Title) > maxImageTitleLen {
		fields["title"] = fmt.Sprintf("cannot exceed %d characters", maxImageTitleLen)
	}
	if len(in.Description) > maxImageDescriptionLen {
		fields["description"] = fmt.Sprintf("cannot exceed %d characters", maxImageDescriptionLen)
	}

	if len(fields) != 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UploadImage sends the payload to the asset host and persists a metadata
// record owned by the authenticated user. Nothing is persisted unless the
// host returned a complete descriptor.
func (s *Service) UploadImage(ctx context.Context, in UploadImageInput) (Image, error) {
	var out Image

	uid, ok := ctx.Value(KeyAuthUserID).(string)
	if !ok {
		return out, ErrUnauthenticated
	}

	if err := in.validate(); err != nil {
		return out, err
	}

	desc, err := s.Assets.Upload(ctx, in.Data,
		assets.UploadWithContentType(in.ContentType),
		assets.UploadWithFileName(in.FileName),
	)
	if err != nil {
		_ = s.Logger.Log("error", fmt.Errorf("could not upload image to asset host: %w", err))
		return out, ErrImageUploadFailed
	}

	out = Image{
		Title:       in.Title,
		Description: in.Description,
		URL:         desc.SecureURL,
		PublicID:    desc.PublicID,
		Format:      desc.Format,
		Size:        desc.Bytes,
		Width:       desc.Width,
		Height:      desc.Height,
		UserID:      uid,
	}
	query := `
		INSERT INTO images (user_id, title, description, url, public_id, format, byte_size, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	row := s.DB.QueryRowContext(ctx, query,
		uid,
		out.Title,
		out.Description,
		out.URL,
		out.PublicID,
		out.Format,
		out.Size,
		out.Width,
		out.Height,
	)
	err = row.Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		defer func() {
			if err := s.Assets.Delete(context.Background(), desc.PublicID); err != nil {
				_ = s.Logger.Log("error", fmt.Errorf("could not delete asset after metadata insert fail: %w", err))
			}
		}()
		return Image{}, fmt.Errorf("could not sql insert image: %w", err)
	}

	return out, nil
}

// Images lists the authenticated user's gallery newest first.
// Page and limit fall back to 1 and 12 when non-positive.
func (s *Service) Images(ctx context.Context, page, limit int) (ImagesPage, error) {
	var out ImagesPage

	uid, ok := ctx.Value(KeyAuthUserID).(string)
	if !ok {
		return out, ErrUnauthenticated
	}

	page = normalizePage(page)
	limit = normalizePageSize(limit)
	offset := (page - 1) * limit

	var total int64
	var items []Image

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := "SELECT count(*) FROM images WHERE user_id = $1"
		row := s.DB.QueryRowContext(gctx, query, uid)
		if err := row.Scan(&total); err != nil {
			return fmt.Errorf("could not sql count images: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := `
			SELECT id, title, description, url, public_id, format, byte_size, width, height, created_at, updated_at
			FROM images
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`
		rows, err := s.DB.QueryContext(gctx, query, uid, limit, offset)
		if err != nil {
			return fmt.Errorf("could not sql select images: %w", err)
		}

		defer rows.Close()

		for rows.Next() {
			img := Image{UserID: uid}
			err := rows.Scan(
				&img.ID,
				&img.Title,
				&img.Description,
				&img.URL,
				&img.PublicID,
				&img.Format,
				&img.Size,
				&img.Width,
				&img.Height,
				&img.CreatedAt,
				&img.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("could not sql scan image: %w", err)
			}
			items = append(items, img)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("could not sql iterate over images: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return out, err
	}

	if items == nil {
		items = []Image{} // non null array
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	out.Images = items
	out.Pagination = Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalImages: total,
		HasNextPage: int64(page*limit) < total,
		HasPrevPage: page > 1,
	}

	return out, nil
}

// Image fetches a single image scoped by ownership.
func (s *Service) Image(ctx context.Context, imageID string) (Image, error) {
	var out Image

	uid, ok := ctx.Value(KeyAuthUserID).(string)
	if !ok {
		return out, ErrUnauthenticated
	}

	if !reUUID.MatchString(imageID) {
		return out, ErrImageNotFound
	}

	query := `
		SELECT title, description, url, public_id, format, byte_size, width, height, created_at, updated_at
		FROM images
		WHERE id = $1 AND user_id = $2
	`
	row := s.DB.QueryRowContext(ctx, query, imageID, uid)
	err := row.Scan(
		&out.Title,
		&out.Description,
		&out.URL,
		&out.PublicID,
		&out.Format,
		&out.Size,
		&out.Width,
		&out.Height,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return out, ErrImageNotFound
	}

	if err != nil {
		return out, fmt.Errorf("could not sql select image: %w", err)
	}

	out.ID = imageID
	out.UserID = uid
	return out, nil
}

// DeleteImage removes the metadata record and then the remote asset.
// The record removal is the user visible contract: a failing remote
// delete is logged and reported as success.
func (s *Service) DeleteImage(ctx context.Context, imageID string) error {
	uid, ok := ctx.Value(KeyAuthUserID).(string)
	if !ok {
		return ErrUnauthenticated
	}

	if !reUUID.MatchString(imageID) {
		return ErrImageNotFound
	}

	var publicID string
	err := crdb.ExecuteTx(ctx, s.DB, nil, func(tx *sql.Tx) error {
		query := "SELECT public_id FROM images WHERE id = $1 AND user_id = $2"
		row := tx.QueryRowContext(ctx, query, imageID, uid)
		err := row.Scan(&publicID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrImageNotFound
		}

		if err != nil {
			return fmt.Errorf("could not sql select image for delete: %w", err)
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM images WHERE id = $1 AND user_id = $2", imageID, uid)
		if err != nil {
			return fmt.Errorf("could not sql delete image: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.Assets.Delete(context.Background(), publicID); err != nil {
		_ = s.Logger.Log("error", fmt.Errorf("could not delete remote asset %q: %w", publicID, err))
	}

	return nil
}

func normalizePage(i int) int {
	if i < 1 {
		return 1
	}
	return i
}

func normalizePageSize(i int) int {
	if i < 1 {
		return defaultImagesPageSize
	}
	if i > maxImagesPageSize {
		return maxImagesPageSize
	}
	return i
}
