package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/matryer/way"

	"github.com/kuadroapp/kuadro"
)

// multipartOverhead leaves room for the text fields and part boundaries
// on top of the image payload ceiling.
const multipartOverhead = 1 << 20

func (h *handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, kuadro.MaxImageBytes+multipartOverhead)
	if err := r.ParseMultipartForm(kuadro.MaxImageBytes); err != nil {
		h.respondErr(w, errBadRequest)
		return
	}

	in := kuadro.UploadImageInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	f, fh, err := r.FormFile("image")
	if err == nil {
		defer f.Close()

		in.FileName = fh.Filename
		in.ContentType = fh.Header.Get("Content-Type")
		in.Data, err = io.ReadAll(f)
		if err != nil {
			h.respondErr(w, errBadRequest)
			return
		}
	} else if err != http.ErrMissingFile {
		h.respondErr(w, errBadRequest)
		return
	}

	out, err := h.svc.UploadImage(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) images(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	out, err := h.svc.Images(r.Context(), page, limit)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) image(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imageID := way.Param(ctx, "image_id")

	out, err := h.svc.Image(ctx, imageID)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

type deleteImageRespBody struct {
	Message string `json:"message"`
}

func (h *handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imageID := way.Param(ctx, "image_id")

	if err := h.svc.DeleteImage(ctx, imageID); err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, deleteImageRespBody{Message: "image deleted"}, http.StatusOK)
}
