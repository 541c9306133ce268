package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/pkg/httpcontext"
)

type UploadHandler struct {
	baseHandler
	images *storage.ImageStore
}

func NewUploadHandler(images *storage.ImageStore, adapter *httpcontext.Adapter, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		baseHandler: newBaseHandler(adapter, logger),
		images:      images,
	}
}

// @Summary Upload an image, returning its stored-path reference
// @Tags uploads
// @Router /api/v1/uploads [post]
func (h *UploadHandler) Upload(ctx *fasthttp.RequestCtx) {
	form, err := ctx.MultipartForm()
	if err != nil {
		h.respondInvalid(ctx, "expected multipart form")
		return
	}

	name, data, err := formImage(form, "image")
	if err != nil || data == nil {
		h.respondInvalid(ctx, "missing image file")
		return
	}

	path, err := h.images.Save(name, data)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, map[string]string{"path": path})
}

// @Summary Replace the site-wide hero banner
// @Tags uploads
// @Router /api/v1/uploads/hero [post]
func (h *UploadHandler) UploadHero(ctx *fasthttp.RequestCtx) {
	form, err := ctx.MultipartForm()
	if err != nil {
		h.respondInvalid(ctx, "expected multipart form")
		return
	}

	_, data, err := formImage(form, "image")
	if err != nil || data == nil {
		h.respondInvalid(ctx, "missing image file")
		return
	}

	if err := h.images.SaveHero(data); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}
