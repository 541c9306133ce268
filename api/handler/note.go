package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/repository"
	noteUC "github.com/lifeboard/backend/usecase/note"
)

type NoteHandler struct {
	baseHandler
	uc     *noteUC.UseCase
	images *storage.ImageStore
}

func NewNoteHandler(uc *noteUC.UseCase, images *storage.ImageStore, adapter *httpcontext.Adapter, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		images:      images,
	}
}

// @Summary List notes, filterable by category and free-text search
// @Tags notes
// @Router /api/v1/notes [get]
func (h *NoteHandler) ListNotes(ctx *fasthttp.RequestCtx) {
	filter := repository.NoteFilter{
		Category: string(ctx.QueryArgs().Peek("category")),
		Search:   string(ctx.QueryArgs().Peek("q")),
		Limit:    parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset:   parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	notes, err := h.uc.ListNotes(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, notes)
}

// @Summary Get note
// @Tags notes
// @Router /api/v1/notes/{id} [get]
func (h *NoteHandler) GetNote(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing note id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	note, err := h.uc.GetNote(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, note)
}

// @Summary Create note with optional image
// @Tags notes
// @Router /api/v1/notes [post]
func (h *NoteHandler) CreateNote(ctx *fasthttp.RequestCtx) {
	note, ok := h.parseNote(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateNote(stdCtx, note)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update note with optional image
// @Tags notes
// @Router /api/v1/notes/{id} [put]
func (h *NoteHandler) UpdateNote(ctx *fasthttp.RequestCtx) {
	note, ok := h.parseNote(ctx)
	if !ok {
		return
	}
	if note.ID == "" {
		note.ID = pathParam(ctx, "id")
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateNote(stdCtx, note)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete note
// @Tags notes
// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing note id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteNote(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// parseNote reads either a multipart form (with an optional image file) or a
// plain JSON body.
func (h *NoteHandler) parseNote(ctx *fasthttp.RequestCtx) (*domain.Note, bool) {
	contentType := string(ctx.Request.Header.ContentType())

	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := ctx.MultipartForm()
		if err != nil {
			h.respondInvalid(ctx, "invalid multipart form")
			return nil, false
		}

		note := &domain.Note{
			ID:       formValue(form, "id"),
			Title:    formValue(form, "title"),
			Body:     formValue(form, "body"),
			Category: formValue(form, "category"),
		}

		name, data, err := formImage(form, "image")
		if err != nil {
			h.respondInvalid(ctx, "unreadable image file")
			return nil, false
		}
		if data != nil {
			path, err := h.images.Save(name, data)
			if err != nil {
				h.respondError(ctx, err)
				return nil, false
			}
			note.ImagePath = path
		}
		return note, true
	}

	var note domain.Note
	if err := json.Unmarshal(ctx.PostBody(), &note); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &note, true
}
