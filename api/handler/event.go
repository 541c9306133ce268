package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/repository"
	eventUC "github.com/lifeboard/backend/usecase/event"
)

type EventHandler struct {
	baseHandler
	uc     *eventUC.UseCase
	images *storage.ImageStore
}

func NewEventHandler(uc *eventUC.UseCase, images *storage.ImageStore, adapter *httpcontext.Adapter, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		images:      images,
	}
}

// @Summary List events
// @Tags events
// @Router /api/v1/events [get]
func (h *EventHandler) ListEvents(ctx *fasthttp.RequestCtx) {
	filter := repository.EventFilter{
		From:   parseDate(string(ctx.QueryArgs().Peek("from"))),
		To:     parseDate(string(ctx.QueryArgs().Peek("to"))),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	events, err := h.uc.ListEvents(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, events)
}

// @Summary Get event
// @Tags events
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing event id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	event, err := h.uc.GetEvent(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, event)
}

// @Summary Create event
// @Tags events
// @Router /api/v1/events [post]
func (h *EventHandler) CreateEvent(ctx *fasthttp.RequestCtx) {
	event, ok := h.parseEvent(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateEvent(stdCtx, event)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update event
// @Tags events
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(ctx *fasthttp.RequestCtx) {
	event, ok := h.parseEvent(ctx)
	if !ok {
		return
	}
	if event.ID == "" {
		event.ID = pathParam(ctx, "id")
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateEvent(stdCtx, event)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete event
// @Tags events
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing event id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteEvent(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Attach image to event
// @Tags events
// @Router /api/v1/events/{id}/image [post]
func (h *EventHandler) AttachImage(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing event id")
		return
	}

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

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.AttachImage(stdCtx, id, path); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, map[string]string{"path": path})
}

func (h *EventHandler) parseEvent(ctx *fasthttp.RequestCtx) (*domain.Event, bool) {
	var req transport.EventRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}

	var starts time.Time
	if parsed := parseDate(req.StartsAt); parsed != nil {
		starts = *parsed
	}

	return &domain.Event{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    starts,
		EndsAt:      parseDate(req.EndsAt),
		Location:    req.Location,
		Color:       req.Color,
	}, true
}
