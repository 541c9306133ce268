package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/repository"
	babyUC "github.com/lifeboard/backend/usecase/baby"
)

type BabyHandler struct {
	baseHandler
	uc     *babyUC.UseCase
	images *storage.ImageStore
}

func NewBabyHandler(uc *babyUC.UseCase, images *storage.ImageStore, adapter *httpcontext.Adapter, logger *zap.Logger) *BabyHandler {
	return &BabyHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		images:      images,
	}
}

// @Summary Get savings balance
// @Tags baby
// @Router /api/v1/baby/savings [get]
func (h *BabyHandler) GetSavings(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	savings, err := h.uc.GetSavings(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, savings)
}

// @Summary Update savings balance
// @Tags baby
// @Router /api/v1/baby/savings [put]
func (h *BabyHandler) UpdateSavings(ctx *fasthttp.RequestCtx) {
	var req transport.SavingsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	savings, err := h.uc.UpdateSavings(stdCtx, &domain.BabySavings{
		BalanceCents: req.BalanceCents,
		GoalCents:    req.GoalCents,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, savings)
}

// @Summary List baby items
// @Tags baby
// @Router /api/v1/baby/items [get]
func (h *BabyHandler) ListItems(ctx *fasthttp.RequestCtx) {
	filter := repository.BabyItemFilter{
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}
	if raw := string(ctx.QueryArgs().Peek("purchased")); raw != "" {
		if purchased, err := strconv.ParseBool(raw); err == nil {
			filter.Purchased = &purchased
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	items, err := h.uc.ListItems(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, items)
}

// @Summary Create baby item with optional image
// @Tags baby
// @Router /api/v1/baby/items [post]
func (h *BabyHandler) CreateItem(ctx *fasthttp.RequestCtx) {
	item, ok := h.parseItem(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateItem(stdCtx, item)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update baby item with optional image
// @Tags baby
// @Router /api/v1/baby/items/{id} [put]
func (h *BabyHandler) UpdateItem(ctx *fasthttp.RequestCtx) {
	item, ok := h.parseItem(ctx)
	if !ok {
		return
	}
	if item.ID == "" {
		item.ID = pathParam(ctx, "id")
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateItem(stdCtx, item)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete baby item
// @Tags baby
// @Router /api/v1/baby/items/{id} [delete]
func (h *BabyHandler) DeleteItem(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing item id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteItem(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *BabyHandler) parseItem(ctx *fasthttp.RequestCtx) (*domain.BabyItem, bool) {
	contentType := string(ctx.Request.Header.ContentType())

	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := ctx.MultipartForm()
		if err != nil {
			h.respondInvalid(ctx, "invalid multipart form")
			return nil, false
		}

		item := &domain.BabyItem{
			ID:    formValue(form, "id"),
			Title: formValue(form, "title"),
		}
		if raw := formValue(form, "price_cents"); raw != "" {
			if price, err := strconv.ParseInt(raw, 10, 64); err == nil {
				item.PriceCents = price
			}
		}
		if raw := formValue(form, "purchased"); raw != "" {
			if purchased, err := strconv.ParseBool(raw); err == nil {
				item.Purchased = purchased
			}
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
			item.ImagePath = path
		}
		return item, true
	}

	var item domain.BabyItem
	if err := json.Unmarshal(ctx.PostBody(), &item); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &item, true
}
