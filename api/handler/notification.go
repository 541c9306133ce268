package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/api/transport"
	"github.com/lifeboard/backend/internal/infrastructure/journal"
	"github.com/lifeboard/backend/internal/notify"
	"github.com/lifeboard/backend/pkg/httpcontext"
)

type NotificationHandler struct {
	baseHandler
	scheduler *notify.Scheduler
	telegram  *notify.Telegram
	journal   *journal.Store
}

func NewNotificationHandler(scheduler *notify.Scheduler, telegram *notify.Telegram, jnl *journal.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		baseHandler: newBaseHandler(adapter, logger),
		scheduler:   scheduler,
		telegram:    telegram,
		journal:     jnl,
	}
}

// @Summary Send a one-off test notification
// @Tags notifications
// @Router /api/v1/notifications/test [post]
func (h *NotificationHandler) SendTest(ctx *fasthttp.RequestCtx) {
	var req transport.NotifyTestRequest
	if len(ctx.PostBody()) > 0 {
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			h.respondInvalid(ctx, "invalid payload")
			return
		}
	}

	var sent bool
	if req.ConnectionOnly {
		sent = h.telegram.TestConnection()
	} else {
		stdCtx, cancel := h.requestContext(ctx)
		defer cancel()
		sent = h.scheduler.Fire(stdCtx, notify.ParseTimeOfDay(req.TimeOfDay))
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]bool{"sent": sent})
}

// @Summary Scheduler status
// @Tags notifications
// @Router /api/v1/notifications/status [get]
func (h *NotificationHandler) Status(ctx *fasthttp.RequestCtx) {
	status := h.scheduler.Status()

	payload := map[string]interface{}{
		"enabled":      status.Enabled,
		"active_jobs":  status.ActiveJobs,
		"timezone":     status.Timezone,
		"morning_cron": status.MorningCron,
		"evening_cron": status.EveningCron,
		"messaging":    h.telegram.Enabled(),
	}

	if h.journal != nil {
		if recent, err := h.journal.Recent(10); err == nil {
			payload["recent_deliveries"] = recent
		}
	}

	h.respondSuccess(ctx, http.StatusOK, payload)
}

// @Summary Enable or disable the scheduled digests
// @Tags notifications
// @Router /api/v1/notifications/enabled [put]
func (h *NotificationHandler) SetEnabled(ctx *fasthttp.RequestCtx) {
	var req transport.NotifyToggleRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	h.scheduler.SetEnabled(req.Enabled)
	h.respondSuccess(ctx, http.StatusOK, h.scheduler.Status())
}
