package notify

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/config"
)

// sender is the slice of the Telegram bot API the client actually uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type messageOptions struct {
	parseMode      string
	disablePreview bool
}

// MessageOption overrides the default send options (HTML formatting on,
// link preview off).
type MessageOption func(*messageOptions)

// WithParseMode overrides the parse mode; empty disables rich formatting.
func WithParseMode(mode string) MessageOption {
	return func(o *messageOptions) { o.parseMode = mode }
}

// WithLinkPreview re-enables the link preview for a single message.
func WithLinkPreview() MessageOption {
	return func(o *messageOptions) { o.disablePreview = false }
}

// Telegram delivers digest and error texts to the single configured chat.
// All send operations report success as a bool and never propagate errors.
type Telegram struct {
	bot     sender
	chatID  int64
	loc     *time.Location
	enabled bool
	logger  *zap.Logger
}

// NewTelegram resolves the messaging configuration once. A missing token or
// chat id while the feature is enabled force-disables it with a diagnostic;
// this is a fail-safe, never a fatal error.
func NewTelegram(cfg config.NotifyConfig, loc *time.Location, logger *zap.Logger) *Telegram {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Telegram{
		chatID:  cfg.ChatID,
		loc:     loc,
		enabled: cfg.Enabled,
		logger:  logger,
	}

	if t.enabled && (cfg.BotToken == "" || cfg.ChatID == 0) {
		logger.Warn("telegram notifications enabled but token or chat id missing, disabling")
		t.enabled = false
	}

	if t.enabled {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			logger.Warn("telegram bot authorization failed, disabling notifications", zap.Error(err))
			t.enabled = false
		} else {
			t.bot = bot
			logger.Info("telegram bot authorized", zap.String("username", bot.Self.UserName))
		}
	}

	return t
}

// Enabled reports whether the messaging feature survived configuration checks.
func (t *Telegram) Enabled() bool {
	return t != nil && t.enabled
}

// SendMessage delivers a single text message. Caller options are merged
// over the defaults. Returns false on any failure; every failure is logged.
func (t *Telegram) SendMessage(text string, opts ...MessageOption) bool {
	if !t.Enabled() || t.bot == nil {
		t.logger.Debug("telegram send skipped: messaging disabled")
		return false
	}

	options := messageOptions{
		parseMode:      tgbotapi.ModeHTML,
		disablePreview: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = options.parseMode
	msg.DisableWebPagePreview = options.disablePreview

	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error("telegram send failed", zap.Int64("chat_id", t.chatID), zap.Error(err))
		return false
	}
	return true
}

// SendTaskSummary prefixes the digest with the time-of-day greeting.
func (t *Telegram) SendTaskSummary(summary string, tod TimeOfDay) bool {
	return t.SendMessage(tod.Greeting() + "\n\n" + summary)
}

// SendErrorNotification wraps an error description with a system-error
// header and a timestamp rendered in the configured timezone.
func (t *Telegram) SendErrorNotification(errText string) bool {
	stamp := time.Now().In(t.loc).Format("2006-01-02 15:04:05")
	return t.SendMessage(fmt.Sprintf("🚨 <b>System error</b>\n%s\n\n%s", stamp, errText))
}

// TestConnection sends a canned message to validate the configuration
// end-to-end.
func (t *Telegram) TestConnection() bool {
	return t.SendMessage("✅ Notification channel is configured correctly.")
}
