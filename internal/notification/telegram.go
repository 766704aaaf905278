package notification

import (
	"context"
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

// TelegramNotifier messages guests that linked a Telegram chat to their reservation.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, guest notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPaymentRecorded(ctx context.Context, r *domain.Reservation, p *domain.PaymentEvent) {
	n.send(ctx, r.GuestChatID, paymentText(r, p))
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, r.GuestChatID, statusText(r))
}

func (n *TelegramNotifier) NotifyFeedbackReminder(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, r.GuestChatID, feedbackText(r))
}

func paymentText(r *domain.Reservation, p *domain.PaymentEvent) string {
	title := "*Payment received*"
	if p.Kind == domain.PaymentRefund {
		title = "*Refund issued*"
	}
	return fmt.Sprintf(
		"%s\n\n"+"Reservation: %s\n"+"Amount: %s\n"+"Stay: %s",
		title, r.ID, p.Amount.StringFixed(2), stayDates(r),
	)
}

func statusText(r *domain.Reservation) string {
	var headline string
	switch r.Status {
	case domain.StatusConfirmed:
		headline = "*Reservation confirmed!*"
	case domain.StatusCheckedIn:
		headline = "*Welcome! You are checked in.*"
	case domain.StatusCheckedOut:
		headline = fmt.Sprintf("*Thank you for staying with us!*\nYou earned %d loyalty points.", r.PointsEarned)
	case domain.StatusCompleted:
		headline = "*Your reservation is complete.*"
	case domain.StatusCancelled:
		headline = "*Reservation cancelled*"
	default:
		headline = fmt.Sprintf("*Reservation status: %s*", r.Status)
	}
	return fmt.Sprintf("%s\n\n"+"Reservation: %s\n"+"Stay: %s", headline, r.ID, stayDates(r))
}

func feedbackText(r *domain.Reservation) string {
	return fmt.Sprintf(
		"*How was your stay?*\n\n"+"Reservation: %s\n"+"Stay: %s\n"+"Please rate your stay from 1 to 5.",
		r.ID, stayDates(r),
	)
}

func stayDates(r *domain.Reservation) string {
	return r.Stay.CheckIn.Format(dateLayout) + " - " + r.Stay.CheckOut.Format(dateLayout)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
