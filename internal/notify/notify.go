// Package notify is the extension point invoked after a booking payment is
// confirmed. Implementations deliver the confirmation out-of-band (admin chat,
// email, calendar invite); delivery failures are logged, never surfaced to the
// request that triggered them.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/amoakoh/coachdesk/internal/models"
)

type Notifier interface {
	PaymentConfirmed(ctx context.Context, booking *models.SessionBooking)
}

// LogNotifier records confirmations in the structured log. It is the default
// when no delivery channel is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) PaymentConfirmed(ctx context.Context, booking *models.SessionBooking) {
	n.Logger.Info("payment confirmed",
		"booking_id", booking.Id,
		"booking_number", booking.BookingNumber,
		"amount_paid", booking.AmountPaid,
		"payment_method", booking.PaymentMethod,
	)
}

// TelegramNotifier pushes confirmations to the admin chat.
type TelegramNotifier struct {
	bot    *tgbot.Bot
	chatID string
	logger *slog.Logger
}

func NewTelegramNotifier(token, chatID string, logger *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	b, err := tgbot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}

	return &TelegramNotifier{bot: b, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) PaymentConfirmed(ctx context.Context, booking *models.SessionBooking) {
	if n.bot == nil || n.chatID == "" {
		n.logger.Debug("notification skipped (telegram disabled)", "booking_id", booking.Id)
		return
	}

	text := fmt.Sprintf(
		"Payment confirmed for booking %s\nClient: %s\nSession: %s %s\nAmount: %.2f (%s)",
		booking.BookingNumber,
		booking.ClientName,
		booking.SessionDate,
		booking.StartTime,
		booking.AmountPaid,
		booking.PaymentMethod,
	)

	params := &tgbot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	}

	if _, err := n.bot.SendMessage(ctx, params); err != nil {
		n.logger.Error("failed to send telegram notification",
			"booking_id", booking.Id,
			"error", err,
		)
	}
}
