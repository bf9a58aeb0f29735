// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
)

// ClosingSummaryMailer sends the owner a summary email after a day's balance
// is closed. Delivery failures are logged and never propagated; the closing
// itself must not depend on email.
type ClosingSummaryMailer struct {
	sender     adapter.EmailSender
	ownerEmail string
	enabled    bool
}

// NewClosingSummaryMailer creates a new closing summary mailer.
func NewClosingSummaryMailer(sender adapter.EmailSender, ownerEmail string, enabled bool) *ClosingSummaryMailer {
	return &ClosingSummaryMailer{
		sender:     sender,
		ownerEmail: ownerEmail,
		enabled:    enabled,
	}
}

// NotifyClosed sends the closing summary for the given balance.
func (m *ClosingSummaryMailer) NotifyClosed(ctx context.Context, balance *entity.DailyBalance) {
	if !m.enabled || m.ownerEmail == "" {
		return
	}

	day := balance.Date.Format("Mon, 02 Jan 2006")

	input := adapter.SendEmailInput{
		To:      m.ownerEmail,
		Subject: fmt.Sprintf("Daily closing summary for %s", day),
		HTML:    m.renderHTML(day, balance),
		Text:    m.renderText(day, balance),
	}

	if err := m.sender.Send(ctx, input); err != nil {
		slog.Error("failed to send closing summary email",
			"date", balance.Date.Format(time.DateOnly),
			"error", err)
		return
	}

	slog.Info("closing summary email sent",
		"date", balance.Date.Format(time.DateOnly),
		"to", m.ownerEmail)
}

func (m *ClosingSummaryMailer) renderHTML(day string, balance *entity.DailyBalance) string {
	return fmt.Sprintf(`<h2>Daily closing summary</h2>
<p>%s</p>
<table>
<tr><td>Opening balance</td><td>%s</td></tr>
<tr><td>Total income</td><td>%s</td></tr>
<tr><td>Total expenses</td><td>%s</td></tr>
<tr><td><strong>Closing balance</strong></td><td><strong>%s</strong></td></tr>
</table>`,
		day,
		balance.OpeningBalance.StringFixed(2),
		balance.TotalIncome.StringFixed(2),
		balance.TotalExpenses.StringFixed(2),
		balance.ClosingBalance.StringFixed(2))
}

func (m *ClosingSummaryMailer) renderText(day string, balance *entity.DailyBalance) string {
	return fmt.Sprintf(`Daily closing summary for %s

Opening balance: %s
Total income: %s
Total expenses: %s
Closing balance: %s
`,
		day,
		balance.OpeningBalance.StringFixed(2),
		balance.TotalIncome.StringFixed(2),
		balance.TotalExpenses.StringFixed(2),
		balance.ClosingBalance.StringFixed(2))
}
