package notification

import (
	"fmt"
	"strings"
	"time"
)

type SummaryLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// OrderSummary carries everything the operators need to handle a new order.
type OrderSummary struct {
	CustomerName     string
	TelegramUsername string
	PaymentMethod    string
	Lines            []SummaryLine
	Total            float64
	SubmittedAt      time.Time
}

// FormatOrderMessage renders the summary as the plain-text message posted to
// the managers' chat.
func FormatOrderMessage(s OrderSummary) string {
	var b strings.Builder

	b.WriteString("🛒 New order\n\n")
	fmt.Fprintf(&b, "Customer: %s\n", s.CustomerName)
	fmt.Fprintf(&b, "Telegram: %s\n", s.TelegramUsername)
	fmt.Fprintf(&b, "Payment: %s\n\n", s.PaymentMethod)

	for i, line := range s.Lines {
		fmt.Fprintf(&b, "%d. %s x%d ($%.2f each) = $%.2f\n",
			i+1, line.Name, line.Quantity, line.UnitPrice, line.Subtotal)
	}

	fmt.Fprintf(&b, "\nTotal: $%.2f\n", s.Total)
	fmt.Fprintf(&b, "Submitted: %s\n", s.SubmittedAt.UTC().Format("2006-01-02 15:04:05 MST"))

	return b.String()
}
