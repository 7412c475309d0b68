package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bridgeremit/remit/internal/wizard"
)

// View renders the current wizard step.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.wizard.Step() {
	case wizard.StepAmountEntry:
		body = m.viewAmountEntry()
	case wizard.StepMethodDetail:
		body = m.viewMethodDetail()
	case wizard.StepConfirmation:
		body = m.viewConfirmation()
	case wizard.StepPaymentCapture:
		body = m.viewPaymentCapture()
	case wizard.StepComplete:
		body = m.viewComplete()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Bridge Remit · Send Money"),
		m.stepIndicator(),
		"",
		body,
	)

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.theme.Box.Render(content))
	}
	return m.theme.Box.Render(content)
}

var stepNames = []string{"Amount", "Details", "Confirm", "Payment", "Done"}

func (m Model) stepIndicator() string {
	parts := make([]string, len(stepNames))
	for i, name := range stepNames {
		if i == int(m.wizard.Step()) {
			parts[i] = m.theme.Bold.Render(name)
		} else {
			parts[i] = m.theme.Muted.Render(name)
		}
	}
	return strings.Join(parts, m.theme.Muted.Render(" → "))
}

func (m Model) viewAmountEntry() string {
	method := "Bank Transfer"
	if m.wizard.Method() == wizard.DeliverAsCash {
		method = "Cash Pickup"
	}

	q := m.wizard.Quote()
	summary := fmt.Sprintf("Fee %s   Total %s   Recipient gets %s ETB",
		"$"+q.Fee.StringFixed(2),
		"$"+q.Total.StringFixed(2),
		q.Receive.StringFixed(2))

	continueHint := m.theme.Muted.Render("enter amount to continue")
	if m.wizard.CanAdvance() {
		continueHint = m.theme.Subtitle.Render("enter: continue")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("You send"),
		m.amountInput.View(),
		"",
		fmt.Sprintf("%s %s  %s", m.theme.SummaryLabel.Render("Delivery"), m.theme.Bold.Render(method), m.theme.Muted.Render("(tab to switch)")),
		m.theme.Muted.Render(summary),
		"",
		continueHint,
	)
}

func (m Model) viewMethodDetail() string {
	if m.wizard.Method() == wizard.DeliverAsCash {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Subtitle.Render("Cash pickup recipient"),
			m.recipientInput.View(),
			"",
			m.theme.Muted.Render("enter: continue • esc: back"),
		)
	}

	var banks []string
	for i, b := range m.banks {
		line := "  " + b.Name
		if i == m.bankCursor {
			line = m.theme.Selected.String() + m.theme.Bold.Render(b.Name)
		}
		banks = append(banks, line)
	}

	status := m.theme.Muted.Render("ctrl+v or enter: verify account")
	switch {
	case m.looking:
		status = m.spinner.View() + " Verifying account..."
	case m.lookupErr != "":
		status = m.theme.StatusError.Render(m.lookupErr)
	case m.wizard.AccountName() != "":
		status = m.theme.StatusSuccess.Render("✓ " + m.wizard.AccountName())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Select bank"),
		strings.Join(banks, "\n"),
		"",
		m.accountInput.View(),
		status,
		"",
		m.theme.Muted.Render("↑/↓: bank • enter: continue • esc: back"),
	)
}

func (m Model) viewConfirmation() string {
	q := m.wizard.Quote()

	row := func(label, value string) string {
		return m.theme.SummaryLabel.Render(label) + m.theme.SummaryValue.Render(value)
	}

	rows := []string{
		row("You send", "$"+q.Principal.StringFixed(2)),
		row("Fee", "$"+q.Fee.StringFixed(2)),
		row("Total", "$"+q.Total.StringFixed(2)),
		row("Exchange rate", q.Rate.StringFixed(2)+" ETB/USD"),
		row("Recipient gets", q.Receive.StringFixed(2)+" ETB"),
	}

	if m.wizard.Method() == wizard.DeliverToBank {
		rows = append(rows,
			row("Bank", m.wizard.Bank().Name),
			row("Account", m.wizard.AccountNumber()),
			row("Recipient", m.wizard.AccountName()),
		)
	} else {
		rows = append(rows, row("Recipient", m.wizard.RecipientName()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Confirm transfer details"),
		"",
		strings.Join(rows, "\n"),
		"",
		m.theme.Muted.Render("enter: proceed to payment • esc: back"),
	)
}

func (m Model) viewPaymentCapture() string {
	if m.paying {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.spinner.View()+" Processing payment...",
			"",
			m.theme.Muted.Render("please wait"),
		)
	}

	fields := make([]string, 0, cardFieldCount)
	for i := range m.cardInputs {
		fields = append(fields, m.cardInputs[i].View())
	}

	hint := m.theme.Muted.Render("fill all fields to pay")
	if m.wizard.Card().Complete() {
		hint = m.theme.Subtitle.Render("enter: pay $" + m.wizard.Quote().Total.StringFixed(2))
	}

	lines := []string{
		m.theme.Subtitle.Render("Payment details"),
		strings.Join(fields, "\n"),
	}
	if m.payErr != "" {
		lines = append(lines, m.theme.StatusError.Render(m.payErr))
	}
	lines = append(lines,
		"",
		hint,
		m.theme.Muted.Render("tab: next field • esc: back"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewComplete() string {
	txn := m.wizard.Result()
	if txn == nil {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.StatusSuccess.Render("✓ Transfer complete"),
		"",
		fmt.Sprintf("%s is on the way to %s.",
			m.theme.Bold.Render("$"+txn.Amount.StringFixed(2)),
			m.theme.Bold.Render(txn.RecipientName)),
		m.theme.Muted.Render("Reference "+txn.ID),
		"",
		m.theme.Muted.Render("n: new transfer • q: quit"),
	)
}
