// Package tui renders the send-money wizard. All business state lives
// in the wizard package; this model only collects input and displays
// each step.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bridgeremit/remit/internal/directory"
	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/session"
	"github.com/bridgeremit/remit/internal/tui/themes"
	"github.com/bridgeremit/remit/internal/wizard"
)

const cardFieldCount = 4

// Model holds the wizard TUI state.
type Model struct {
	theme   themes.Theme
	keymap  KeyMap
	session *session.Service
	wizard  *wizard.Transfer
	banks   []model.Bank

	amountInput    textinput.Model
	accountInput   textinput.Model
	recipientInput textinput.Model
	cardInputs     [cardFieldCount]textinput.Model
	cardFocus      int
	bankCursor     int

	spinner   spinner.Model
	looking   bool
	lookupErr string
	paying    bool
	payErr    string

	width    int
	height   int
	quitting bool
}

// New creates the wizard TUI over a session and a transfer wizard.
func New(sess *session.Service, w *wizard.Transfer) Model {
	theme := themes.Default

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.Prompt = "$ "
	amount.CharLimit = 12
	amount.Focus()

	account := textinput.New()
	account.Placeholder = "Account number"
	account.CharLimit = 20

	recipient := textinput.New()
	recipient.Placeholder = "Recipient full name"
	recipient.CharLimit = 50

	var cards [cardFieldCount]textinput.Model
	placeholders := [cardFieldCount]string{"Card number", "MM/YY", "CVV", "Name on card"}
	for i := range cards {
		cards[i] = textinput.New()
		cards[i].Placeholder = placeholders[i]
		cards[i].CharLimit = 30
	}
	cards[2].EchoMode = textinput.EchoPassword

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		theme:          theme,
		keymap:         DefaultKeyMap(),
		session:        sess,
		wizard:         w,
		banks:          directory.Banks(),
		amountInput:    amount,
		accountInput:   account,
		recipientInput: recipient,
		cardInputs:     cards,
		spinner:        s,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case lookupResultMsg:
		m.looking = false
		if msg.err != nil {
			m.lookupErr = "Account not found. Please check the account number."
			return m, nil
		}
		m.lookupErr = ""
		m.wizard.ApplyLookup(msg.name)
		return m, nil

	case paymentDoneMsg:
		m.paying = false
		m.wizard.FinishPayment(msg.txn, msg.err)
		if msg.err != nil {
			m.payErr = "Payment could not be completed. Please try again."
		} else {
			m.payErr = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) && !m.editingText() {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// editingText reports whether a focused text input should swallow plain
// letter keys (so "q" can be typed into names and card fields).
func (m Model) editingText() bool {
	switch m.wizard.Step() {
	case wizard.StepAmountEntry, wizard.StepMethodDetail, wizard.StepPaymentCapture:
		return true
	default:
		return false
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.looking || m.paying {
		// Simulated work in flight: the triggering controls stay disabled.
		return m, nil
	}

	switch m.wizard.Step() {
	case wizard.StepAmountEntry:
		return m.updateAmountEntry(msg)
	case wizard.StepMethodDetail:
		return m.updateMethodDetail(msg)
	case wizard.StepConfirmation:
		return m.updateConfirmation(msg)
	case wizard.StepPaymentCapture:
		return m.updatePaymentCapture(msg)
	case wizard.StepComplete:
		return m.updateComplete(msg)
	}
	return m, nil
}

func (m Model) updateAmountEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Toggle):
		if m.wizard.Method() == wizard.DeliverToBank {
			m.wizard.SetMethod(wizard.DeliverAsCash)
		} else {
			m.wizard.SetMethod(wizard.DeliverToBank)
		}
		m.wizard.SetAmount(m.amountInput.Value())
		return m, nil

	case key.Matches(msg, m.keymap.Continue):
		if m.wizard.CanAdvance() {
			_ = m.wizard.Advance()
			if m.wizard.Method() == wizard.DeliverToBank {
				m.accountInput.Focus()
			} else {
				m.recipientInput.Focus()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	m.wizard.SetAmount(m.amountInput.Value())
	return m, cmd
}

func (m Model) updateMethodDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Back) {
		m.wizard.Back()
		m.amountInput.Focus()
		return m, nil
	}

	if m.wizard.Method() == wizard.DeliverAsCash {
		if key.Matches(msg, m.keymap.Continue) {
			m.wizard.SetRecipientName(m.recipientInput.Value())
			if m.wizard.CanAdvance() {
				_ = m.wizard.Advance()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.recipientInput, cmd = m.recipientInput.Update(msg)
		m.wizard.SetRecipientName(m.recipientInput.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.bankCursor > 0 {
			m.bankCursor--
			m.selectBank()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.bankCursor < len(m.banks)-1 {
			m.bankCursor++
			m.selectBank()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Verify):
		return m.startLookup()

	case key.Matches(msg, m.keymap.Continue):
		if m.wizard.CanAdvance() {
			_ = m.wizard.Advance()
			return m, nil
		}
		// Enter verifies first when the holder is still unresolved.
		return m.startLookup()
	}

	var cmd tea.Cmd
	m.accountInput, cmd = m.accountInput.Update(msg)
	if m.wizard.Bank().ID == "" {
		m.selectBank()
	}
	m.wizard.SetAccountNumber(m.accountInput.Value())
	return m, cmd
}

func (m *Model) selectBank() {
	m.wizard.SelectBank(m.banks[m.bankCursor])
}

func (m Model) startLookup() (tea.Model, tea.Cmd) {
	if m.wizard.Bank().ID == "" || m.wizard.AccountNumber() == "" {
		return m, nil
	}
	m.looking = true
	m.lookupErr = ""
	// The command goroutine runs the captured lookup only; the result
	// is applied to the wizard when the message arrives.
	lookup := m.wizard.StartLookup()
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		name, err := lookup.Run(context.Background())
		return lookupResultMsg{name: name, err: err}
	})
}

func (m Model) updateConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.wizard.Back()
		return m, nil
	case key.Matches(msg, m.keymap.Continue):
		_ = m.wizard.Advance()
		m.cardFocus = 0
		m.cardInputs[0].Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) updatePaymentCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.wizard.Back()
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		m.cardInputs[m.cardFocus].Blur()
		m.cardFocus = (m.cardFocus + 1) % cardFieldCount
		m.cardInputs[m.cardFocus].Focus()
		return m, nil

	case key.Matches(msg, m.keymap.Continue):
		m.syncCard()
		settlement, err := m.wizard.StartPayment()
		if err != nil {
			return m, nil
		}
		m.paying = true
		m.payErr = ""
		sess := m.session
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			txn, err := settlement.Run(context.Background(), sess)
			return paymentDoneMsg{txn: txn, err: err}
		})
	}

	var cmd tea.Cmd
	m.cardInputs[m.cardFocus], cmd = m.cardInputs[m.cardFocus].Update(msg)
	m.syncCard()
	return m, cmd
}

func (m *Model) syncCard() {
	m.wizard.SetCard(wizard.CardDetails{
		Number:     m.cardInputs[0].Value(),
		Expiry:     m.cardInputs[1].Value(),
		CVV:        m.cardInputs[2].Value(),
		HolderName: m.cardInputs[3].Value(),
	})
}

func (m Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.New) {
		m.wizard.Reset()
		m.amountInput.SetValue("")
		m.accountInput.SetValue("")
		m.recipientInput.SetValue("")
		for i := range m.cardInputs {
			m.cardInputs[i].SetValue("")
			m.cardInputs[i].Blur()
		}
		m.bankCursor = 0
		m.lookupErr = ""
		m.payErr = ""
		m.amountInput.Focus()
		return m, nil
	}
	if key.Matches(msg, m.keymap.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
