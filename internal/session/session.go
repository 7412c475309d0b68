// Package session owns the signed-in user and mediates all access to
// the session store. There is exactly one Service per running session.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
	"github.com/bridgeremit/remit/internal/storage"
)

// Service is the session-scoped state container.
type Service struct {
	store     *storage.Store
	user      *model.User
	authDelay time.Duration
}

// NewService creates a session over the given store. authDelay is the
// simulated sign-in/sign-up latency.
func NewService(store *storage.Store, authDelay time.Duration) *Service {
	return &Service{store: store, authDelay: authDelay}
}

// User returns the current user, nil when nobody has signed in.
func (s *Service) User() *model.User {
	return s.user
}

// IsGuest reports whether the session is unauthenticated.
func (s *Service) IsGuest() bool {
	return s.user.IsGuest()
}

// SignIn authenticates the user. The backend is simulated: any
// non-empty email and password succeed after the configured delay.
func (s *Service) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.NewUserError("Email and password are required", nil)
	}
	if err := common.Sleep(ctx, s.authDelay); err != nil {
		return nil, err
	}

	name := email[:strings.IndexByte(email+"@", '@')]
	s.user = &model.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Language: "en",
	}
	slog.Info("user signed in", "email", email)
	return s.user, nil
}

// SignUp registers a new user. Simulated like SignIn.
func (s *Service) SignUp(ctx context.Context, name, email, phone, password string) (*model.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, common.NewUserError("Name, email, and password are required", nil)
	}
	if err := common.Sleep(ctx, s.authDelay); err != nil {
		return nil, err
	}

	s.user = &model.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Language: "en",
	}
	slog.Info("user signed up", "email", email)
	return s.user, nil
}

// ContinueAsGuest starts an unauthenticated session.
func (s *Service) ContinueAsGuest() *model.User {
	s.user = &model.User{ID: model.GuestUserID, Name: "Guest User", Language: "en"}
	return s.user
}

// SignOut clears the current user.
func (s *Service) SignOut() {
	s.user = nil
}

// SetLanguage switches the session language between en and am.
func (s *Service) SetLanguage(lang string) error {
	if lang != "en" && lang != "am" {
		return fmt.Errorf("unsupported language %q", lang)
	}
	if s.user != nil {
		s.user.Language = lang
	}
	return nil
}

// Language returns the session language, defaulting to en.
func (s *Service) Language() string {
	if s.user == nil || s.user.Language == "" {
		return "en"
	}
	return s.user.Language
}

// Recipients returns the saved payees visible to this session. Guest
// sessions always see an empty set, whatever the store holds.
func (s *Service) Recipients(ctx context.Context) ([]model.Recipient, error) {
	if s.IsGuest() {
		return []model.Recipient{}, nil
	}
	return s.store.ListRecipients(ctx)
}

// AddRecipient saves a payee for the signed-in user.
func (s *Service) AddRecipient(ctx context.Context, r *model.Recipient) error {
	if s.IsGuest() {
		return common.NewUserError("Sign in to save recipients", nil)
	}
	return s.store.AddRecipient(ctx, r)
}

// Record appends a transaction and its notification to the session log.
func (s *Service) Record(ctx context.Context, txn *model.Transaction) (model.Notification, error) {
	note, err := s.store.RecordTransaction(ctx, txn)
	if err != nil {
		return model.Notification{}, err
	}
	slog.Info("transaction recorded",
		"id", txn.ID,
		"category", txn.Category,
		"amount", txn.Amount.StringFixed(2),
		"status", txn.Status)
	return note, nil
}

// Store exposes the underlying session store for read paths that need
// no per-user filtering (transactions, notifications, gift packages).
func (s *Service) Store() *storage.Store {
	return s.store
}
