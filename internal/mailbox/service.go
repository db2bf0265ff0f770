package mailbox

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mixelka/tempmailbot/internal/classify"
	"github.com/mixelka/tempmailbot/internal/mailtm"
	"github.com/mixelka/tempmailbot/internal/parser"
	"github.com/mixelka/tempmailbot/internal/session"
	"github.com/mixelka/tempmailbot/pkg/models"
)

// ErrNoSession is returned when the user has no active mailbox.
// Expected state, not a failure.
var ErrNoSession = errors.New("no active mailbox")

// ErrNoMessages is returned when the inbox is empty.
// Expected state, not a failure.
var ErrNoMessages = errors.New("no messages yet")

// maxMessages caps one fetch at the most recent messages in provider order
const maxMessages = 5

// addressPrefix marks addresses generated by the bot
const addressPrefix = "tg"

// Provider is the mail.tm surface the pipeline needs
type Provider interface {
	Domains(ctx context.Context) ([]string, error)
	CreateAccount(ctx context.Context, address, password string) error
	Token(ctx context.Context, address, password string) (string, error)
	Me(ctx context.Context, token string) (*mailtm.Account, error)
	Messages(ctx context.Context, token string) ([]mailtm.MessageSummary, error)
	Message(ctx context.Context, token, id string) (*mailtm.MessageDetail, error)
}

// Journal records mailbox lifecycle events for audit and /history
type Journal interface {
	RecordMailboxCreated(ctx context.Context, userID int64, address string) error
	RecordCodesFetched(ctx context.Context, userID int64, messageCount int) error
}

// Service orchestrates the mailbox lifecycle and the code extraction pipeline
type Service struct {
	provider   Provider
	sessions   *session.Store
	normalizer *parser.Normalizer
	extractor  *parser.CodeExtractor
	classifier *classify.Classifier
	journal    Journal // optional
	logger     *slog.Logger
}

// Deps dependencies for creating a service
type Deps struct {
	Provider   Provider
	Sessions   *session.Store
	Normalizer *parser.Normalizer
	Extractor  *parser.CodeExtractor
	Classifier *classify.Classifier
	Journal    Journal
	Logger     *slog.Logger
}

// NewService creates a new mailbox service
func NewService(deps Deps) *Service {
	return &Service{
		provider:   deps.Provider,
		sessions:   deps.Sessions,
		normalizer: deps.Normalizer,
		extractor:  deps.Extractor,
		classifier: deps.Classifier,
		journal:    deps.Journal,
		logger:     deps.Logger.With("component", "mailbox_service"),
	}
}

// CreateMailbox provisions a fresh mailbox for the user and stores the
// session. All-or-nothing: a failure at any step leaves no partial session,
// and a previous session stays in place until the new one is complete.
func (s *Service) CreateMailbox(ctx context.Context, userID int64) (models.Session, error) {
	domains, err := s.provider.Domains(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to list domains: %w", err)
	}

	address, err := generateAddress(domains[0])
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to generate address: %w", err)
	}
	password, err := generatePassword()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to generate password: %w", err)
	}

	if err := s.provider.CreateAccount(ctx, address, password); err != nil {
		return models.Session{}, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.provider.Token(ctx, address, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to obtain token: %w", err)
	}

	account, err := s.provider.Me(ctx, token)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	sess := models.Session{
		Address:   address,
		Password:  password,
		Token:     token,
		AccountID: account.ID,
	}
	s.sessions.Put(userID, sess)

	if s.journal != nil {
		if err := s.journal.RecordMailboxCreated(ctx, userID, address); err != nil {
			s.logger.Warn("failed to journal mailbox creation", "error", err)
		}
	}

	s.logger.Info("mailbox created", "user_id", userID, "address", address)
	return sess, nil
}

// CurrentMailbox returns the user's active session, if any
func (s *Service) CurrentMailbox(userID int64) (models.Session, bool) {
	return s.sessions.Get(userID)
}

// FetchCodes lists the inbox and builds one CodeResult per message, in
// provider order, capped at the most recent five. A message that vanished
// between listing and fetching is skipped; any other provider error fails
// the whole fetch.
func (s *Service) FetchCodes(ctx context.Context, userID int64) ([]models.CodeResult, error) {
	sess, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}

	summaries, err := s.provider.Messages(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if len(summaries) == 0 {
		return nil, ErrNoMessages
	}

	if s.journal != nil {
		if err := s.journal.RecordCodesFetched(ctx, userID, len(summaries)); err != nil {
			s.logger.Warn("failed to journal fetch", "error", err)
		}
	}

	if len(summaries) > maxMessages {
		summaries = summaries[:maxMessages]
	}

	// Fetch details concurrently but keep provider order: each goroutine
	// writes only its own index.
	type slot struct {
		detail *mailtm.MessageDetail
		err    error
	}
	slots := make([]slot, len(summaries))

	var wg sync.WaitGroup
	for i, summary := range summaries {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			detail, err := s.provider.Message(ctx, sess.Token, id)
			slots[i] = slot{detail: detail, err: err}
		}(i, summary.ID)
	}
	wg.Wait()

	results := make([]models.CodeResult, 0, len(slots))
	for i, sl := range slots {
		if sl.err != nil {
			if errors.Is(sl.err, mailtm.ErrNotFound) {
				s.logger.Debug("message vanished before fetch, skipping",
					"message_id", summaries[i].ID)
				continue
			}
			return nil, fmt.Errorf("failed to fetch message: %w", sl.err)
		}
		results = append(results, s.process(sl.detail))
	}

	s.logger.Info("codes fetched", "user_id", userID, "messages", len(results))
	return results, nil
}

// process derives one result tuple from a raw message
func (s *Service) process(detail *mailtm.MessageDetail) models.CodeResult {
	body := s.normalizer.Normalize(detail.Text, detail.HTML)
	code, _ := s.extractor.Extract(body)
	service := s.classifier.Classify(detail.Subject + " " + body)

	return models.CodeResult{
		Service: service,
		Subject: detail.Subject,
		Time:    formatTime(detail.CreatedAt),
		Code:    code,
	}
}

// formatTime renders the provider timestamp as HH:MM in its own offset
func formatTime(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		// Some payloads omit the zone; fall back to the bare layout
		t, err = time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(createdAt, "Z"))
		if err != nil {
			return createdAt
		}
	}
	return t.Format("15:04")
}

// generateAddress builds a random local part on the given domain.
// 5 random bytes give enough entropy that collisions are negligible.
func generateAddress(domain string) (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return addressPrefix + hex.EncodeToString(buf) + "@" + domain, nil
}

// generatePassword returns a random URL-safe password.
// Together with the address it is the only secret protecting the mailbox.
func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
