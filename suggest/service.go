// Package suggest implements the suggestion lifecycle: submission admission,
// status triage, votes, bulk operations and read-side projections. The store
// is the single source of truth; Discord rendering happens in the handlers.
package suggest

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"suggestbot/db"
	"suggestbot/model"
	"suggestbot/ratelimit"
)

// Notifier delivers best-effort notifications to suggestion authors. Delivery
// failures are logged and dropped; they never abort the triggering operation.
type Notifier interface {
	NotifyStatusChange(sug *model.Suggestion) error
}

// Service owns the suggestion lifecycle. Construct one per process with the
// shared store; tests construct isolated instances with an in-memory store
// and a fake clock.
type Service struct {
	store    *db.Store
	limiter  *ratelimit.Limiter
	notifier Notifier
	maxLen   int
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithNotifier sets the author-notification sink.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// New creates a Service with the given store, limiter and maximum suggestion
// text length.
func New(store *db.Store, limiter *ratelimit.Limiter, maxLen int, opts ...Option) *Service {
	s := &Service{
		store:   store,
		limiter: limiter,
		maxLen:  maxLen,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// storeErr logs the engine error and converts it to a generic ErrStore so
// callers never see driver detail.
func (s *Service) storeErr(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("store operation failed")
	return fmt.Errorf("%w: %s", ErrStore, op)
}

// sanitizeText trims surrounding whitespace and strips control characters
// from submitted text before validation.
func sanitizeText(text string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' {
			return -1
		}
		return r
	}, text))
}

// CheckSubmit validates and admits a submission attempt before anything is
// posted. On success the attempt is counted against the user's rate-limit
// window and the sanitized text is returned; the caller then posts the
// suggestion message and records it with RecordSubmission.
func (s *Service) CheckSubmit(userID, text string) (string, error) {
	text = sanitizeText(text)
	if text == "" {
		return "", &ValidationError{Reason: "suggestion text is empty"}
	}
	if utf8.RuneCountInString(text) > s.maxLen {
		return "", &ValidationError{Reason: fmt.Sprintf("suggestion exceeds %d characters", s.maxLen)}
	}

	allowed, retryAfter := s.limiter.Check(userID)
	if !allowed {
		return "", &RateLimitedError{RetryAfter: retryAfter}
	}
	return text, nil
}

// RecordSubmission persists a freshly posted suggestion with status Pending.
// The ID is the message ID the rendering layer assigned at post time.
func (s *Service) RecordSubmission(id, userID, guildID, text, category string, anonymous bool) (*model.Suggestion, error) {
	if category == "" {
		category = "General"
	}
	sug := &model.Suggestion{
		ID:          id,
		UserID:      userID,
		GuildID:     guildID,
		Text:        text,
		Status:      model.StatusPending,
		Category:    category,
		IsAnonymous: anonymous,
		CreatedAt:   s.now().Unix(),
	}
	if err := s.store.AddSuggestion(sug); err != nil {
		return nil, s.storeErr("add suggestion", err)
	}
	return sug, nil
}

// Get returns a suggestion by ID, or ErrNotFound.
func (s *Service) Get(id string) (*model.Suggestion, error) {
	sug, err := s.store.GetSuggestion(id)
	if err != nil {
		return nil, s.storeErr("get suggestion", err)
	}
	if sug == nil {
		return nil, ErrNotFound
	}
	return sug, nil
}

// SetStatus moves a suggestion to a new status, persisting the reason and
// change timestamp. Every transition is permitted; there is no guard on the
// current status. The author is notified best-effort unless anonymous.
func (s *Service) SetStatus(id, rawStatus, reason string) (*model.Suggestion, error) {
	status, err := model.ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
	}

	sug, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	now := s.now().Unix()
	if err := s.store.UpdateSuggestionStatus(id, status, reason, now); err != nil {
		return nil, s.storeErr("update status", err)
	}
	sug.Status = status
	sug.StatusReason = reason
	sug.StatusUpdatedAt = now

	if s.notifier != nil && !sug.IsAnonymous {
		if err := s.notifier.NotifyStatusChange(sug); err != nil {
			log.Warn().Err(err).Str("suggestion_id", id).Str("user_id", sug.UserID).
				Msg("author notification failed, continuing")
		}
	}
	return sug, nil
}

// EditText replaces a suggestion's text. Only the author may edit; status and
// category are untouched.
func (s *Service) EditText(id, requesterID, newText string) (*model.Suggestion, error) {
	sug, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sug.UserID != requesterID {
		return nil, ErrForbidden
	}

	newText = sanitizeText(newText)
	if newText == "" {
		return nil, &ValidationError{Reason: "suggestion text is empty"}
	}
	if utf8.RuneCountInString(newText) > s.maxLen {
		return nil, &ValidationError{Reason: fmt.Sprintf("suggestion exceeds %d characters", s.maxLen)}
	}

	if err := s.store.UpdateSuggestionText(id, newText); err != nil {
		return nil, s.storeErr("update text", err)
	}
	sug.Text = newText
	return sug, nil
}

// sinceFromDays converts an age filter in days to a unix lower bound;
// 0 days means no filter.
func (s *Service) sinceFromDays(days int) int64 {
	if days <= 0 {
		return 0
	}
	return s.now().Add(-time.Duration(days) * 24 * time.Hour).Unix()
}

// CountBulkStatus is the preview phase of a mass status update: it validates
// the target status and returns how many suggestions the update would touch.
func (s *Service) CountBulkStatus(rawStatus, category string, maxAgeDays int) (int, error) {
	if _, err := model.ParseStatus(rawStatus); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
	}
	count, err := s.store.CountForMassUpdate(category, s.sinceFromDays(maxAgeDays))
	if err != nil {
		return 0, s.storeErr("count mass update", err)
	}
	return count, nil
}

// ApplyBulkStatus is the commit phase of a mass status update. It must only
// run after the caller confirmed the CountBulkStatus preview.
func (s *Service) ApplyBulkStatus(rawStatus, category string, maxAgeDays int) (int, error) {
	status, err := model.ParseStatus(rawStatus)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
	}
	count, err := s.store.MassUpdateStatus(status, category, s.sinceFromDays(maxAgeDays), s.now().Unix())
	if err != nil {
		return 0, s.storeErr("mass update status", err)
	}
	log.Info().Int("count", count).Str("status", string(status)).Msg("mass status update applied")
	return count, nil
}

// CountPurge previews how many suggestions a purge would delete.
func (s *Service) CountPurge(maxAgeDays int, rawStatus string) (int, error) {
	status := model.Status("")
	if rawStatus != "" {
		parsed, err := model.ParseStatus(rawStatus)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
		}
		status = parsed
	}
	count, err := s.store.CountForPurge(s.purgeCutoff(maxAgeDays), status)
	if err != nil {
		return 0, s.storeErr("count purge", err)
	}
	return count, nil
}

// ApplyPurge deletes suggestions older than maxAgeDays (optionally filtered
// to one status), cascading deletion of their votes. Commit phase only.
func (s *Service) ApplyPurge(maxAgeDays int, rawStatus string) (int, error) {
	status := model.Status("")
	if rawStatus != "" {
		parsed, err := model.ParseStatus(rawStatus)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
		}
		status = parsed
	}
	count, err := s.store.PurgeSuggestions(s.purgeCutoff(maxAgeDays), status)
	if err != nil {
		return 0, s.storeErr("purge suggestions", err)
	}
	log.Info().Int("count", count).Int("max_age_days", maxAgeDays).Msg("purge applied")
	return count, nil
}

func (s *Service) purgeCutoff(maxAgeDays int) int64 {
	return s.now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour).Unix()
}

// Export returns the read-only export projection, newest filter applied via
// maxAgeDays (0 = everything).
func (s *Service) Export(maxAgeDays int) ([]*model.ExportRecord, error) {
	records, err := s.store.ExportSuggestions(s.sinceFromDays(maxAgeDays))
	if err != nil {
		return nil, s.storeErr("export suggestions", err)
	}
	return records, nil
}

// Stats returns per-status counts plus the total.
func (s *Service) Stats() (*model.Stats, error) {
	stats, err := s.store.GetStats()
	if err != nil {
		return nil, s.storeErr("get stats", err)
	}
	return stats, nil
}

// Search returns suggestions whose text contains query. The match is a
// case-sensitive substring containment.
func (s *Service) Search(query string) ([]*model.Suggestion, error) {
	results, err := s.store.SearchSuggestions(query)
	if err != nil {
		return nil, s.storeErr("search suggestions", err)
	}
	return results, nil
}

// UserSuggestions returns a user's suggestions, newest first.
func (s *Service) UserSuggestions(userID string) ([]*model.Suggestion, error) {
	results, err := s.store.GetUserSuggestions(userID)
	if err != nil {
		return nil, s.storeErr("get user suggestions", err)
	}
	return results, nil
}

// Top returns the highest-upvoted suggestions for a timeframe of
// "all", "week" or "month".
func (s *Service) Top(timeframe string, limit int) ([]*model.ExportRecord, error) {
	var since int64
	switch timeframe {
	case "week":
		since = s.now().Add(-7 * 24 * time.Hour).Unix()
	case "month":
		since = s.now().Add(-30 * 24 * time.Hour).Unix()
	default:
		since = 0
	}
	records, err := s.store.GetTopSuggestions(since, limit)
	if err != nil {
		return nil, s.storeErr("get top suggestions", err)
	}
	return records, nil
}

// CastVote upserts the (suggestion, voter) vote, replacing any prior kind.
func (s *Service) CastVote(suggestionID, userID string, kind model.VoteKind) error {
	if err := s.store.CastVote(&model.Vote{
		SuggestionID: suggestionID,
		UserID:       userID,
		Kind:         kind,
		CreatedAt:    s.now().Unix(),
	}); err != nil {
		return s.storeErr("cast vote", err)
	}
	return nil
}

// UserVote returns the user's current vote on a suggestion, or nil when the
// user has not voted.
func (s *Service) UserVote(suggestionID, userID string) (*model.Vote, error) {
	vote, err := s.store.GetVote(suggestionID, userID)
	if err != nil {
		return nil, s.storeErr("get vote", err)
	}
	return vote, nil
}

// RetractVote removes the user's vote if present; absent votes are a no-op.
func (s *Service) RetractVote(suggestionID, userID string) error {
	if err := s.store.RetractVote(suggestionID, userID); err != nil {
		return s.storeErr("retract vote", err)
	}
	return nil
}

// VoteCounts recomputes the tally for a suggestion.
func (s *Service) VoteCounts(suggestionID string) (*model.VoteCounts, error) {
	counts, err := s.store.VoteCounts(suggestionID)
	if err != nil {
		return nil, s.storeErr("vote counts", err)
	}
	return counts, nil
}

// Channel returns the configured suggestion channel for a guild, or
// ErrNoChannel.
func (s *Service) Channel(guildID string) (string, error) {
	channelID, err := s.store.GetSuggestionChannel(guildID)
	if err != nil {
		return "", s.storeErr("get channel", err)
	}
	if channelID == "" {
		return "", ErrNoChannel
	}
	return channelID, nil
}

// SetChannel upserts the suggestion channel for a guild.
func (s *Service) SetChannel(guildID, channelID string) error {
	if err := s.store.SetSuggestionChannel(guildID, channelID); err != nil {
		return s.storeErr("set channel", err)
	}
	return nil
}

// AddCategory creates a category; false means the name already existed.
func (s *Service) AddCategory(name string) (bool, error) {
	added, err := s.store.AddCategory(name)
	if err != nil {
		return false, s.storeErr("add category", err)
	}
	return added, nil
}

// RemoveCategory deletes a category; false means the name was absent.
func (s *Service) RemoveCategory(name string) (bool, error) {
	removed, err := s.store.RemoveCategory(name)
	if err != nil {
		return false, s.storeErr("remove category", err)
	}
	return removed, nil
}

// Categories lists all category names.
func (s *Service) Categories() ([]string, error) {
	names, err := s.store.ListCategories()
	if err != nil {
		return nil, s.storeErr("list categories", err)
	}
	return names, nil
}
