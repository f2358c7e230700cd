package suggest_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbot/db"
	"suggestbot/model"
	"suggestbot/ratelimit"
	"suggestbot/suggest"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingNotifier struct {
	notified []*model.Suggestion
	fail     bool
}

func (n *recordingNotifier) NotifyStatusChange(sug *model.Suggestion) error {
	n.notified = append(n.notified, sug)
	if n.fail {
		return errors.New("dm delivery failed")
	}
	return nil
}

type fixture struct {
	svc      *suggest.Service
	clock    *fakeClock
	notifier *recordingNotifier
}

func newFixture(t *testing.T, maxLen, maxPerWindow int) *fixture {
	t.Helper()
	store, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := ratelimit.New(5*time.Minute, maxPerWindow, ratelimit.WithClock(clock.Now))
	notifier := &recordingNotifier{}

	svc := suggest.New(store, limiter, maxLen,
		suggest.WithClock(clock.Now),
		suggest.WithNotifier(notifier),
	)
	return &fixture{svc: svc, clock: clock, notifier: notifier}
}

func (f *fixture) submit(t *testing.T, id, userID, text, category string, anonymous bool) *model.Suggestion {
	t.Helper()
	checked, err := f.svc.CheckSubmit(userID, text)
	require.NoError(t, err)
	sug, err := f.svc.RecordSubmission(id, userID, "guild1", checked, category, anonymous)
	require.NoError(t, err)
	return sug
}

func TestCheckSubmit_LengthBoundary(t *testing.T) {
	f := newFixture(t, 20, 10)

	atLimit := strings.Repeat("a", 20)
	text, err := f.svc.CheckSubmit("user1", atLimit)
	require.NoError(t, err, "text of exactly max length is accepted")
	assert.Equal(t, atLimit, text)

	_, err = f.svc.CheckSubmit("user1", strings.Repeat("a", 21))
	var validation *suggest.ValidationError
	require.ErrorAs(t, err, &validation, "one over the limit is a validation error")
}

func TestCheckSubmit_SanitizesBeforeValidation(t *testing.T) {
	f := newFixture(t, 1000, 10)

	text, err := f.svc.CheckSubmit("user1", "  add \x00dark mode\r  ")
	require.NoError(t, err)
	assert.Equal(t, "add dark mode", text)

	_, err = f.svc.CheckSubmit("user1", "\x00\x01  ")
	var validation *suggest.ValidationError
	require.ErrorAs(t, err, &validation, "text that sanitizes to nothing is rejected")
}

func TestCheckSubmit_RateLimited(t *testing.T) {
	f := newFixture(t, 1000, 3)

	for n := 0; n < 3; n++ {
		_, err := f.svc.CheckSubmit("user1", "a fine suggestion")
		require.NoError(t, err)
	}

	_, err := f.svc.CheckSubmit("user1", "one too many")
	var limited *suggest.RateLimitedError
	require.ErrorAs(t, err, &limited, "exactly the attempt past the limit is denied")
	assert.Positive(t, limited.RetryAfter)

	// Another user is unaffected.
	_, err = f.svc.CheckSubmit("user2", "different user")
	require.NoError(t, err)
}

func TestRecordSubmission_DefaultsAndInitialStatus(t *testing.T) {
	f := newFixture(t, 1000, 10)

	sug, err := f.svc.RecordSubmission("100", "user1", "guild1", "add dark mode", "", false)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, sug.Status)
	assert.Equal(t, "General", sug.Category, "empty category defaults to General")
	assert.Equal(t, f.clock.Now().Unix(), sug.CreatedAt)
}

func TestSetStatus_AnyTransitionAllowed(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "General", false)

	// Every ordered pair of statuses must be a legal transition.
	for _, from := range model.AllStatuses {
		for _, to := range model.AllStatuses {
			if from == to {
				continue
			}
			_, err := f.svc.SetStatus("100", from.String(), "")
			require.NoError(t, err)
			sug, err := f.svc.SetStatus("100", to.String(), "")
			require.NoError(t, err, "transition %s -> %s must be allowed", from, to)
			assert.Equal(t, to, sug.Status)
		}
	}
}

func TestSetStatus_PersistsReasonAndTimestamp(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "General", false)

	f.clock.Advance(time.Hour)
	sug, err := f.svc.SetStatus("100", "Rejected", "duplicate of 42")
	require.NoError(t, err)
	assert.Equal(t, "duplicate of 42", sug.StatusReason)
	assert.Equal(t, f.clock.Now().Unix(), sug.StatusUpdatedAt)

	stored, err := f.svc.Get("100")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.Status)
	assert.Equal(t, "duplicate of 42", stored.StatusReason)
}

func TestSetStatus_Errors(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "General", false)

	_, err := f.svc.SetStatus("999", "Accepted", "")
	assert.ErrorIs(t, err, suggest.ErrNotFound)

	_, err = f.svc.SetStatus("100", "Approved", "")
	assert.ErrorIs(t, err, suggest.ErrInvalidStatus)
}

func TestSetStatus_NotifiesAuthor(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "General", false)

	_, err := f.svc.SetStatus("100", "Accepted", "great idea")
	require.NoError(t, err)
	require.Len(t, f.notifier.notified, 1)
	assert.Equal(t, "user1", f.notifier.notified[0].UserID)
}

func TestSetStatus_SkipsNotifyForAnonymous(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "General", true)

	_, err := f.svc.SetStatus("100", "Accepted", "")
	require.NoError(t, err)
	assert.Empty(t, f.notifier.notified, "anonymous authors are not notified")
}

func TestSetStatus_NotifyFailureDoesNotAbort(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.notifier.fail = true
	f.submit(t, "100", "user1", "add dark mode", "General", false)

	sug, err := f.svc.SetStatus("100", "Accepted", "")
	require.NoError(t, err, "notification delivery failure must not fail the operation")
	assert.Equal(t, model.StatusAccepted, sug.Status)
}

func TestEditText_OwnershipAndPreservation(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "Bugs", false)
	_, err := f.svc.SetStatus("100", "Under Review", "")
	require.NoError(t, err)

	_, err = f.svc.EditText("100", "intruder", "hijacked")
	assert.ErrorIs(t, err, suggest.ErrForbidden)

	sug, err := f.svc.EditText("100", "user1", "add dark mode everywhere")
	require.NoError(t, err)
	assert.Equal(t, "add dark mode everywhere", sug.Text)
	assert.Equal(t, model.StatusUnderReview, sug.Status, "edit preserves status")
	assert.Equal(t, "Bugs", sug.Category, "edit preserves category")

	_, err = f.svc.EditText("100", "user1", strings.Repeat("a", 1001))
	var validation *suggest.ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = f.svc.EditText("999", "user1", "whatever")
	assert.ErrorIs(t, err, suggest.ErrNotFound)
}

func TestBulkStatus_TwoPhaseCountsThenApplies(t *testing.T) {
	f := newFixture(t, 1000, 100)

	// Three suggestions that will age past the 7-day filter, then one fresh.
	f.submit(t, "1", "u1", "old bug one", "Bugs", false)
	f.submit(t, "2", "u2", "old bug two", "Bugs", false)
	f.submit(t, "3", "u3", "old general", "General", false)
	f.clock.Advance(10 * 24 * time.Hour)
	f.submit(t, "5", "u5", "fresh bug", "Bugs", false)

	count, err := f.svc.CountBulkStatus("Accepted", "Bugs", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the fresh Bugs suggestion matches both filters")

	applied, err := f.svc.ApplyBulkStatus("Accepted", "Bugs", 7)
	require.NoError(t, err)
	assert.Equal(t, count, applied, "apply touches exactly the previewed rows")

	sug, err := f.svc.Get("5")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, sug.Status)

	unchanged, err := f.svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, unchanged.Status)
}

func TestBulkStatus_InvalidStatusRejectedAtPreview(t *testing.T) {
	f := newFixture(t, 1000, 10)

	_, err := f.svc.CountBulkStatus("Shipped", "", 0)
	assert.ErrorIs(t, err, suggest.ErrInvalidStatus)

	_, err = f.svc.ApplyBulkStatus("Shipped", "", 0)
	assert.ErrorIs(t, err, suggest.ErrInvalidStatus)
}

func TestPurge_AgeAndStatusFilterWithVoteCascade(t *testing.T) {
	f := newFixture(t, 1000, 100)

	f.submit(t, "old-rejected", "u1", "stale and rejected", "General", false)
	f.submit(t, "old-pending", "u2", "stale but pending", "General", false)
	_, err := f.svc.SetStatus("old-rejected", "Rejected", "")
	require.NoError(t, err)
	require.NoError(t, f.svc.CastVote("old-rejected", "voter", model.VoteUp))

	f.clock.Advance(40 * 24 * time.Hour)
	f.submit(t, "new-rejected", "u3", "fresh and rejected", "General", false)
	_, err = f.svc.SetStatus("new-rejected", "Rejected", "")
	require.NoError(t, err)

	count, err := f.svc.CountPurge(30, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	deleted, err := f.svc.ApplyPurge(30, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = f.svc.Get("old-rejected")
	assert.ErrorIs(t, err, suggest.ErrNotFound)

	counts, err := f.svc.VoteCounts("old-rejected")
	require.NoError(t, err)
	assert.Zero(t, counts.Up, "purged suggestions lose their votes")

	_, err = f.svc.Get("old-pending")
	assert.NoError(t, err, "other statuses survive the purge")
	_, err = f.svc.Get("new-rejected")
	assert.NoError(t, err, "younger suggestions survive the purge")
}

func TestVotes_UpThenDownLeavesExactlyOneDown(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "add dark mode", "General", false)

	require.NoError(t, f.svc.CastVote("100", "voter1", model.VoteUp))
	require.NoError(t, f.svc.CastVote("100", "voter1", model.VoteDown))

	counts, err := f.svc.VoteCounts("100")
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Up)
	assert.Equal(t, 1, counts.Down)

	require.NoError(t, f.svc.RetractVote("100", "voter1"))
	require.NoError(t, f.svc.RetractVote("100", "voter1"), "retracting an absent vote is a no-op")
}

func TestSearch_RawSubstringMatch(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "Improve the onboarding flow", "General", false)

	results, err := f.svc.Search("onboarding")
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = f.svc.Search("Onboarding")
	require.NoError(t, err)
	assert.Empty(t, results, "the match is case-sensitive")
}

func TestChannel_AbsentAndUpsert(t *testing.T) {
	f := newFixture(t, 1000, 10)

	_, err := f.svc.Channel("guild1")
	assert.ErrorIs(t, err, suggest.ErrNoChannel)

	require.NoError(t, f.svc.SetChannel("guild1", "chan1"))
	require.NoError(t, f.svc.SetChannel("guild1", "chan2"))

	channelID, err := f.svc.Channel("guild1")
	require.NoError(t, err)
	assert.Equal(t, "chan2", channelID)
}

func TestStatsAndExport(t *testing.T) {
	f := newFixture(t, 1000, 10)
	f.submit(t, "100", "user1", "one", "General", false)
	f.clock.Advance(time.Minute)
	f.submit(t, "200", "user2", "two", "General", false)
	_, err := f.svc.SetStatus("200", "Accepted", "")
	require.NoError(t, err)
	require.NoError(t, f.svc.CastVote("100", "voter", model.VoteUp))

	stats, err := f.svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Accepted)

	records, err := f.svc.Export(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Upvotes)
}
