package suggestions

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/model"
)

// voteKindForEmoji maps the vote reactions onto vote kinds. Other emoji are
// not votes and are ignored.
func voteKindForEmoji(emojiName string) (model.VoteKind, bool) {
	switch emojiName {
	case emojiUpvote:
		return model.VoteUp, true
	case emojiDownvote:
		return model.VoteDown, true
	default:
		return "", false
	}
}

// MessageReactionAdd handles reaction additions: a vote reaction on a tracked
// suggestion upserts that user's single vote, replacing any prior kind.
func MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}
	kind, ok := voteKindForEmoji(r.Emoji.Name)
	if !ok {
		return
	}

	sug, err := svc.Get(r.MessageID)
	if err != nil {
		return // not a suggestion message
	}

	prior, err := svc.UserVote(sug.ID, r.UserID)
	if err != nil {
		log.Error().Err(err).Str("suggestion_id", sug.ID).Msg("failed to load prior vote")
		return
	}
	if prior != nil && prior.Kind == kind {
		return // same reaction again, nothing changes
	}

	if err := svc.CastVote(sug.ID, r.UserID, kind); err != nil {
		log.Error().Err(err).Str("suggestion_id", sug.ID).Str("user_id", r.UserID).Msg("failed to cast vote")
		return
	}

	// The store is already correct; clearing the user's old reaction from
	// the message is cosmetic and allowed to fail.
	if prior != nil {
		stale := emojiUpvote
		if prior.Kind == model.VoteDown {
			stale = emojiDownvote
		}
		if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, stale, r.UserID); err != nil {
			log.Warn().Err(err).Str("suggestion_id", sug.ID).Str("user_id", r.UserID).Msg("failed to remove stale vote reaction")
		}
	}
}

// MessageReactionRemove handles reaction removals: retracting an absent vote
// is a no-op.
func MessageReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.UserID == s.State.User.ID {
		return
	}
	kind, ok := voteKindForEmoji(r.Emoji.Name)
	if !ok {
		return
	}

	sug, err := svc.Get(r.MessageID)
	if err != nil {
		return
	}

	// Only retract when the removed reaction matches the recorded vote.
	// This also covers the bot clearing a stale reaction after a vote switch.
	prior, err := svc.UserVote(sug.ID, r.UserID)
	if err != nil || prior == nil || prior.Kind != kind {
		return
	}

	if err := svc.RetractVote(sug.ID, r.UserID); err != nil {
		log.Error().Err(err).Str("suggestion_id", sug.ID).Str("user_id", r.UserID).Msg("failed to retract vote")
	}
}
