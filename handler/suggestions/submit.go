package suggestions

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/utils"
)

// suggestCommandHandler handles /suggest: admission checks, posting the embed
// with seed reactions and a discussion thread, then recording the row keyed
// by the posted message ID.
func suggestCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferEphemeral(s, i) {
		return
	}

	om := commandOptions(i)
	text := om["suggestion"].StringValue()
	category := "General"
	if opt, ok := om["category"]; ok {
		category = opt.StringValue()
	}
	anonymous := false
	if opt, ok := om["anonymous"]; ok {
		anonymous = opt.BoolValue()
	}

	// Resolve the channel first so a misconfigured guild does not burn a
	// rate-limit slot.
	channelID, err := svc.Channel(i.GuildID)
	if err != nil {
		followupEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	text, err = svc.CheckSubmit(i.Member.User.ID, text)
	if err != nil {
		followupEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	embed := BuildSuggestionEmbed(
		text, category,
		displayName(i.Member), i.Member.User.AvatarURL(""), i.Member.User.ID,
		anonymous,
	)
	message, err := s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to post suggestion")
		followupEphemeral(s, i, "Could not post to the suggestion channel.")
		return
	}

	// Seed reactions and thread are best-effort; the suggestion stands
	// without them.
	for _, emoji := range []string{emojiUpvote, emojiDownvote} {
		if err := s.MessageReactionAdd(channelID, message.ID, emoji); err != nil {
			log.Warn().Err(err).Str("message_id", message.ID).Msg("failed to seed reaction")
		}
	}
	if _, err := s.MessageThreadStart(channelID, message.ID, "Suggestion Discussion", 1440); err != nil {
		log.Warn().Err(err).Str("message_id", message.ID).Msg("failed to create discussion thread")
	}

	if _, err := svc.RecordSubmission(message.ID, i.Member.User.ID, i.GuildID, text, category, anonymous); err != nil {
		log.Error().Err(err).Str("message_id", message.ID).Msg("failed to record suggestion, removing posted message")
		if delErr := s.ChannelMessageDelete(channelID, message.ID); delErr != nil {
			log.Warn().Err(delErr).Str("message_id", message.ID).Msg("failed to remove orphaned suggestion message")
		}
		followupEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	followupEphemeral(s, i, fmt.Sprintf("Thank you for your suggestion! Suggestion ID: %s", message.ID))
}

// editCommandHandler handles /edit: author-only text replacement, mirrored
// onto the posted embed.
func editCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	om := commandOptions(i)

	id, err := utils.ParseMessageID(om["message_id"].StringValue())
	if err != nil {
		respondEphemeral(s, i, "Invalid message ID or link.")
		return
	}

	sug, err := svc.EditText(id, i.Member.User.ID, om["new_text"].StringValue())
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	channelID, err := svc.Channel(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	message, err := s.ChannelMessage(channelID, id)
	if err != nil || len(message.Embeds) == 0 {
		log.Warn().Err(err).Str("message_id", id).Msg("suggestion message not found for edit, store already updated")
		respondEphemeral(s, i, "Suggestion updated, but the posted message could not be refreshed.")
		return
	}

	embed := message.Embeds[0]
	embed.Description = sug.Text
	if _, err := s.ChannelMessageEditEmbed(channelID, id, embed); err != nil {
		log.Warn().Err(err).Str("message_id", id).Msg("failed to refresh suggestion embed")
	}

	respondEphemeral(s, i, "Suggestion updated successfully.")
}
