package suggestions

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/suggest"
	"suggestbot/utils"
)

// commandOptions flattens interaction options into a name-keyed map.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	om := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		om[opt.Name] = opt
	}
	return om
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to respond to interaction")
	}
}

func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to defer interaction response")
		return false
	}
	return true
}

func followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send followup message")
	}
}

// serviceErrorMessage maps the lifecycle error taxonomy onto user-visible
// replies. The wording lives here; the service only classifies.
func serviceErrorMessage(err error) string {
	var validation *suggest.ValidationError
	var limited *suggest.RateLimitedError

	switch {
	case errors.As(err, &validation):
		return fmt.Sprintf("Invalid input: %s.", validation.Reason)
	case errors.As(err, &limited):
		return fmt.Sprintf("You're suggesting too quickly! Please wait %s before trying again.",
			utils.FormatDuration(limited.RetryAfter))
	case errors.Is(err, suggest.ErrNotFound):
		return "Suggestion not found."
	case errors.Is(err, suggest.ErrForbidden):
		return "Only the suggestion author can do that."
	case errors.Is(err, suggest.ErrInvalidStatus):
		return "That isn't a valid status."
	case errors.Is(err, suggest.ErrNoChannel):
		return "No suggestions channel has been set!"
	default:
		return "Something went wrong while processing your request."
	}
}
