package suggestions

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/utils"
)

// massStatusCommandHandler handles /massstatus. Phase one: count the matching
// suggestions and present the count with Confirm/Cancel buttons. The actual
// update is parked in the confirm cache until the requester clicks Confirm.
func massStatusCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}

	om := commandOptions(i)
	status := om["status"].StringValue()
	category := ""
	if opt, ok := om["category"]; ok {
		category = opt.StringValue()
	}
	days := 0
	if opt, ok := om["days"]; ok {
		days = int(opt.IntValue())
	}

	count, err := svc.CountBulkStatus(status, category, days)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Are you sure you want to update %d suggestions to %s?", count, status)
	if category != "" {
		fmt.Fprintf(&b, "\nCategory: %s", category)
	}
	if days > 0 {
		fmt.Fprintf(&b, "\nLast %d days", days)
	}

	sessionID := confirms.Add(utils.PendingAction{
		UserID:  i.Member.User.ID,
		Summary: fmt.Sprintf("mass status update to %s", status),
		Apply: func() (int, error) {
			return svc.ApplyBulkStatus(status, category, days)
		},
	})

	promptConfirmation(s, i, b.String(), sessionID)
}

// purgeCommandHandler handles /purge with the same two-phase shape as
// /massstatus. The deletion cascades votes inside the store transaction.
func purgeCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}

	om := commandOptions(i)
	days := int(om["days"].IntValue())
	status := ""
	if opt, ok := om["status"]; ok {
		status = opt.StringValue()
	}

	count, err := svc.CountPurge(days, status)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	prompt := fmt.Sprintf("Are you sure you want to purge %d suggestions older than %d days", count, days)
	if status != "" {
		prompt += fmt.Sprintf(" with status %s", status)
	}
	prompt += "?"

	sessionID := confirms.Add(utils.PendingAction{
		UserID:  i.Member.User.ID,
		Summary: fmt.Sprintf("purge older than %d days", days),
		Apply: func() (int, error) {
			return svc.ApplyPurge(days, status)
		},
	})

	promptConfirmation(s, i, prompt, sessionID)
}

func promptConfirmation(s *discordgo.Session, i *discordgo.InteractionCreate, prompt, sessionID string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    prompt,
			Components: BuildConfirmComponents(sessionID),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send confirmation prompt")
		confirms.Remove(sessionID)
	}
}

// confirmActionHandler is phase two: it runs the parked operation. Unknown or
// expired sessions mean cancelled, so nothing mutates.
func confirmActionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sessionID := componentArgument(i)

	action, found := confirms.Take(sessionID)
	if !found {
		updatePrompt(s, i, "This confirmation has expired. Nothing was changed.")
		return
	}
	if action.UserID != i.Member.User.ID {
		// Only the requester may confirm; the session is consumed either way.
		updatePrompt(s, i, "Only the requester can confirm this operation. It has been cancelled.")
		return
	}

	count, err := action.Apply()
	if err != nil {
		log.Error().Err(err).Str("action", action.Summary).Msg("confirmed bulk action failed")
		updatePrompt(s, i, serviceErrorMessage(err))
		return
	}
	updatePrompt(s, i, fmt.Sprintf("Done: %s affected %d suggestions.", action.Summary, count))
}

func cancelActionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	confirms.Remove(componentArgument(i))
	updatePrompt(s, i, "Operation cancelled.")
}

// componentArgument returns the part of the custom ID after the routing key.
func componentArgument(i *discordgo.InteractionCreate) string {
	parts := strings.SplitN(i.MessageComponentData().CustomID, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// updatePrompt rewrites the confirmation message in place, dropping the
// buttons so it cannot be clicked twice.
func updatePrompt(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update confirmation prompt")
	}
}
