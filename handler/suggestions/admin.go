package suggestions

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/utils"
)

func setChannelCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}

	channel := commandOptions(i)["channel"].ChannelValue(s)
	if err := svc.SetChannel(i.GuildID, channel.ID); err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("Suggestion channel set to <#%s>", channel.ID))
}

// updateStatusCommandHandler handles /updatestatus: persists the transition,
// then refreshes the posted embed (fields addressed by name, color from the
// status table). The author DM happens inside the service as a best-effort
// notification.
func updateStatusCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}
	if !deferEphemeral(s, i) {
		return
	}

	om := commandOptions(i)
	id, err := utils.ParseMessageID(om["message_id"].StringValue())
	if err != nil {
		followupEphemeral(s, i, "Invalid message ID or link.")
		return
	}
	status := om["status"].StringValue()
	reason := ""
	if opt, ok := om["reason"]; ok {
		reason = opt.StringValue()
	}

	sug, err := svc.SetStatus(id, status, reason)
	if err != nil {
		followupEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	channelID, err := svc.Channel(i.GuildID)
	if err == nil {
		if message, fetchErr := s.ChannelMessage(channelID, id); fetchErr == nil && len(message.Embeds) > 0 {
			embed := message.Embeds[0]
			ApplyStatusToEmbed(embed, sug.Status, sug.StatusReason)
			if _, editErr := s.ChannelMessageEditEmbed(channelID, id, embed); editErr != nil {
				log.Warn().Err(editErr).Str("message_id", id).Msg("failed to refresh suggestion embed for status change")
			}
		} else {
			log.Warn().Err(fetchErr).Str("message_id", id).Msg("suggestion message not found, store already updated")
		}
	}

	followupEphemeral(s, i, fmt.Sprintf("Updated suggestion %s status to %s", id, sug.Status))
}

func addCategoryCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}

	name := commandOptions(i)["category"].StringValue()
	added, err := svc.AddCategory(name)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if !added {
		respondEphemeral(s, i, fmt.Sprintf("Category %q already exists.", name))
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("Added new category: %s", name))
}

func removeCategoryCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}

	name := commandOptions(i)["category"].StringValue()
	removed, err := svc.RemoveCategory(name)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if !removed {
		respondEphemeral(s, i, fmt.Sprintf("Category %q does not exist.", name))
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("Removed category: %s", name))
}
