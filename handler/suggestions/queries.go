package suggestions

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

func statsCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	stats, err := svc.Stats()
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"📊 **Suggestion Statistics**\n"+
			"Total Suggestions: %d\n"+
			"Pending: %d\n"+
			"Accepted: %d\n"+
			"Rejected: %d\n"+
			"Under Review: %d",
		stats.Total, stats.Pending, stats.Accepted, stats.Rejected, stats.UnderReview))
}

func searchCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	query := commandOptions(i)["query"].StringValue()

	results, err := svc.Search(query)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if len(results) == 0 {
		respondEphemeral(s, i, "No suggestions found matching your query.")
		return
	}

	var b strings.Builder
	b.WriteString("**Search Results:**\n")
	for idx, sug := range results {
		if idx >= 5 {
			break
		}
		b.WriteString(formatSuggestionLine(sug))
		b.WriteString("\n")
	}
	respondEphemeral(s, i, b.String())
}

func mySuggestionsCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	suggestions, err := svc.UserSuggestions(i.Member.User.ID)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if len(suggestions) == 0 {
		respondEphemeral(s, i, "You haven't made any suggestions yet!")
		return
	}

	var b strings.Builder
	b.WriteString("**Your Recent Suggestions:**\n")
	for idx, sug := range suggestions {
		if idx >= 10 {
			break
		}
		b.WriteString(formatSuggestionLine(sug))
		b.WriteString("\n")
	}
	respondEphemeral(s, i, b.String())
}

func topCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	timeframe := "all"
	if opt, ok := commandOptions(i)["timeframe"]; ok {
		timeframe = opt.StringValue()
	}

	records, err := svc.Top(timeframe, 10)
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if len(records) == 0 {
		respondEphemeral(s, i, "No suggestions found.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Top Suggestions (%s)", timeframe),
		Color: 0x3498DB,
	}
	for rank, rec := range records {
		text := rec.Text
		if runes := []rune(text); len(runes) > 100 {
			text = string(runes[:100]) + "..."
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. ID: %s (%s %d | %s %d)", rank+1, rec.ID, emojiUpvote, rec.Upvotes, emojiDownvote, rec.Downvotes),
			Value: text,
		})
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to respond with top suggestions")
	}
}

func categoriesCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	categories, err := svc.Categories()
	if err != nil {
		respondEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if len(categories) == 0 {
		respondEphemeral(s, i, "No categories found.")
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("Available categories:\n%s", strings.Join(categories, ", ")))
}
