package bot

import (
	"github.com/bwmarrin/discordgo"

	"suggestbot/handler"
	"suggestbot/handler/suggestions"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(suggestions.MessageReactionAdd)
	s.AddHandler(suggestions.MessageReactionRemove)

	// 设置必要的intents
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions
}
