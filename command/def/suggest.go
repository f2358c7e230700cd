package def

import "github.com/bwmarrin/discordgo"

var SuggestCommand = &discordgo.ApplicationCommand{
	Name:        "suggest",
	Description: "Add a suggestion",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "suggestion",
			Description: "Your suggestion",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category",
			Description: "Suggestion category (default: General)",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "anonymous",
			Description: "Hide your name on the posted suggestion",
			Required:    false,
		},
	},
}

var EditCommand = &discordgo.ApplicationCommand{
	Name:        "edit",
	Description: "Edit your suggestion",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_id",
			Description: "Suggestion message ID or link",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "new_text",
			Description: "Replacement text",
			Required:    true,
		},
	},
}

var MySuggestionsCommand = &discordgo.ApplicationCommand{
	Name:        "mysuggestions",
	Description: "View your suggestion history",
}

var StatsCommand = &discordgo.ApplicationCommand{
	Name:        "stats",
	Description: "View suggestion statistics",
}

var SearchCommand = &discordgo.ApplicationCommand{
	Name:        "search",
	Description: "Search suggestions",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "query",
			Description: "Text to search for (case-sensitive)",
			Required:    true,
		},
	},
}

var TopCommand = &discordgo.ApplicationCommand{
	Name:        "top",
	Description: "View top suggestions",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "timeframe",
			Description: "Timeframe to rank over",
			Required:    false,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "all", Value: "all"},
				{Name: "week", Value: "week"},
				{Name: "month", Value: "month"},
			},
		},
	},
}

var CategoriesCommand = &discordgo.ApplicationCommand{
	Name:        "categories",
	Description: "List available suggestion categories",
}
