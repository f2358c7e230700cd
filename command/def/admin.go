package def

import "github.com/bwmarrin/discordgo"

// statusChoices mirrors the status enum for command parameters.
var statusChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Pending", Value: "Pending"},
	{Name: "Accepted", Value: "Accepted"},
	{Name: "Rejected", Value: "Rejected"},
	{Name: "Under Review", Value: "Under Review"},
}

var SetChannelCommand = &discordgo.ApplicationCommand{
	Name:        "setchannel",
	Description: "Set the suggestions channel",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to post suggestions in",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	},
}

var UpdateStatusCommand = &discordgo.ApplicationCommand{
	Name:        "updatestatus",
	Description: "Update suggestion status",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message_id",
			Description: "Suggestion message ID or link",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "status",
			Description: "New status",
			Required:    true,
			Choices:     statusChoices,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the status change",
			Required:    false,
		},
	},
}

var AddCategoryCommand = &discordgo.ApplicationCommand{
	Name:        "addcategory",
	Description: "Add a new suggestion category",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category",
			Description: "Category name",
			Required:    true,
		},
	},
}

var RemoveCategoryCommand = &discordgo.ApplicationCommand{
	Name:        "removecategory",
	Description: "Remove a suggestion category",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category",
			Description: "Category name",
			Required:    true,
		},
	},
}

var MassStatusCommand = &discordgo.ApplicationCommand{
	Name:        "massstatus",
	Description: "Update status of multiple suggestions",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "status",
			Description: "New status for all matching suggestions",
			Required:    true,
			Choices:     statusChoices,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category",
			Description: "Only update this category",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Only update suggestions from the last N days",
			Required:    false,
		},
	},
}

var PurgeCommand = &discordgo.ApplicationCommand{
	Name:        "purge",
	Description: "Purge old suggestions",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Delete suggestions older than N days",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "status",
			Description: "Only delete suggestions with this status",
			Required:    false,
			Choices:     statusChoices,
		},
	},
}

var ExportDataCommand = &discordgo.ApplicationCommand{
	Name:        "exportdata",
	Description: "Export suggestions data",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Only export suggestions from the last N days",
			Required:    false,
		},
	},
}
