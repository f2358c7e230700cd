package command

import (
	"suggestbot/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.SuggestCommand,
	def.EditCommand,
	def.MySuggestionsCommand,
	def.StatsCommand,
	def.SearchCommand,
	def.TopCommand,
	def.CategoriesCommand,
	def.SetChannelCommand,
	def.UpdateStatusCommand,
	def.AddCategoryCommand,
	def.RemoveCategoryCommand,
	def.MassStatusCommand,
	def.PurgeCommand,
	def.ExportDataCommand,
}
