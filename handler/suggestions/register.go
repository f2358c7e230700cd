package suggestions

import (
	"suggestbot/command/def"
	"suggestbot/handler"
	"suggestbot/suggest"
	"suggestbot/utils"
)

var (
	svc      *suggest.Service
	confirms *utils.ConfirmCache
)

// RegisterHandlers wires the suggestion service into the interaction router.
func RegisterHandlers(service *suggest.Service, confirmCache *utils.ConfirmCache) {
	svc = service
	confirms = confirmCache

	// 成员命令
	handler.AddCommandHandler(def.SuggestCommand.Name, suggestCommandHandler)
	handler.AddCommandHandler(def.EditCommand.Name, editCommandHandler)
	handler.AddCommandHandler(def.MySuggestionsCommand.Name, mySuggestionsCommandHandler)
	handler.AddCommandHandler(def.StatsCommand.Name, statsCommandHandler)
	handler.AddCommandHandler(def.SearchCommand.Name, searchCommandHandler)
	handler.AddCommandHandler(def.TopCommand.Name, topCommandHandler)
	handler.AddCommandHandler(def.CategoriesCommand.Name, categoriesCommandHandler)

	// 管理命令
	handler.AddCommandHandler(def.SetChannelCommand.Name, setChannelCommandHandler)
	handler.AddCommandHandler(def.UpdateStatusCommand.Name, updateStatusCommandHandler)
	handler.AddCommandHandler(def.AddCategoryCommand.Name, addCategoryCommandHandler)
	handler.AddCommandHandler(def.RemoveCategoryCommand.Name, removeCategoryCommandHandler)
	handler.AddCommandHandler(def.MassStatusCommand.Name, massStatusCommandHandler)
	handler.AddCommandHandler(def.PurgeCommand.Name, purgeCommandHandler)
	handler.AddCommandHandler(def.ExportDataCommand.Name, exportDataCommandHandler)

	// 确认按钮
	handler.AddComponentHandler("confirm_action", confirmActionHandler)
	handler.AddComponentHandler("cancel_action", cancelActionHandler)
}
