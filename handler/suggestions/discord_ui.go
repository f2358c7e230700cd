package suggestions

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

const (
	fieldNameCategory = "Category"
	fieldNameStatus   = "Status"
	fieldNameReason   = "Status Reason"

	emojiUpvote   = "👍"
	emojiDownvote = "👎"
)

// displayName picks the member's server nickname, falling back to the global
// name and then the account name.
func displayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

// BuildSuggestionEmbed 创建新投稿的 Embed
func BuildSuggestionEmbed(text, category, authorName, authorAvatar, authorID string, anonymous bool) *discordgo.MessageEmbed {
	name := authorName
	icon := authorAvatar
	if anonymous {
		name = "Anonymous"
		icon = ""
	}

	return &discordgo.MessageEmbed{
		Title:       "New Suggestion",
		Description: text,
		Color:       model.StatusPending.Color(),
		Timestamp:   time.Now().Format(time.RFC3339),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    name,
			IconURL: icon,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: fieldNameCategory, Value: category, Inline: true},
			{Name: fieldNameStatus, Value: model.StatusPending.String(), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Suggestion from %s", authorID),
		},
	}
}

// setEmbedField replaces (or appends) an embed field by name. Fields are
// never addressed by position: the embed layout stays editable without
// corrupting status updates.
func setEmbedField(embed *discordgo.MessageEmbed, name, value string, inline bool) {
	for _, field := range embed.Fields {
		if field.Name == name {
			field.Value = value
			field.Inline = inline
			return
		}
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: name, Value: value, Inline: inline,
	})
}

// ApplyStatusToEmbed updates an existing suggestion embed for a status
// change: the Status field, the optional Reason field and the color.
func ApplyStatusToEmbed(embed *discordgo.MessageEmbed, status model.Status, reason string) {
	setEmbedField(embed, fieldNameStatus, status.String(), true)
	if reason != "" {
		setEmbedField(embed, fieldNameReason, reason, false)
	}
	embed.Color = status.Color()
}

// BuildConfirmComponents 创建两阶段确认的按钮
func BuildConfirmComponents(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("confirm_action:%s", sessionID),
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("cancel_action:%s", sessionID),
				},
			},
		},
	}
}

// formatSuggestionLine renders one suggestion for list replies, truncating
// long text.
func formatSuggestionLine(sug *model.Suggestion) string {
	text := sug.Text
	if runes := []rune(text); len(runes) > 50 {
		text = string(runes[:50]) + "..."
	}
	return fmt.Sprintf("ID: %s | %s | Status: %s | Category: %s", sug.ID, text, sug.Status, sug.Category)
}
