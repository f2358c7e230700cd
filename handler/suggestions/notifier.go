package suggestions

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

// DMNotifier delivers status-change notices to suggestion authors over
// direct messages. It satisfies suggest.Notifier; delivery failures are the
// caller's to log and ignore.
type DMNotifier struct {
	Session *discordgo.Session
}

func (n *DMNotifier) NotifyStatusChange(sug *model.Suggestion) error {
	channel, err := n.Session.UserChannelCreate(sug.UserID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}

	content := fmt.Sprintf("Your suggestion (ID: %s) has been %s.", sug.ID, strings.ToLower(sug.Status.String()))
	if sug.StatusReason != "" {
		content += fmt.Sprintf("\nReason: %s", sug.StatusReason)
	}

	if _, err := n.Session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("send dm: %w", err)
	}
	return nil
}
