package suggestions

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/utils"
)

// exportDataCommandHandler handles /exportdata: renders the export projection
// to CSV and attaches it to the ephemeral reply.
func exportDataCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAdmin(i) {
		respondEphemeral(s, i, "You need administrator permission for this command.")
		return
	}
	if !deferEphemeral(s, i) {
		return
	}

	days := 0
	if opt, ok := commandOptions(i)["days"]; ok {
		days = int(opt.IntValue())
	}

	records, err := svc.Export(days)
	if err != nil {
		followupEphemeral(s, i, serviceErrorMessage(err))
		return
	}
	if len(records) == 0 {
		followupEphemeral(s, i, "No data to export.")
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "User ID", "Suggestion", "Status", "Category", "Created At", "Upvotes", "Downvotes"})
	for _, rec := range records {
		_ = w.Write([]string{
			rec.ID,
			rec.UserID,
			rec.Text,
			rec.Status.String(),
			rec.Category,
			time.Unix(rec.CreatedAt, 0).UTC().Format(time.RFC3339),
			strconv.Itoa(rec.Upvotes),
			strconv.Itoa(rec.Downvotes),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Error().Err(err).Msg("failed to render export csv")
		followupEphemeral(s, i, "Failed to build the export file.")
		return
	}

	filename := fmt.Sprintf("suggestions_export_%s.csv", time.Now().Format("20060102"))
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: "Here's your exported data:",
		Files: []*discordgo.File{
			{Name: filename, ContentType: "text/csv", Reader: &buf},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send export file")
	}
}
