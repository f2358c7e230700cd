package bot

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"suggestbot/command"
	"suggestbot/config"
	"suggestbot/db"
	"suggestbot/handler/suggestions"
	"suggestbot/ratelimit"
	"suggestbot/suggest"
	"suggestbot/utils"
)

var dg *discordgo.Session

// Start 启动机器人
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return
	}

	store, err := db.Open(config.Cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer store.Close()

	limiter := ratelimit.New(
		config.Cfg.Suggestions.RateLimitWindow(),
		config.Cfg.Suggestions.MaxPerWindow,
	)
	go limiterJanitor(limiter)

	// 使用提供的机器人令牌创建一个新的 Discord 会话
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Discord session")
		return
	}

	service := suggest.New(
		store,
		limiter,
		config.Cfg.Suggestions.MaxLength,
		suggest.WithNotifier(&suggestions.DMNotifier{Session: dg}),
	)
	confirms := utils.NewConfirmCache(config.Cfg.Suggestions.ConfirmTimeout())

	suggestions.RegisterHandlers(service, confirms)
	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open Discord connection")
		return
	}

	for _, guildID := range config.Cfg.Commands.AllowGuilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatal().Err(err).Str("command", cmd.Name).Msg("cannot create command")
			}
		}
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// GetSession 返回当前的 Discord 会话
func GetSession() *discordgo.Session {
	return dg
}

func limiterJanitor(limiter *ratelimit.Limiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		limiter.Cleanup()
	}
}
