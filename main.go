package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/deskrelay/bot-telegram/api/http/bridge"
	"github.com/deskrelay/bot-telegram/api/http/status"
	apiTelegram "github.com/deskrelay/bot-telegram/api/telegram"
	"github.com/deskrelay/bot-telegram/api/telegram/forum"
	"github.com/deskrelay/bot-telegram/config"
	"github.com/deskrelay/bot-telegram/service"
	"github.com/deskrelay/bot-telegram/service/tickets"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/telebot.v3"
)

func main() {

	// init config and logger
	slog.Info("starting...")
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error("failed to load the config", err)
	}
	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.Log.Level),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &opts))

	// init the tickets storage, retrying while the db comes up
	ctx := context.Background()
	var storTickets tickets.Storage
	bOff := backoff.NewExponentialBackOff()
	bOff.MaxElapsedTime = time.Minute
	err = backoff.RetryNotify(
		func() (err error) {
			storTickets, err = tickets.NewStorage(ctx, cfg.Db)
			return
		},
		bOff,
		func(err error, d time.Duration) {
			log.Warn(fmt.Sprintf("failed to connect the tickets db, retrying in %s: %s", d, err))
		},
	)
	if err != nil {
		panic(err)
	}
	defer storTickets.Close()

	// init the profile bridge client when configured
	var svcBridge bridge.Service
	if cfg.Api.Bridge.Uri != "" {
		clientHttp := &http.Client{
			Timeout: cfg.Api.Bridge.Timeout,
		}
		svcBridge = bridge.NewService(clientHttp, cfg.Api.Bridge.Uri)
		svcBridge = bridge.NewServiceLogging(svcBridge, log)
	}

	// init Telegram bot
	s := telebot.Settings{
		Token: cfg.Api.Telegram.Token,
	}
	switch cfg.Api.Telegram.Webhook.Host {
	case "":
		s.Poller = &telebot.LongPoller{
			Timeout: cfg.Api.Telegram.Poll.Timeout,
		}
	default:
		s.Poller = &telebot.Webhook{
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: fmt.Sprintf("https://%s%s", cfg.Api.Telegram.Webhook.Host, cfg.Api.Telegram.Webhook.Path),
			},
			Listen:         fmt.Sprintf(":%d", cfg.Api.Telegram.Webhook.Port),
			MaxConnections: int(cfg.Api.Telegram.Webhook.ConnMax),
			SecretToken:    cfg.Api.Telegram.Webhook.Token,
		}
	}
	var tgBot *telebot.Bot
	tgBot, err = telebot.NewBot(s)
	if err != nil {
		panic(err)
	}

	// init the card format, see https://core.telegram.org/bots/api#html-style for details
	htmlPolicy := bluemonday.NewPolicy()
	htmlPolicy.AllowStandardURLs()
	htmlPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre")
	fmtMsg := tickets.Format{
		HtmlPolicy: htmlPolicy,
	}

	// init the ticket binder
	svcForum := forum.NewService(tgBot, cfg.Api.Telegram.GroupId)
	svcForum = forum.NewServiceLogging(svcForum, log)
	svcTickets := tickets.NewService(storTickets, svcForum, fmtMsg, log)
	svcTickets = tickets.NewServiceLogging(svcTickets, log)

	// assign handlers
	h := apiTelegram.Handler{
		SvcTickets:    svcTickets,
		SvcBridge:     svcBridge,
		GroupId:       cfg.Api.Telegram.GroupId,
		BridgeTimeout: cfg.Api.Bridge.Timeout,
	}
	tgBot.Use(func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return service.LoggingHandlerFunc(next, log)
	})
	tgBot.Handle("/start", service.ErrorHandlerFunc(h.Start, log))
	for _, evt := range []string{
		telebot.OnText,
		telebot.OnPhoto,
		telebot.OnVideo,
		telebot.OnDocument,
		telebot.OnVoice,
		telebot.OnAudio,
	} {
		tgBot.Handle(evt, service.ErrorHandlerFunc(h.Relay, log))
	}
	err = tgBot.SetCommands([]telebot.Command{
		{
			Text:        "start",
			Description: "Connect to support",
		},
		{
			Text:        "close",
			Description: "Close the ticket (admins, inside its topic)",
		},
	})
	if err != nil {
		panic(err)
	}
	go tgBot.Start()

	// liveness endpoint
	r := gin.Default()
	r.GET("/", status.NewHandler(storTickets).Get)
	err = r.Run(fmt.Sprintf(":%d", cfg.Api.Status.Port))
	if err != nil {
		panic(err)
	}
}
