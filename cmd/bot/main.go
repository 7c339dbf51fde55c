package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/config"
	"github.com/diegoclair/weekly-signup-bot/internal/database"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/service"
	"github.com/diegoclair/weekly-signup-bot/internal/handlers"
	"github.com/diegoclair/weekly-signup-bot/internal/scheduler"
	slackbot "github.com/diegoclair/weekly-signup-bot/internal/slack"
	"github.com/diegoclair/weekly-signup-bot/internal/telegram"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
)

const (
	shutdownTimeout      = 10 * time.Second
	telegramRetryBackoff = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	rules, err := cfg.TriggerRules()
	if err != nil {
		log.Fatalf("Failed to parse schedule: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		deliverer   contract.Deliverer
		slackClient *slack.Client
		bot         *tgbotapi.BotAPI
	)

	switch cfg.Transport {
	case config.TransportTelegram:
		bot = connectTelegram(ctx, cfg.TelegramBotToken)
		if bot == nil {
			return
		}
		deliverer = telegram.NewDeliverer(bot, cfg.GroupChatID)
	default:
		slackClient = slack.New(cfg.SlackBotToken)
		deliverer = slackbot.NewDeliverer(slackClient, cfg.SlackChannelID)
	}

	instance, err := service.NewInstance(service.Options{
		Days:            cfg.Days(),
		Capacity:        cfg.Capacity(),
		ActivityName:    cfg.ActivityName,
		MeetingInfo:     cfg.MeetingInfo,
		DeliveryTimeout: cfg.DeliveryTimeout,
	}, database.NewInstance(db), deliverer)
	if err != nil {
		log.Fatalf("Failed to initialize signup service: %v", err)
	}

	if err := instance.Persister.Load(ctx); err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	instance.Persister.Start()
	defer instance.Persister.Stop()

	sched := scheduler.New(rules, loc, instance.Driver)
	sched.Start()
	defer sched.Stop()

	routerOpts := handlers.RouterOptions{
		Roster:         handlers.NewRosterHandler(instance.Signup),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if slackClient != nil {
		routerOpts.Slack = handlers.NewSlackHandler(slackClient, instance.Signup, cfg.SlackSigningSecret)
	}
	if bot != nil {
		go telegram.NewListener(bot, instance.Signup).Run(ctx)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(routerOpts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s (%s transport)", cfg.Port, cfg.Transport)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("ERROR serving http: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR shutting down http server: %v", err)
	}
	if routerOpts.Slack != nil {
		routerOpts.Slack.Wait()
	}
}

// connectTelegram retries until the bot token is accepted or ctx is done.
func connectTelegram(ctx context.Context, token string) *tgbotapi.BotAPI {
	for {
		bot, err := tgbotapi.NewBotAPI(token)
		if err == nil {
			log.Printf("Authorized on telegram account %s", bot.Self.UserName)
			return bot
		}

		log.Printf("Telegram bot connection failed, retrying in %s: %v", telegramRetryBackoff, err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(telegramRetryBackoff):
		}
	}
}
