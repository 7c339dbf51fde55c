package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type RouterOptions struct {
	Roster *RosterHandler
	// Slack is nil when the bot runs on Telegram.
	Slack          *SlackHandler
	AllowedOrigins []string
}

// NewRouter registers every route and wraps them with CORS for the read-only API.
func NewRouter(opts RouterOptions) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/roster", opts.Roster.GetRoster).Methods(http.MethodGet)

	if opts.Slack != nil {
		slackRoutes := r.PathPrefix("/slack").Subrouter()
		slackRoutes.HandleFunc("/commands", opts.Slack.HandleSlashCommand).Methods(http.MethodPost)
		slackRoutes.HandleFunc("/interactions", opts.Slack.HandleInteraction).Methods(http.MethodPost)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return corsHandler.Handler(r)
}
