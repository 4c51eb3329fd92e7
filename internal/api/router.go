package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/api/recovery"
	"github.com/finwise/finwise-server/internal/repo"
	"github.com/finwise/finwise-server/internal/services"
)

// Deps carries the service set the router exposes.
type Deps struct {
	Repo     *repo.Repository
	Auth     *services.AuthService
	Users    *services.UserService
	Meetings *services.MeetingService
	Messages *services.MessageService
	Articles *services.ArticleService
	Log      zerolog.Logger
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler()
	authHandler := NewAuthHandler(d.Auth)
	userHandler := NewUserHandler(d.Users)
	expertHandler := NewExpertHandler(d.Users, d.Repo.Store())
	meetingHandler := NewMeetingHandler(d.Meetings)
	messageHandler := NewMessageHandler(d.Messages)
	articleHandler := NewArticleHandler(d.Articles)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Auth endpoints
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	router.HandleFunc("/api/auth/session", authHandler.Session).Methods("GET")

	// User endpoints
	router.HandleFunc("/api/users/{userId}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/api/users/{userId}/profile", userHandler.UpdateProfile).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/interests", userHandler.SetInterests).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/promote", userHandler.Promote).Methods("POST")

	// Expert endpoints; the view pointer route is registered before the
	// id route so "view" never matches as an expertId
	router.HandleFunc("/api/experts", expertHandler.ListExperts).Methods("GET")
	router.HandleFunc("/api/experts/view", expertHandler.GetView).Methods("GET")
	router.HandleFunc("/api/experts/view", expertHandler.SetView).Methods("PUT")
	router.HandleFunc("/api/experts/{expertId}", expertHandler.GetExpert).Methods("GET")
	router.HandleFunc("/api/experts/{expertId}/profile", expertHandler.UpdateProfile).Methods("PUT")
	router.HandleFunc("/api/experts/{expertId}/clients", expertHandler.ListClients).Methods("GET")

	// Meeting endpoints
	router.HandleFunc("/api/meetings", meetingHandler.Schedule).Methods("POST")
	router.HandleFunc("/api/meetings/{meetingId}", meetingHandler.Reschedule).Methods("PUT")
	router.HandleFunc("/api/meetings/{meetingId}", meetingHandler.Cancel).Methods("DELETE")
	router.HandleFunc("/api/users/{userId}/meetings", meetingHandler.ListForUser).Methods("GET")

	// Message endpoints
	router.HandleFunc("/api/messages", messageHandler.Send).Methods("POST")
	router.HandleFunc("/api/users/{userId}/threads", messageHandler.ListThreads).Methods("GET")
	router.HandleFunc("/api/users/{userId}/threads/{contactId}", messageHandler.OpenThread).Methods("POST")
	router.HandleFunc("/api/users/{userId}/threads/{contactId}/read", messageHandler.MarkRead).Methods("POST")

	// Article endpoints; the draft routes are registered before the id
	// route so "draft" never matches as an articleId
	router.HandleFunc("/api/articles", articleHandler.ListArticles).Methods("GET")
	router.HandleFunc("/api/articles", articleHandler.CreateArticle).Methods("POST")
	router.HandleFunc("/api/articles/draft", articleHandler.GetDraft).Methods("GET")
	router.HandleFunc("/api/articles/draft", articleHandler.PutDraft).Methods("PUT")
	router.HandleFunc("/api/articles/draft", articleHandler.DeleteDraft).Methods("DELETE")
	router.HandleFunc("/api/articles/{articleId}", articleHandler.GetArticle).Methods("GET")
	router.HandleFunc("/api/articles/{articleId}", articleHandler.UpdateArticle).Methods("PUT")

	return router
}
