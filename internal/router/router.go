package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"skillflow-backend/internal/handlers"
	"skillflow-backend/internal/middleware"
	"skillflow-backend/internal/websocket"
)

func New(
	sessionHandler *handlers.SessionHandler,
	meetingHandler *handlers.MeetingHandler,
	matchmakerHandler *handlers.MatchmakerHandler,
	notificationHandler *handlers.NotificationHandler,
	profileHandler *handlers.ProfileHandler,
	callHandler *handlers.CallHandler,
	dashboardHandler *handlers.DashboardHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Matchmaker rate limiter (10 req/min per IP); every analyze fans out
	// one AI call per peer.
	matchLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Session Routes ────
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.List)
			r.Post("/", sessionHandler.Create)
			r.Get("/{id}", sessionHandler.Get)
			r.Put("/{id}", sessionHandler.Update)
			r.Delete("/{id}", sessionHandler.Delete)
			r.Post("/{id}/complete", sessionHandler.Complete)
			r.Post("/{id}/messages", sessionHandler.PostMessage)
		})

		// ──── Meeting Routes ────
		r.Route("/meetings", func(r chi.Router) {
			r.Get("/", meetingHandler.List)
			r.Post("/", meetingHandler.Create)
			r.Delete("/{id}", meetingHandler.Delete)
		})

		// ──── Matchmaker Routes ────
		r.Route("/matchmaker", func(r chi.Router) {
			r.Use(matchLimiter.Middleware)
			r.Post("/analyze", matchmakerHandler.Analyze)
			r.Get("/advice", matchmakerHandler.Advice)
		})

		// ──── Notification Routes ────
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.List)
			r.Put("/read-all", notificationHandler.MarkAllRead)
			r.Put("/{id}/read", notificationHandler.MarkRead)
		})

		// ──── Profile & Draft Routes ────
		r.Route("/user", func(r chi.Router) {
			r.Get("/me", profileHandler.GetMe)
			r.Get("/peers", profileHandler.ListPeers)

			r.Route("/drafts/{surface}", func(r chi.Router) {
				r.Post("/", profileHandler.BeginDraft)
				r.Get("/", profileHandler.GetDraft)
				r.Delete("/", profileHandler.DiscardDraft)
				r.Put("/identity", profileHandler.SetIdentity)
				r.Post("/skills/{list}", profileHandler.AddSkill)
				r.Delete("/skills/{list}/{index}", profileHandler.RemoveSkill)
				r.Post("/save", profileHandler.SaveDraft)
			})
		})

		// ──── Call Simulation Routes ────
		r.Route("/call", func(r chi.Router) {
			r.Get("/", callHandler.State)
			r.Post("/prompt", callHandler.Prompt)
			r.Post("/dial", callHandler.Dial)
			r.Post("/hangup", callHandler.Hangup)
		})

		// ──── Dashboard Routes ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardHandler.Stats)
			r.Get("/bursts", dashboardHandler.Bursts)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
