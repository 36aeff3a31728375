package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/middleware/ratelimiter"
	"github.com/threadhub-dev/threadhub/internal/setup"
)

// New creates and configures a new mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that subrouter
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(middleware.Metrics)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Registration and login are brute-forceable, throttle by client IP
	accounts := r.NewRoute().Subrouter()
	accounts.Use(middleware.RateLimit(ratelimiter.OnceInSecond(), middleware.GetIP))
	accounts.HandleFunc("/users", h.Register).Methods("POST")
	accounts.HandleFunc("/authentications", h.Login).Methods("POST")

	r.HandleFunc("/authentications", h.RefreshAuthentication).Methods("PUT")
	r.HandleFunc("/authentications", h.Logout).Methods("DELETE")

	// Thread detail is public
	r.HandleFunc("/threads/{thread_id}", h.GetThread).Methods("GET")

	// Logged-in user routes
	loggedIn := r.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())
	loggedIn.Use(middleware.RateLimit(ratelimiter.Rps100(), middleware.GetUserIdFromContext))

	loggedIn.HandleFunc("/threads", h.CreateThread).Methods("POST")
	loggedIn.HandleFunc("/threads/{thread_id}/comments", h.CreateComment).Methods("POST")
	loggedIn.HandleFunc("/threads/{thread_id}/comments/{comment_id}", h.DeleteComment).Methods("DELETE")
	loggedIn.HandleFunc("/threads/{thread_id}/comments/{comment_id}/likes", h.ToggleCommentLike).Methods("PUT")
	loggedIn.HandleFunc("/threads/{thread_id}/comments/{comment_id}/replies", h.CreateReply).Methods("POST")
	loggedIn.HandleFunc("/threads/{thread_id}/comments/{comment_id}/replies/{reply_id}", h.DeleteReply).Methods("DELETE")

	return r
}
