package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Server is the HTTP adapter over pkg/leaguesim. It holds no simulation
// state of its own; every request is independent.
type Server struct {
	log     *logrus.Logger
	handler http.Handler
}

// New builds a Server with the full middleware chain: panic recovery,
// CORS, request-id tagging, structured logging, and a shared rate
// limiter in front of the simulate endpoints.
func New(log *logrus.Logger) *Server {
	s := &Server{log: log}

	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	limiter := rate.NewLimiter(rate.Limit(10), 20)
	simulate := withRateLimit(limiter)

	router.Handle("/simulate", simulate(http.HandlerFunc(s.handleSimulate))).Methods(http.MethodPost)
	router.Handle("/simulate/batch", simulate(http.HandlerFunc(s.handleSimulateBatch))).Methods(http.MethodPost)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})

	handler := withRecovery(log)(router)
	handler = withLogging(log)(handler)
	handler = withRequestID(handler)
	handler = corsHandler.Handler(handler)

	s.handler = handler
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
