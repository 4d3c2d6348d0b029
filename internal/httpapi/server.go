// Package httpapi is the HTTP/JSON façade spec §1/§6 treats as an
// external collaborator of the core engine: it only calls into
// internal/core, it owns none of the consensus or wallet invariants
// itself. Routing follows the teacher's wallet_server/blockchain_server
// split, unified behind chi the way orbas1-Synnergy routes its API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/everestp/blockchain/internal/core"
)

// Server is the HTTP façade around one core.Node.
type Server struct {
	node   *core.Node
	log    *logrus.Entry
	router chi.Router
}

// NewServer builds the façade's router. Routes mirror spec §6:
//
//	GET  /                    -> block at index 0 (historical behavior)
//	GET  /get-wallet          -> {public_key, private_key, blockchain_address}
//	GET  /amount/{address}    -> {amount}
//	POST /transaction         -> {ok}
//	GET  /metrics             -> Prometheus exposition
//	GET  /healthz             -> liveness probe
//
// GET /wallet (the HTML page) is explicitly out of core per spec §1 and
// not present in the retrieval pack's teacher either; it is served here
// as the same JSON /get-wallet returns, documented as a stand-in for
// the missing template.
func NewServer(node *core.Node, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	s := &Server{node: node, log: log.WithField("component", "httpapi")}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleGenesisBlock)
	r.Get("/get-wallet", s.handleGetWallet)
	r.Get("/wallet", s.handleGetWallet)
	r.Get("/amount/{address}", s.handleAmount)
	r.Post("/transaction", s.handleCreateTransaction)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("request handled")
	})
}
