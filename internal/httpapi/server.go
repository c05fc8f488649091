// Package httpapi exposes knight route search and validation over HTTP.
//
// Routes:
//
//	GET  /healthz       liveness probe
//	POST /v1/paths      FindPathRequest  -> FindPathResponse
//	POST /v1/validate   ValidateRequest  -> ValidateResponse
//
// Boards travel in the text encoding read by board.Decode. Every request gets
// an X-Request-ID (generated unless supplied) that is echoed in the response
// and attached to its log lines.
package httpapi

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes bounds request bodies; boards are small text grids.
const maxBodyBytes = 1 << 20

// Server routes API requests.
type Server struct {
	router *way.Router
	log    logrus.FieldLogger
}

// NewServer returns a Server that logs to log.
func NewServer(log logrus.FieldLogger) *Server {
	s := &Server{log: log}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodGet, "/healthz", s.handleHealth())
	s.router.HandleFunc(http.MethodPost, "/v1/paths", s.handleFindPath())
	s.router.HandleFunc(http.MethodPost, "/v1/validate", s.handleValidate())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
