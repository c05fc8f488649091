package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/render"
	"github.com/katalvlaran/knightpath/route"
)

const requestIDHeader = "X-Request-ID"

// begin assigns the request ID and returns a logger scoped to it.
func (s *Server) begin(w http.ResponseWriter, r *http.Request) (string, logrus.FieldLogger) {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, id)

	return id, s.log.WithFields(logrus.Fields{
		"request_id": id,
		"method":     r.Method,
		"path":       r.URL.Path,
	})
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) handleFindPath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, log := s.begin(w, r)

		var req FindPathRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		}
		strategy, err := route.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		}
		sight, err := board.ParseSightMode(req.Sight)
		if err != nil {
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		}
		g, err := board.Load(board.StringProvider(req.Board))
		if err != nil {
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		}

		start, end := req.Start.toBoard(), req.End.toBoard()
		res, err := route.Find(g, start, end, strategy,
			route.WithContext(r.Context()),
			route.WithLogger(log),
			route.WithSight(sight),
		)
		switch {
		case errors.Is(err, route.ErrNoPath):
			log.WithField("strategy", strategy.String()).Info("no path")
			writeJSON(w, http.StatusOK, FindPathResponse{
				RequestID: id,
				Strategy:  strategy.String(),
				Sequence:  []PositionDTO{},
			})
			return
		case errors.Is(err, board.ErrOutOfBounds):
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		case err != nil:
			writeError(w, log, id, http.StatusInternalServerError, err)
			return
		}

		resp := FindPathResponse{
			RequestID: id,
			RunID:     res.RunID,
			Found:     true,
			Strategy:  res.Strategy.String(),
			Sequence:  sequenceToDTO(res.Sequence),
			Cost:      res.Cost,
			Explored:  res.Explored,
		}
		if req.Render {
			var buf bytes.Buffer
			if err := render.NewText(&buf, g, start, end).Route(res.Sequence); err != nil {
				writeError(w, log, id, http.StatusInternalServerError, err)
				return
			}
			resp.Frames = buf.String()
		}
		log.WithFields(logrus.Fields{
			"run_id": res.RunID,
			"moves":  len(res.Sequence),
			"cost":   res.Cost,
		}).Info("path found")
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleValidate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, log := s.begin(w, r)

		var req ValidateRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		}
		g, err := board.Load(board.StringProvider(req.Board))
		if err != nil {
			writeError(w, log, id, http.StatusBadRequest, err)
			return
		}

		_, _, teleport := g.Teleport()
		if req.Teleport != nil {
			teleport = *req.Teleport
		}
		valid := route.Validate(sequenceFromDTO(req.Sequence), req.Start.toBoard(), req.End.toBoard(), g, teleport)
		log.WithField("valid", valid).Debug("sequence checked")
		writeJSON(w, http.StatusOK, ValidateResponse{RequestID: id, Valid: valid})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, id string, status int, err error) {
	entry := log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("bad request")
	}
	writeJSON(w, status, ErrorResponse{RequestID: id, Error: err.Error()})
}
