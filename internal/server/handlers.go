package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// Request errors.
var (
	ErrMissingURL   = errors.New("url is required")
	ErrInvalidBody  = errors.New("invalid request body")
	ErrBodyTooLarge = errors.New("request body too large")
)

// ParseRequest is the body of POST /api/parse. GET takes the same fields
// as query parameters.
type ParseRequest struct {
	URL  string `json:"url"`
	Base string `json:"base,omitempty"`
}

// ParseResponse is the body of every /api/parse reply. URL is nil when the
// input failed to parse; Error then says why.
type ParseResponse struct {
	Input            string                   `json:"input"`
	Base             string                   `json:"base,omitempty"`
	URL              *weburl.Components       `json:"url,omitempty"`
	HostKind         string                   `json:"host_kind,omitempty"`
	ValidationErrors []weburl.ValidationError `json:"validation_errors,omitempty"`
	Error            string                   `json:"error,omitempty"`
}

type cachedResponse struct {
	status   int
	outcome  string
	response ParseResponse
}

func (s *Server) handleParseQuery(rw http.ResponseWriter, hr *http.Request) {
	query := hr.URL.Query()

	s.serveParse(rw, hr, ParseRequest{URL: query.Get("url"), Base: query.Get("base")})
}

func (s *Server) handleParseBody(rw http.ResponseWriter, hr *http.Request) {
	body := http.MaxBytesReader(rw, hr.Body, s.cfg.Server.MaxBodyBytes)

	var req ParseRequest

	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(hr.Context(), rw, http.StatusRequestEntityTooLarge,
				fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit))

			return
		}

		s.writeError(hr.Context(), rw, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrInvalidBody, err))

		return
	}

	s.serveParse(rw, hr, req)
}

func (s *Server) serveParse(rw http.ResponseWriter, hr *http.Request, req ParseRequest) {
	ctx := hr.Context()

	if req.URL == "" {
		s.writeError(ctx, rw, http.StatusBadRequest, ErrMissingURL)

		return
	}

	var (
		res cachedResponse
		hit bool
	)

	load := func() (cachedResponse, error) { return s.parse(ctx, req), nil }

	if s.cache != nil {
		res, hit, _ = s.cache.GetOrLoad(cacheKey{input: req.URL, base: req.Base}, load)

		if s.red != nil {
			s.red.RecordCacheLookup(ctx, hit)
		}
	} else {
		res, _ = load()
	}

	if s.red != nil {
		s.red.RecordParse(ctx, res.outcome)
	}

	s.writeJSON(ctx, rw, res.status, res.response)
}

// parse never fails: a Failure becomes a 422 response so that it is cached
// like any other result.
func (s *Server) parse(ctx context.Context, req ParseRequest) cachedResponse {
	resp := ParseResponse{Input: req.URL, Base: req.Base}
	opts := append([]weburl.Option{weburl.WithLogger(s.logger)}, s.opts...)

	if req.Base != "" {
		base, err := weburl.Parse(req.Base)
		if err != nil {
			resp.Error = fmt.Errorf("%w: %w", weburl.ErrInvalidBase, err).Error()

			return cachedResponse{status: http.StatusUnprocessableEntity, outcome: observability.OutcomeFailure, response: resp}
		}

		opts = append(opts, weburl.WithBase(base))
	}

	result, err := weburl.NewParser(opts...).ParseContext(ctx, req.URL)
	if err != nil {
		resp.Error = err.Error()

		return cachedResponse{status: http.StatusUnprocessableEntity, outcome: observability.OutcomeFailure, response: resp}
	}

	components := result.URL.Components()
	resp.URL = &components
	resp.HostKind = result.URL.Host.Kind().String()
	resp.ValidationErrors = result.Errors

	outcome := observability.OutcomeValid
	if result.HasErrors() {
		outcome = observability.OutcomeInvalid
	}

	return cachedResponse{status: http.StatusOK, outcome: outcome, response: resp}
}

func (s *Server) writeError(ctx context.Context, rw http.ResponseWriter, status int, err error) {
	s.writeJSON(ctx, rw, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(ctx context.Context, rw http.ResponseWriter, status int, value any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	if err := json.NewEncoder(rw).Encode(value); err != nil {
		s.logger.ErrorContext(ctx, "failed to encode JSON response", "error", err)
	}
}
