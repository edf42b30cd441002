package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/castellan/wordtrie/internal/logger"
	"github.com/castellan/wordtrie/pkg/config"
	"github.com/castellan/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word completions.
type Server struct {
	completer suggest.ICompleter
	cfg       *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
	log       *log.Logger
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return &Server{
		completer: completer,
		cfg:       cfg,
		dec:       msgpack.NewDecoder(os.Stdin),
		enc:       msgpack.NewEncoder(os.Stdout),
		log:       logger.Default("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the pipe.
func (s *Server) Start() error {
	s.log.Debug("Starting server")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready", Words: s.completer.WordCount()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches a single decoded request.
func (s *Server) handleRequest(req Request) {
	switch req.Cmd {
	case "complete":
		s.handleComplete(req)
	case "add":
		s.handleAdd(req)
	case "ping":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.completer.WordCount()})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown command: %s", req.Cmd), 400)
	}
}

// handleComplete validates the request, retrieves ranked suggestions and
// sends them back with timing information. A prefix with no matches is a
// normal response with zero suggestions, not an error.
func (s *Server) handleComplete(req Request) {
	prefix := req.Prefix

	if prefix == "" {
		s.sendError(req.ID, "Missing 'p' parameter", 400)
		s.log.Debug("Prefix is empty in request")
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		s.log.Debug("Prefix is too long in request")
		return
	}

	start := time.Now()
	suggestions := s.completer.Complete(prefix)
	elapsed := time.Since(start)

	if req.Limit > 0 && len(suggestions) > req.Limit {
		suggestions = suggestions[:req.Limit]
	}

	response := CompletionResponse{
		ID:          req.ID,
		Suggestions: make([]ResponseSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, sg := range suggestions {
		response.Suggestions[i] = ResponseSuggestion{Word: sg.Word, Frequency: sg.Frequency}
	}
	s.send(response)
}

// handleAdd records one occurrence of the request's word.
func (s *Server) handleAdd(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}
	s.completer.AddWord(req.Word)
	s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.completer.WordCount()})
}

// send encodes a response onto the wire.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends a structured error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
