package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/filebox/searchkit/pkg/config"
	"github.com/filebox/searchkit/pkg/dict"
	"github.com/filebox/searchkit/pkg/query"
)

// ReloadFunc fetches a fresh dictionary word list, optionally narrowed to a
// MIME category. Wired to dict.Store or dict.ReadWordList by the caller.
type ReloadFunc func(ctx context.Context, category string) ([]string, error)

// Server handles the IPC loop for parsing and completion.
type Server struct {
	holder *dict.Holder
	cfg    *config.Config
	reload ReloadFunc
	in     io.Reader
	out    io.Writer
}

// New creates a server on stdin/stdout. reload may be nil when no dictionary
// source is configured; dict reload requests then fail cleanly.
func New(holder *dict.Holder, cfg *config.Config, reload ReloadFunc) *Server {
	return &Server{
		holder: holder,
		cfg:    cfg,
		reload: reload,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// Start runs the request loop until stdin closes.
func (s *Server) Start() error {
	log.Debug("starting IPC server")
	dec := msgpack.NewDecoder(s.in)
	enc := msgpack.NewEncoder(s.out)

	s.send(enc, map[string]string{"status": "ready"})

	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("decoding request: %v", err)
			return err
		}
		s.handle(enc, req)
	}
}

func (s *Server) handle(enc *msgpack.Encoder, req Request) {
	switch req.Cmd {
	case "parse":
		s.handleParse(enc, req)
	case "complete":
		s.handleComplete(enc, req)
	case "dict":
		s.handleDict(enc, req)
	case "health":
		s.send(enc, map[string]string{"status": "ok"})
	default:
		s.sendError(enc, req.ID, fmt.Sprintf("unknown command: %q", req.Cmd), 400)
	}
}

// handleParse runs the tag parser over the raw query and also returns the
// derived backend parameters, resolved against the current clock.
func (s *Server) handleParse(enc *msgpack.Encoder, req Request) {
	start := time.Now()
	parsed := query.Parse(req.Query)
	params := query.QueryParams(parsed.Tags)

	s.send(enc, ParseResponse{
		ID:        req.ID,
		Text:      parsed.Text,
		Tags:      parsed.Tags,
		Params:    params,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleComplete(enc *msgpack.Encoder, req Request) {
	prefix := req.Prefix
	prefixLen := utf8.RuneCountInString(prefix)
	if prefixLen < s.cfg.Suggest.MinPrefix {
		s.sendError(enc, req.ID, "prefix too short", 400)
		return
	}
	if prefixLen > s.cfg.Suggest.MaxPrefix {
		s.sendError(enc, req.ID, "prefix too long", 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.Suggest.DefaultLimit
	}
	if limit > s.cfg.Suggest.MaxLimit {
		limit = s.cfg.Suggest.MaxLimit
	}

	start := time.Now()
	words := s.holder.Trie().Search(prefix, limit)
	elapsed := time.Since(start)

	s.send(enc, CompleteResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleDict(enc *msgpack.Encoder, req Request) {
	switch req.Action {
	case "info":
		s.send(enc, DictResponse{
			ID:     req.ID,
			Status: "ok",
			Words:  s.holder.Trie().Size(),
		})
	case "reload":
		if s.reload == nil {
			s.send(enc, DictResponse{
				ID:     req.ID,
				Status: "error",
				Error:  "no dictionary source configured",
			})
			return
		}
		words, err := s.reload(context.Background(), req.Category)
		if err != nil {
			log.Errorf("dictionary reload: %v", err)
			s.send(enc, DictResponse{
				ID:     req.ID,
				Status: "error",
				Error:  err.Error(),
			})
			return
		}
		trie := s.holder.Rebuild(words)
		log.Debugf("dictionary reloaded: %d words", trie.Size())
		s.send(enc, DictResponse{
			ID:     req.ID,
			Status: "ok",
			Words:  trie.Size(),
		})
	default:
		s.sendError(enc, req.ID, fmt.Sprintf("unknown dict action: %q", req.Action), 400)
	}
}

func (s *Server) send(enc *msgpack.Encoder, response any) {
	if err := enc.Encode(response); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(enc *msgpack.Encoder, id, message string, code int) {
	s.send(enc, ErrorResponse{ID: id, Error: message, Code: code})
}
