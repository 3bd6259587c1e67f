// Package mcpserver exposes the description operations as MCP tools over
// streamable HTTP, so an agent can ask for text views of its observations
// without speaking the line protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/cory-johannsen/glyphspeak/internal/config"
	"github.com/cory-johannsen/glyphspeak/internal/observability"
	"github.com/cory-johannsen/glyphspeak/internal/observation"
	"github.com/cory-johannsen/glyphspeak/internal/storage"
	"github.com/cory-johannsen/glyphspeak/internal/translate"
)

// TranscriptStore records descriptions and lists the latest ones.
type TranscriptStore interface {
	Record(ctx context.Context, op, text string) (storage.Transcript, error)
	Recent(ctx context.Context, limit int) ([]storage.Transcript, error)
}

// ObservationInput is the tool argument carrying one snapshot.
type ObservationInput struct {
	Glyphs     [][]int64 `json:"glyphs,omitempty" jsonschema:"21 rows of 79 glyph codes"`
	Blstats    []int64   `json:"blstats,omitempty" jsonschema:"bottom-line status vector, x and y first"`
	TTYCursor  []int64   `json:"tty_cursor,omitempty" jsonschema:"terminal cursor as [row, col]"`
	InvStrs    []string  `json:"inv_strs,omitempty" jsonschema:"inventory item texts"`
	InvLetters string    `json:"inv_letters,omitempty" jsonschema:"inventory letters, one per item text"`
	TTYChars   []string  `json:"tty_chars,omitempty" jsonschema:"terminal rows, message window first"`
}

// TextOutput is the result of a single-text tool.
type TextOutput struct {
	Text string `json:"text" jsonschema:"the rendered description"`
}

// ActionInput names a text action.
type ActionInput struct {
	Action string `json:"action" jsonschema:"text action such as 'north' or 'far east'"`
}

// RecentInput bounds a transcript listing.
type RecentInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of transcripts, newest first"`
}

// TranscriptOutput is one listed transcript.
type TranscriptOutput struct {
	ID        string `json:"id"`
	Op        string `json:"op"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at" jsonschema:"RFC 3339 timestamp"`
}

// RecentOutput lists transcripts.
type RecentOutput struct {
	Transcripts []TranscriptOutput `json:"transcripts"`
}

// Server hosts the MCP tool set.
type Server struct {
	cfg         config.MCPConfig
	translator  *translate.Translator
	transcripts TranscriptStore
	recentLimit int
	logger      *zap.Logger

	mcp *mcp.Server

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

// New creates a Server and registers its tools. transcripts may be nil, in
// which case nothing is recorded and recent_transcripts is not offered.
//
// Precondition: translator and logger must be non-nil; recentLimit >= 1.
func New(cfg config.MCPConfig, translator *translate.Translator, transcripts TranscriptStore, recentLimit int, logger *zap.Logger) *Server {
	s := &Server{
		cfg:         cfg,
		translator:  translator,
		transcripts: transcripts,
		recentLimit: recentLimit,
		logger:      logger,
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "glyphspeak",
		Version: "v1.0.0",
	}, nil)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "describe_glyphs",
		Description: "Describe what the player can see, grouped by distance and compass direction.",
	}, s.textTool(observation.OpGlyphs))
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "describe_stats",
		Description: "Render the bottom-line status vector as labelled lines.",
	}, s.textTool(observation.OpStats))
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "describe_inventory",
		Description: "List the inventory as 'letter: item' lines.",
	}, s.textTool(observation.OpInventory))
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "describe_cursor",
		Description: "Describe the map cell under the terminal cursor relative to the player.",
	}, s.textTool(observation.OpCursor))
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "describe_message",
		Description: "Extract the message window, following --More-- and page counters.",
	}, s.textTool(observation.OpMessage))
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "describe_all",
		Description: "Render every text view of one observation.",
	}, s.describeAll)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "translate_action",
		Description: "Resolve a text action to the keystroke the game expects.",
	}, s.translateAction)
	if s.transcripts != nil {
		mcp.AddTool(s.mcp, &mcp.Tool{
			Name:        "recent_transcripts",
			Description: "List the most recently recorded descriptions.",
		}, s.recent)
	}
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server { return s.mcp }

// request runs the tool arguments through the line protocol decoder so both
// frontends accept and reject exactly the same snapshots.
func request(op string, in ObservationInput) (*observation.Request, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding arguments: %w", err)
	}
	b, err = sjson.SetBytes(b, "op", op)
	if err != nil {
		return nil, fmt.Errorf("encoding arguments: %w", err)
	}
	return observation.Parse(b)
}

func (s *Server) textTool(op string) mcp.ToolHandlerFor[ObservationInput, TextOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ObservationInput) (*mcp.CallToolResult, TextOutput, error) {
		start := time.Now()
		req, err := request(op, in)
		if err != nil {
			return nil, TextOutput{}, err
		}
		text, err := s.translator.Text(req)
		if err != nil {
			return nil, TextOutput{}, err
		}
		if op == observation.OpGlyphs {
			s.record(ctx, op, text)
		}
		s.logger.Debug("answered tool call", observability.RequestFields("mcp", "", op, time.Since(start))...)
		return nil, TextOutput{Text: text}, nil
	}
}

func (s *Server) describeAll(ctx context.Context, _ *mcp.CallToolRequest, in ObservationInput) (*mcp.CallToolResult, translate.Texts, error) {
	start := time.Now()
	req, err := request(observation.OpAll, in)
	if err != nil {
		return nil, translate.Texts{}, err
	}
	texts := s.translator.All(&req.Observation)
	if b, err := json.Marshal(texts); err == nil {
		s.record(ctx, observation.OpAll, string(b))
	}
	s.logger.Debug("answered tool call", observability.RequestFields("mcp", "", observation.OpAll, time.Since(start))...)
	return nil, texts, nil
}

func (s *Server) translateAction(_ context.Context, _ *mcp.CallToolRequest, in ActionInput) (*mcp.CallToolResult, translate.Keystroke, error) {
	k, err := s.translator.Action(in.Action)
	if err != nil {
		return nil, translate.Keystroke{}, err
	}
	return nil, k, nil
}

func (s *Server) recent(ctx context.Context, _ *mcp.CallToolRequest, in RecentInput) (*mcp.CallToolResult, RecentOutput, error) {
	limit := in.Limit
	if limit < 1 || limit > s.recentLimit {
		limit = s.recentLimit
	}
	trs, err := s.transcripts.Recent(ctx, limit)
	if err != nil {
		return nil, RecentOutput{}, err
	}
	out := RecentOutput{Transcripts: make([]TranscriptOutput, 0, len(trs))}
	for _, tr := range trs {
		out.Transcripts = append(out.Transcripts, TranscriptOutput{
			ID:        tr.ID.String(),
			Op:        tr.Op,
			Text:      tr.Text,
			CreatedAt: tr.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return nil, out, nil
}

func (s *Server) record(ctx context.Context, op, text string) {
	if s.transcripts == nil || text == "" {
		return
	}
	if _, err := s.transcripts.Record(ctx, op, text); err != nil {
		s.logger.Warn("recording transcript", zap.String("op", op), zap.Error(err))
	}
}

// Handler returns the HTTP mux serving the streamable transport at cfg.Path.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.mcp
	}, &mcp.StreamableHTTPOptions{
		JSONResponse: true,
	})
	mux := http.NewServeMux()
	mux.Handle(s.cfg.Path, otelhttp.NewHandler(handler, "mcp"))
	return mux
}

// ListenAndServe serves HTTP until Stop is called.
//
// Postcondition: Returns nil after Stop, or the listen/serve error.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr(), err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.httpServer = srv
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info("mcp server listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("path", s.cfg.Path),
	)
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving mcp: %w", err)
	}
	return nil
}

// Addr returns the listening address, or empty string if not yet listening.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// Stop shuts the HTTP server down, waiting up to five seconds for calls in flight.
func (s *Server) Stop() {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Warn("mcp shutdown", zap.Error(err))
	}
	s.logger.Info("mcp server stopped")
}
