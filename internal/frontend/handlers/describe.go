// Package handlers answers line protocol requests on a telnet session.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cory-johannsen/glyphspeak/internal/frontend/telnet"
	"github.com/cory-johannsen/glyphspeak/internal/observability"
	"github.com/cory-johannsen/glyphspeak/internal/observation"
	"github.com/cory-johannsen/glyphspeak/internal/storage"
	"github.com/cory-johannsen/glyphspeak/internal/translate"
)

const tracerName = "github.com/cory-johannsen/glyphspeak/internal/frontend/handlers"

// TranscriptStore records produced descriptions.
type TranscriptStore interface {
	Record(ctx context.Context, op, text string) (storage.Transcript, error)
}

// DescribeHandler implements telnet.SessionHandler. Each request line is
// answered with exactly one response line.
type DescribeHandler struct {
	translator  *translate.Translator
	transcripts TranscriptStore
	logger      *zap.Logger
	tracer      trace.Tracer
}

// NewDescribeHandler creates a DescribeHandler. transcripts may be nil, in
// which case nothing is recorded. Spans go to the global tracer provider in
// place at construction.
//
// Precondition: translator and logger must be non-nil.
func NewDescribeHandler(translator *translate.Translator, transcripts TranscriptStore, logger *zap.Logger) *DescribeHandler {
	return &DescribeHandler{
		translator:  translator,
		transcripts: transcripts,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
	}
}

// HandleSession reads request lines until the client sends quit, disconnects,
// or ctx is cancelled.
//
// Postcondition: Returns nil on quit or a clean disconnect, or an error if the
// session ended abnormally.
func (h *DescribeHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := conn.ReadLine()
		if errors.Is(err, telnet.ErrLineTooLong) {
			resp := errorResponse(uuid.NewString(), "", err)
			if werr := conn.WriteLine(resp); werr != nil {
				return fmt.Errorf("writing response: %w", werr)
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading request: %w", err)
		}

		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, "quit") {
			return nil
		}

		if err := conn.WriteLine(h.Respond(ctx, line)); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// Respond answers one request line.
//
// Postcondition: Returns a single-line JSON object carrying "id" and either
// "text", "texts" or "error".
func (h *DescribeHandler) Respond(ctx context.Context, line []byte) []byte {
	start := time.Now()
	ctx, span := h.tracer.Start(ctx, "describe.respond")
	defer span.End()

	req, err := observation.Parse(line)
	if err != nil {
		id := gjson.GetBytes(line, "id").String()
		if id == "" {
			id = uuid.NewString()
		}
		h.logger.Debug("rejected request", append(
			observability.RequestFields("telnet", id, "", time.Since(start)),
			zap.Error(err),
		)...)
		return failed(span, id, gjson.GetBytes(line, "op").String(), err)
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	span.SetAttributes(
		attribute.String("glyphspeak.request_id", req.ID),
		attribute.String("glyphspeak.op", req.Op),
	)

	resp := []byte(`{}`)
	resp, _ = sjson.SetBytes(resp, "id", req.ID)
	resp, _ = sjson.SetBytes(resp, "op", req.Op)

	var transcript string
	switch req.Op {
	case observation.OpAll:
		texts := h.translator.All(&req.Observation)
		resp, _ = sjson.SetBytes(resp, "texts", texts)
		transcript = gjson.GetBytes(resp, "texts").Raw
	case observation.OpAction:
		k, err := h.translator.Action(req.Action)
		if err != nil {
			return failed(span, req.ID, req.Op, err)
		}
		resp, _ = sjson.SetBytes(resp, "text", k.Notation)
		resp, _ = sjson.SetBytes(resp, "key", k.Key)
		resp, _ = sjson.SetBytes(resp, "action", k.Name)
	default:
		text, err := h.translator.Text(req)
		if err != nil {
			return failed(span, req.ID, req.Op, err)
		}
		resp, _ = sjson.SetBytes(resp, "text", text)
		if req.Op == observation.OpGlyphs {
			transcript = text
		}
	}

	if transcript != "" {
		h.record(ctx, req.Op, transcript)
	}

	h.logger.Debug("answered request", observability.RequestFields("telnet", req.ID, req.Op, time.Since(start))...)
	return resp
}

func (h *DescribeHandler) record(ctx context.Context, op, text string) {
	if h.transcripts == nil {
		return
	}
	if _, err := h.transcripts.Record(ctx, op, text); err != nil {
		h.logger.Warn("recording transcript", zap.String("op", op), zap.Error(err))
	}
}

// failed marks the span as errored and builds the error response.
func failed(span trace.Span, id, op string, err error) []byte {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return errorResponse(id, op, err)
}

func errorResponse(id, op string, err error) []byte {
	resp := []byte(`{}`)
	resp, _ = sjson.SetBytes(resp, "id", id)
	if op != "" {
		resp, _ = sjson.SetBytes(resp, "op", op)
	}
	resp, _ = sjson.SetBytes(resp, "error", err.Error())
	return resp
}
