package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/a2a"
	"github.com/spetersoncode/nutriagent/agent"
	"github.com/spetersoncode/nutriagent/nutrition"
)

// DefaultQuery is looked up when the conversation carries no text.
const DefaultQuery = "apple"

// Lookuper finds nutrition facts for a food query.
type Lookuper interface {
	Lookup(ctx context.Context, query string) (*nutrition.Summary, error)
}

// LookupFunc adapts a function to Lookuper.
type LookupFunc func(ctx context.Context, query string) (*nutrition.Summary, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, query string) (*nutrition.Summary, error) {
	return f(ctx, query)
}

// Handler answers JSON-RPC task requests addressed to registered agents.
type Handler struct {
	agents  *agent.Registry
	foods   Lookuper
	builder *a2a.Builder
	logger  *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithBuilder sets the envelope builder.
func WithBuilder(b *a2a.Builder) Option {
	return func(h *Handler) {
		h.builder = b
	}
}

// NewHandler creates a Handler serving the agents in agents, each backed by foods.
func NewHandler(agents *agent.Registry, foods Lookuper, opts ...Option) *Handler {
	h := &Handler{
		agents:  agents,
		foods:   foods,
		builder: a2a.NewBuilder(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes one request body addressed to agentID and returns the
// HTTP status with the envelope to send. It never returns a nil response.
func (h *Handler) Handle(ctx context.Context, agentID string, body []byte) (int, *a2a.Response) {
	start := time.Now()
	log := h.logger.With("agent", agentID)

	req, err := a2a.ParseRequest(body)
	if err != nil {
		var ve *a2a.ValidationError
		var id json.RawMessage
		if errors.As(err, &ve) {
			id = ve.ID
		}
		return h.fail(log, id, err)
	}
	log = log.With("request_id", string(req.ID))

	gen, err := h.agents.Resolve(agentID)
	if err != nil {
		return h.fail(log, req.ID, err)
	}

	log.Info("task request received", "method", req.Method)

	resp, err := h.run(ctx, gen, req)
	if err != nil {
		return h.fail(log, req.ID, err)
	}

	log.Info("task request completed",
		"task_id", resp.Result.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return http.StatusOK, resp
}

// run normalizes the conversation, invokes the agent and builds the
// completed task. Panics are recovered as internal failures.
func (h *Handler) run(ctx context.Context, gen agent.Generator, req *a2a.Request) (resp *a2a.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = nutriagent.NewInternalError(fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	conversation := req.Params.Conversation()
	input := a2a.ToAgentInput(conversation)
	query := a2a.FirstText(conversation, DefaultQuery)

	fetch := func(ctx context.Context) (any, error) {
		summary, err := h.foods.Lookup(ctx, query)
		if err != nil {
			return nil, err
		}
		return summary, nil
	}

	result, err := gen.Generate(ctx, input, fetch)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nutriagent.NewInternalError("malformed agent response: no result", nil)
	}
	summary, ok := result.Text.(*nutrition.Summary)
	if !ok || summary == nil {
		return nil, nutriagent.NewInternalError(
			fmt.Sprintf("malformed agent response: expected nutrition summary, got %T", result.Text), nil)
	}

	return h.builder.Success(a2a.SuccessParams{
		RequestID: req.ID,
		ContextID: req.Params.ContextID,
		TaskID:    req.Params.TaskID,
		Text:      summary.Text(),
		Data:      summary,
		History:   a2a.ToHistoryMessages(conversation, req.Params.TaskID, h.builder.IDs()),
	}), nil
}

// fail logs err and builds its error envelope.
func (h *Handler) fail(log *slog.Logger, id json.RawMessage, err error) (int, *a2a.Response) {
	f := failureFor(nutriagent.KindOf(err))
	if f.status >= http.StatusInternalServerError {
		log.Error("task request failed", "error", err)
	} else {
		log.Warn("task request rejected", "error", err, "status", f.status)
	}
	return f.status, h.builder.Error(id, f.code, f.message, err.Error())
}
