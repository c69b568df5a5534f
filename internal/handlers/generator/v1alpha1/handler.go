package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/msh-chargen/internal/errors"
	"github.com/KirkDiggler/msh-chargen/internal/orchestrators/session"
)

// HandlerConfig holds dependencies for the generator handler
type HandlerConfig struct {
	SessionService session.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SessionService == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Handler implements GeneratorServiceServer
type Handler struct {
	sessionService session.Service
}

// NewHandler creates a new generator handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessionService: cfg.SessionService,
	}, nil
}

var _ GeneratorServiceServer = (*Handler)(nil)

// CreateSessionRequest is the CreateSession document
type CreateSessionRequest struct {
	ScoringMode string `json:"scoring_mode,omitempty"`
}

// SessionRequest names a session
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// ApplyRequest is the Apply document
type ApplyRequest struct {
	SessionID string         `json:"session_id"`
	Action    session.Action `json:"action"`
}

// ApplyResponse is the Apply result document
type ApplyResponse struct {
	View    *session.View `json:"view"`
	Applied bool          `json:"applied"`
}

// ExportResponse is the Export result document
type ExportResponse struct {
	Text string `json:"text"`
}

// CreateSession starts a session
func (h *Handler) CreateSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CreateSessionRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.CreateSession(ctx, &session.CreateSessionInput{ScoringMode: in.ScoringMode})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return encode(out.View)
}

// GetSession returns the session view
func (h *Handler) GetSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := sessionID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.GetSession(ctx, &session.GetSessionInput{SessionID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return encode(out.View)
}

// Apply runs one action
func (h *Handler) Apply(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ApplyRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if in.Action.Type == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("action.type is required"))
	}

	out, err := h.sessionService.Apply(ctx, &session.ApplyInput{SessionID: in.SessionID, Action: in.Action})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return encode(&ApplyResponse{View: out.View, Applied: out.Applied})
}

// Export renders the character sheet
func (h *Handler) Export(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := sessionID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sessionService.Export(ctx, &session.ExportInput{SessionID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return encode(&ExportResponse{Text: out.Text})
}

// DeleteSession discards a session
func (h *Handler) DeleteSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := sessionID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.sessionService.DeleteSession(ctx, &session.DeleteSessionInput{SessionID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

func sessionID(req *structpb.Struct) (string, error) {
	var in SessionRequest
	if err := decode(req, &in); err != nil {
		return "", err
	}
	if in.SessionID == "" {
		return "", errors.InvalidArgument("session_id is required")
	}
	return in.SessionID, nil
}

// decode maps a Struct document onto a request type
func decode(req *structpb.Struct, into interface{}) error {
	if req == nil {
		return nil
	}
	data, err := req.MarshalJSON()
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encode maps a response value onto a Struct document
func encode(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}
