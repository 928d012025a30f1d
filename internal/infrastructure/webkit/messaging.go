package webkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	neturl "net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/void-browser/void/internal/logging"
)

// MessageHandlerName is the script message channel page script posts to
// (window.webkit.messageHandlers.void).
const MessageHandlerName = "void"

// Message represents a JS -> Go message envelope sent via postMessage.
type Message struct {
	ID      uint64          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ScriptRunner evaluates script in the page that sent a message.
type ScriptRunner interface {
	RunJavaScript(ctx context.Context, script string)
}

// MessageHandler handles a decoded message payload.
type MessageHandler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

// SenderPolicy decides whether a page at uri may call the bridge.
type SenderPolicy func(uri string) bool

// ErrUnknownMethod is returned to page script for unregistered message types.
var ErrUnknownMethod = errors.New("unknown bridge method")

// MessageRouter dispatches script-message events to registered handlers.
type MessageRouter struct {
	handlers map[string]MessageHandler
	baseCtx  context.Context
	allow    SenderPolicy

	mu sync.RWMutex
}

// NewMessageRouter creates a new message router. A nil policy accepts every sender.
func NewMessageRouter(ctx context.Context, allow SenderPolicy) *MessageRouter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &MessageRouter{
		handlers: make(map[string]MessageHandler),
		baseCtx:  logging.WithComponent(ctx, "message-router"),
		allow:    allow,
	}
}

// RegisterHandler registers a handler for a message type.
func (r *MessageRouter) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Methods returns the registered message types.
func (r *MessageRouter) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	return out
}

func (r *MessageRouter) getHandler(msgType string) (MessageHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[msgType]
	return h, ok
}

// Dispatch decodes rawJSON, runs the matching handler and answers the sender
// by resolving or rejecting the pending call with the message ID.
// Messages from senders refused by the policy are dropped without an answer.
func (r *MessageRouter) Dispatch(sender ScriptRunner, senderURI, rawJSON string) {
	log := logging.FromContext(r.baseCtx)

	if r.allow != nil && !r.allow(senderURI) {
		log.Warn().Str("sender", senderURI).Msg("script message from untrusted page dropped")
		return
	}
	if rawJSON == "" {
		log.Warn().Msg("script message JSON is empty")
		return
	}

	var msg Message
	if err := json.Unmarshal([]byte(rawJSON), &msg); err != nil {
		log.Warn().Err(err).Str("json", rawJSON).Msg("failed to unmarshal script message")
		return
	}
	if msg.Type == "" {
		log.Warn().Uint64("id", msg.ID).Msg("script message missing type")
		return
	}

	handler, ok := r.getHandler(msg.Type)
	if !ok {
		log.Warn().Str("type", msg.Type).Msg("no handler registered for message type")
		r.reply(sender, RejectScript(msg.ID, fmt.Errorf("%w: %s", ErrUnknownMethod, msg.Type)))
		return
	}

	log.Debug().
		Str("type", msg.Type).
		Uint64("id", msg.ID).
		Int("payload_len", len(msg.Payload)).
		Msg("received script message")

	resp, err := handler.Handle(r.baseCtx, msg.Payload)
	if err != nil {
		log.Error().Err(err).Str("type", msg.Type).Msg("message handler returned error")
		r.reply(sender, RejectScript(msg.ID, err))
		return
	}

	script, err := ResolveScript(msg.ID, resp)
	if err != nil {
		log.Error().Err(err).Str("type", msg.Type).Msg("failed to encode handler result")
		r.reply(sender, RejectScript(msg.ID, err))
		return
	}
	r.reply(sender, script)
}

func (r *MessageRouter) reply(sender ScriptRunner, script string) {
	if sender == nil {
		return
	}
	sender.RunJavaScript(r.baseCtx, script)
}

// wrapBridgeCall guards a window.__voidBridge call so a page without the shim
// or a throwing listener never surfaces as an evaluation error.
func wrapBridgeCall(method, args string) string {
	return fmt.Sprintf(
		`(function(){try{var b=window.__voidBridge;if(b&&b.%[1]s){b.%[1]s(%[2]s);}`+
			`else{console.warn("void bridge missing: %[1]s");}}`+
			`catch(e){console.error("void bridge %[1]s failed",e);}})();`,
		method, args,
	)
}

// ResolveScript builds the script that fulfils pending call id with result.
func ResolveScript(id uint64, result any) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal bridge result: %w", err)
	}
	return wrapBridgeCall("resolve", fmt.Sprintf("%d,%s", id, data)), nil
}

// RejectScript builds the script that rejects pending call id with err's message.
func RejectScript(id uint64, err error) string {
	msg := "error"
	if err != nil {
		msg = err.Error()
	}
	data, _ := json.Marshal(msg)
	return wrapBridgeCall("reject", fmt.Sprintf("%d,%s", id, data))
}

// EmitScript builds the script that delivers a named event to page listeners.
func EmitScript(name string, detail any) (string, error) {
	nameJSON, err := json.Marshal(name)
	if err != nil {
		return "", fmt.Errorf("marshal event name: %w", err)
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return "", fmt.Errorf("marshal event detail: %w", err)
	}
	return wrapBridgeCall("emit", fmt.Sprintf("%s,%s", nameJSON, data)), nil
}

// InstallDirPolicy accepts only file:// pages located inside root.
func InstallDirPolicy(root string) SenderPolicy {
	absRoot, err := filepath.Abs(root)
	if err != nil || root == "" {
		return func(string) bool { return false }
	}
	return func(uri string) bool {
		u, err := neturl.Parse(uri)
		if err != nil || u.Scheme != "file" || u.Path == "" {
			return false
		}
		rel, err := filepath.Rel(absRoot, filepath.Clean(u.Path))
		if err != nil {
			return false
		}
		return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
	}
}
