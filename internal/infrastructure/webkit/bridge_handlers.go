package webkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/void-browser/void/internal/domain/entity"
)

// Bridge method names understood by the in-page shim.
const (
	MethodGetSettings      = "getSettings"
	MethodSetSidebarWidth  = "setSidebarWidth"
	MethodSetEngine        = "setEngine"
	MethodSetTracker       = "setTracker"
	MethodSetDnt           = "setDnt"
	MethodSetHomepage      = "setHomepage"
	MethodSetAutoCollapse  = "setAutoCollapse"
	MethodResolveLocalPath = "resolveLocalPath"
)

// BridgeAPI is the host side of the in-page bridge.
type BridgeAPI interface {
	GetSettings() entity.Settings
	SetSidebarWidth(ctx context.Context, width int) (int, error)
	SetEngine(ctx context.Context, template string) error
	SetTracker(ctx context.Context, enabled bool) error
	SetDnt(ctx context.Context, enabled bool) error
	SetHomepage(ctx context.Context, mode, url string) error
	SetAutoCollapse(ctx context.Context, enabled bool) error
	ResolveLocalPath(ctx context.Context, rel string) (string, error)
}

type widthPayload struct {
	Width int `json:"width"`
}

type enginePayload struct {
	Engine string `json:"engine"`
}

type enabledPayload struct {
	Enabled bool `json:"enabled"`
}

type homepagePayload struct {
	Mode string `json:"mode"`
	URL  string `json:"url"`
}

type pathPayload struct {
	Path string `json:"path"`
}

type okResult struct {
	OK bool `json:"ok"`
}

func decodePayload(method string, payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%s: missing payload", method)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%s: invalid payload: %w", method, err)
	}
	return nil
}

func setterHandler[T any](method string, apply func(context.Context, T) error) MessageHandlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var req T
		if err := decodePayload(method, payload, &req); err != nil {
			return nil, err
		}
		if err := apply(ctx, req); err != nil {
			return nil, err
		}
		return okResult{OK: true}, nil
	}
}

// RegisterBridgeHandlers wires every bridge method into router.
func RegisterBridgeHandlers(router *MessageRouter, api BridgeAPI) error {
	handlers := map[string]MessageHandler{
		MethodGetSettings: MessageHandlerFunc(func(context.Context, json.RawMessage) (any, error) {
			return api.GetSettings(), nil
		}),
		MethodSetSidebarWidth: MessageHandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req widthPayload
			if err := decodePayload(MethodSetSidebarWidth, payload, &req); err != nil {
				return nil, err
			}
			width, err := api.SetSidebarWidth(ctx, req.Width)
			if err != nil {
				return nil, err
			}
			return widthPayload{Width: width}, nil
		}),
		MethodSetEngine: setterHandler(MethodSetEngine, func(ctx context.Context, req enginePayload) error {
			return api.SetEngine(ctx, req.Engine)
		}),
		MethodSetTracker: setterHandler(MethodSetTracker, func(ctx context.Context, req enabledPayload) error {
			return api.SetTracker(ctx, req.Enabled)
		}),
		MethodSetDnt: setterHandler(MethodSetDnt, func(ctx context.Context, req enabledPayload) error {
			return api.SetDnt(ctx, req.Enabled)
		}),
		MethodSetHomepage: setterHandler(MethodSetHomepage, func(ctx context.Context, req homepagePayload) error {
			return api.SetHomepage(ctx, req.Mode, req.URL)
		}),
		MethodSetAutoCollapse: setterHandler(MethodSetAutoCollapse, func(ctx context.Context, req enabledPayload) error {
			return api.SetAutoCollapse(ctx, req.Enabled)
		}),
		MethodResolveLocalPath: MessageHandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req pathPayload
			if err := decodePayload(MethodResolveLocalPath, payload, &req); err != nil {
				return nil, err
			}
			resolved, err := api.ResolveLocalPath(ctx, req.Path)
			if err != nil {
				return nil, err
			}
			return struct {
				URL string `json:"url"`
			}{URL: resolved}, nil
		}),
	}

	for name, h := range handlers {
		if err := router.RegisterHandler(name, h); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}
