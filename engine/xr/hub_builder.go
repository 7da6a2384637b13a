package xr

import "go.uber.org/zap"

// HubBuilderOption is a functional option for configuring a Hub.
type HubBuilderOption func(*hub)

// WithLogger sets the logger used for connection events. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - HubBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) HubBuilderOption {
	return func(h *hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}
