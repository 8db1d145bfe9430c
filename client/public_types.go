package client

import "github.com/audiolux/audiolux/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Opaque values, returned exactly as the backend sent them.
	Settings    = types.Settings
	PatternList = types.PatternList
	Pattern     = types.Pattern
	History     = types.History
	Health      = types.Health

	// Requests
	SetPatternRequest = types.SetPatternRequest

	// Responses
	Response = types.Response
)
