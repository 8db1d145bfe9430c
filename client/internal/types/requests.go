package types

// ------------------------------
// Request Types
// ------------------------------

// SetPatternRequest is the body of PUT /api/pattern/. Pattern is forwarded
// verbatim, including nil which encodes as null.
type SetPatternRequest struct {
	Pattern any `json:"pattern"`
}
