package types

import "encoding/json"

// ------------------------------
// Opaque Domain Values
// ------------------------------

// Settings is the backend's settings object, passed through untouched.
type Settings = json.RawMessage

// PatternList is the backend's list of available patterns, passed through untouched.
type PatternList = json.RawMessage

// Pattern is the backend's current pattern value, passed through untouched.
type Pattern = json.RawMessage

// History is the backend's drained event log, passed through untouched.
type History = json.RawMessage

// Health is the backend's health report, passed through untouched.
type Health = json.RawMessage
