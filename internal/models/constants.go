package models

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Well-known priority names. Priority is free-form; any string is stored as given.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultPriority is applied when a todo is created without one
const DefaultPriority = PriorityMedium

// ============================================================================
// MESSAGES
// ============================================================================

// NotFoundMessage is the plain-text body returned for unknown ids
const NotFoundMessage = "To-Do item not found"
