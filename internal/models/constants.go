package models

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

// MaxCardTitleLength is the maximum number of characters in a card title
const MaxCardTitleLength = 255

// MaxNameLength is the maximum number of characters in a board or column name
const MaxNameLength = 50

// MaxReasonLength is the maximum number of characters in a block or unblock reason
const MaxReasonLength = 500
