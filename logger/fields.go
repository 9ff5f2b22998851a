package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Type identities
	FieldIdentity    = "identity"
	FieldFingerprint = "fingerprint"
	FieldPayload     = "payload"

	// Graph entities
	FieldNodeID    = "node_id"
	FieldNodeType  = "node_type"
	FieldAttribute = "attribute"
	FieldPolicy    = "policy"

	// Counts
	FieldCount = "count"

	// Errors
	FieldError = "error"
)
