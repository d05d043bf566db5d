package types

// MessageEnvelope is the success body for mutation endpoints: a human
// message plus the finalized transaction, when one exists.
type MessageEnvelope struct {
	Message     string `json:"message"`
	Transaction any    `json:"transaction,omitempty"`
}

// ErrorEnvelope is the flat error body returned on failures.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}
