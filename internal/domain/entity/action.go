package entity

// IntentKind is what a user asked the bot to do.
type IntentKind string

const (
	IntentClaim    IntentKind = "claim"
	IntentCancel   IntentKind = "cancel"
	IntentSnapshot IntentKind = "snapshot"
)

// Intent is a decoded user request. Day is the raw day text for claims.
type Intent struct {
	Kind IntentKind
	Day  string
}

// UserAction is an inbound request decoded by a transport.
type UserAction struct {
	UserID      string
	DisplayName string
	Intent      Intent
}

// ActionResult is returned to the transport to render back to the acting user.
type ActionResult struct {
	Outcome Outcome
	Message string
	Payload Payload
}
