package models

// USSDRequest represents a gateway callback for one USSD hop. The gateway
// holds no server-side session: Text accumulates every keystroke the user
// has entered this session, newest last, separated by '*'.
type USSDRequest struct {
	// Gateway session identifier, for audit correlation only
	SessionID string `json:"sessionId"`

	// Subscriber phone number
	// example: +233551234567
	PhoneNumber string `json:"phoneNumber"`

	// Accumulated '*'-delimited input text
	// example: 2*0551234567*50
	Text string `json:"text"`

	// Dialled service code
	// example: *483#
	ServiceCode string `json:"serviceCode"`
}
