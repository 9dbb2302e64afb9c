package entity

// Recipient is an alert receiver. Only recipients with a phone number are
// dispatch targets for the WhatsApp digest.
type Recipient struct {
	ID          string
	DisplayName string
	Phone       string // raw as stored; normalized at send time
}
