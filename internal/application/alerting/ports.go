package alerting

import "context"

// MessageGateway is the outbound messaging port. Implementations normalize
// the phone number, call the external gateway and map transport or gateway
// failures to a plain error; they never panic.
type MessageGateway interface {
	SendMessage(ctx context.Context, phone, message string) error
}
