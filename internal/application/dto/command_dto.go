package dto

// WebhookCommandRequest inbound messaging-channel payload.
type WebhookCommandRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// MatchedItemDTO a requested line resolved against the catalog.
type MatchedItemDTO struct {
	ItemID        string `json:"item_id"`
	RequestedName string `json:"requested_name"`
	MatchedName   string `json:"matched_name"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
}

// UnmatchedItemDTO a requested line with no catalog resolution.
type UnmatchedItemDTO struct {
	RequestedName string `json:"requested_name"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
}

// WebhookCommandResponse result of processing an inbound command. Reply is
// the text to send back over the channel; on a parse failure it carries the
// usage help and RequestID is empty.
type WebhookCommandResponse struct {
	Reply     string             `json:"reply"`
	RequestID string             `json:"request_id,omitempty"`
	Purpose   string             `json:"purpose,omitempty"`
	Matched   []MatchedItemDTO   `json:"matched,omitempty"`
	Unmatched []UnmatchedItemDTO `json:"unmatched,omitempty"`
}
