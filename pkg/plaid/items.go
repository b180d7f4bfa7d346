package plaid

// Item represents a connection to a single financial institution, typically
// backed by one credential pair and an access_token.
type Item struct {
	ItemID            string   `json:"item_id"                  yaml:"item_id"`
	InstitutionID     string   `json:"institution_id,omitempty" yaml:"institution_id,omitempty"`
	Webhook           string   `json:"webhook,omitempty"        yaml:"webhook,omitempty"`
	Error             *Error   `json:"error,omitempty"          yaml:"error,omitempty"`
	AvailableProducts []string `json:"available_products"       yaml:"available_products"`
	BilledProducts    []string `json:"billed_products"          yaml:"billed_products"`
	// ConsentExpirationTime is an RFC 3339 timestamp after which the end
	// user's consent expires.
	ConsentExpirationTime string      `json:"consent_expiration_time,omitempty" yaml:"consent_expiration_time,omitempty"`
	UpdateType            string      `json:"update_type"                       yaml:"update_type"`
	Status                *ItemStatus `json:"status,omitempty"                  yaml:"status,omitempty"`
}

// ItemStatus reports the last product updates and webhook delivery for an
// item.
type ItemStatus struct {
	Investments  *ProductStatus `json:"investments,omitempty"  yaml:"investments,omitempty"`
	Transactions *ProductStatus `json:"transactions,omitempty" yaml:"transactions,omitempty"`
	LastWebhook  *WebhookStatus `json:"last_webhook,omitempty" yaml:"last_webhook,omitempty"`
}

// ProductStatus records the last successful and failed update for a product.
type ProductStatus struct {
	LastSuccessfulUpdate string `json:"last_successful_update,omitempty" yaml:"last_successful_update,omitempty"`
	LastFailedUpdate     string `json:"last_failed_update,omitempty"     yaml:"last_failed_update,omitempty"`
}

// WebhookStatus records the last webhook fired for an item.
type WebhookStatus struct {
	SentAt   string `json:"sent_at,omitempty"   yaml:"sent_at,omitempty"`
	CodeSent string `json:"code_sent,omitempty" yaml:"code_sent,omitempty"`
}

// GetItemRequest is the request body for /item/get.
type GetItemRequest struct {
	AccessToken string `json:"access_token"`
}

// GetItemResponse is the response body for /item/get.
type GetItemResponse struct {
	Item      Item        `json:"item"`
	Status    *ItemStatus `json:"status,omitempty"`
	RequestID string      `json:"request_id"`
}

// RemoveItemRequest is the request body for /item/remove.
type RemoveItemRequest struct {
	AccessToken string `json:"access_token"`
}

// RemoveItemResponse is the response body for /item/remove.
type RemoveItemResponse struct {
	RequestID string `json:"request_id"`
}

// UpdateItemWebhookRequest is the request body for /item/webhook/update.
type UpdateItemWebhookRequest struct {
	AccessToken string `json:"access_token"`
	// Webhook is the new URL to associate with the item.
	Webhook string `json:"webhook"`
}

// UpdateItemWebhookResponse is the response body for /item/webhook/update.
type UpdateItemWebhookResponse struct {
	Item      Item   `json:"item"`
	RequestID string `json:"request_id"`
}
