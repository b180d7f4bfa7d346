package plaid

// GetWebhookVerificationKeyRequest is the request body for
// /webhook_verification_key/get.
type GetWebhookVerificationKeyRequest struct {
	KeyID string `json:"key_id"`
}

// GetWebhookVerificationKeyResponse is the response body for
// /webhook_verification_key/get. Key is the JWK used to verify webhook JWTs.
type GetWebhookVerificationKeyResponse struct {
	Key       map[string]string `json:"key"`
	RequestID string            `json:"request_id"`
}
