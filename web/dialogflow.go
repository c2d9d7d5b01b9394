package web

// WebhookRequest is the envelope the dialogue platform posts to the webhook.
// Parameters is a schemaless bag: its shape depends on the agent revision,
// so it is walked dynamically in params.go.
type WebhookRequest struct {
	Session     string `json:"session"`
	QueryResult struct {
		QueryText string `json:"queryText"`
		Intent    struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters map[string]any `json:"parameters"`
	} `json:"queryResult"`
}

// WebhookResponse is always returned with HTTP 200; errors become text.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
