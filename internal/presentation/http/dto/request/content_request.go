package request

// SaveAftercareRequest represents a create or update aftercare request
type SaveAftercareRequest struct {
	Title       string   `json:"title" binding:"required"`
	Category    *string  `json:"category"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments"`
	Published   bool     `json:"published"`
}

// SaveConsentFormRequest represents a create or update consent form request
type SaveConsentFormRequest struct {
	Title             string `json:"title" binding:"required"`
	Body              string `json:"body"`
	RequiresSignature *bool  `json:"requires_signature"`
	Active            *bool  `json:"active"`
}

// SaveEducationTopicRequest represents a create or update education topic request
type SaveEducationTopicRequest struct {
	Title     string   `json:"title" binding:"required"`
	Category  *string  `json:"category"`
	Summary   *string  `json:"summary"`
	Body      string   `json:"body"`
	ImageURL  *string  `json:"image_url"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// DraftContentRequest represents an AI draft request
type DraftContentRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=aftercare education consent"`
	Treatment string `json:"treatment" binding:"required"`
	Notes     string `json:"notes"`
}
