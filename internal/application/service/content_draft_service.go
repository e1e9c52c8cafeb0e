package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chc-hub/api/pkg/apperror"
	"github.com/chc-hub/api/pkg/llm"
)

// ContentDrafter is the completion client the draft service writes through
type ContentDrafter interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// ContentDraftService generates first drafts of patient-facing content.
// Drafts are returned to the editor for review; nothing is published
// without a human save.
type ContentDraftService struct {
	client ContentDrafter
}

// NewContentDraftService creates a new content draft service
func NewContentDraftService(client ContentDrafter) *ContentDraftService {
	return &ContentDraftService{client: client}
}

// DraftInput represents the draft request
type DraftInput struct {
	// Kind is one of "aftercare", "education", "consent"
	Kind      string
	Treatment string
	Notes     string
}

var draftPrompts = map[string]string{
	"aftercare": "You write post-treatment aftercare instructions for a medical aesthetics clinic. " +
		"Write clear, reassuring, step-by-step instructions a patient can follow at home. " +
		"Use short paragraphs and bulleted lists. Include when to contact the clinic. " +
		"Output clean HTML using only p, ul, ol, li, strong and h3 tags.",
	"education": "You write patient education articles for a medical aesthetics clinic. " +
		"Explain the treatment, who it suits, what to expect and typical results in plain language. " +
		"Avoid medical jargon and avoid making guarantees. " +
		"Output clean HTML using only p, ul, ol, li, strong and h3 tags.",
	"consent": "You draft informed consent documents for a medical aesthetics clinic. " +
		"Cover the nature of the procedure, expected benefits, material risks and alternatives. " +
		"Use neutral, precise language. This is a draft for clinical review, not legal advice. " +
		"Output clean HTML using only p, ul, ol, li, strong and h3 tags.",
}

// Draft generates a content draft for the given treatment
func (s *ContentDraftService) Draft(ctx context.Context, input *DraftInput) (string, error) {
	if input.Treatment == "" {
		return "", apperror.NewValidationError([]apperror.FieldError{
			{Field: "treatment", Message: "Treatment is required"},
		})
	}

	systemPrompt, ok := draftPrompts[input.Kind]
	if !ok {
		return "", apperror.NewBadRequestError("Unknown draft kind")
	}

	userPrompt := fmt.Sprintf("Treatment: %s", input.Treatment)
	if input.Notes != "" {
		userPrompt += fmt.Sprintf("\nAdditional guidance from the clinician: %s", input.Notes)
	}

	draft, err := s.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return "", apperror.NewAppError(http.StatusBadGateway, "Draft generation failed: "+err.Error())
	}

	return draft, nil
}
