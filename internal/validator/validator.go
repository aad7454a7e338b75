package validator

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ai-website-builder/internal/domain"
)

// Request-level messages returned alongside per-field reasons.
const (
	MsgWebsiteRequired = "Name, description, and other details are required"
	MsgSuggestRequired = "Name and description are required"
	MsgSectionRequired = "Website ID and section are required"
	MsgUpdateRequired  = "Website ID, section name, and new content are required"
	MsgPublishRequired = "Website ID is required"
	MsgChatRequired    = "Website ID and message are required"
)

// maxSectionNameLength caps section names, which are also used as keys.
const maxSectionNameLength = 200

var validStatus = []interface{}{domain.WebsiteStatusDraft, domain.WebsiteStatusPublished}

// Validator provides validation methods for website requests and entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateWebsite validates a Website entity before it is first stored.
func (v *Validator) ValidateWebsite(w *domain.Website) error {
	err := validation.ValidateStruct(w,
		validation.Field(&w.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&w.Description,
			validation.Required.Error("description_required"),
		),
		validation.Field(&w.OtherDetails,
			validation.Required.Error("other_details_required"),
		),
		validation.Field(&w.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	)
	return toValidationError(MsgWebsiteRequired, err)
}

// ValidateSuggestRequest validates the inputs of a details suggestion.
func (v *Validator) ValidateSuggestRequest(name, description string) error {
	return toValidationError(MsgSuggestRequired, validation.Errors{
		"name":        validation.Validate(name, validation.Required.Error("name_required")),
		"description": validation.Validate(description, validation.Required.Error("description_required")),
	}.Filter())
}

// ValidateSectionRequest validates the inputs of a section generation.
func (v *Validator) ValidateSectionRequest(websiteID, sectionName string) error {
	return toValidationError(MsgSectionRequired, validation.Errors{
		"websiteId": validation.Validate(websiteID, validation.Required.Error("website_id_required")),
		"section":   validation.Validate(sectionName, sectionNameRules()...),
	}.Filter())
}

// ValidateUpdateRequest validates the inputs of a manual section edit.
func (v *Validator) ValidateUpdateRequest(websiteID, sectionName, content string) error {
	return toValidationError(MsgUpdateRequired, validation.Errors{
		"websiteId":   validation.Validate(websiteID, validation.Required.Error("website_id_required")),
		"sectionName": validation.Validate(sectionName, sectionNameRules()...),
		"newContent":  validation.Validate(content, validation.Required.Error("new_content_required")),
	}.Filter())
}

// ValidatePublishRequest validates the inputs of a publish.
func (v *Validator) ValidatePublishRequest(websiteID string) error {
	return toValidationError(MsgPublishRequired, validation.Errors{
		"websiteId": validation.Validate(websiteID, validation.Required.Error("website_id_required")),
	}.Filter())
}

// ValidateChatRequest validates the inputs of a chat message.
func (v *Validator) ValidateChatRequest(websiteID, message string) error {
	return toValidationError(MsgChatRequired, validation.Errors{
		"websiteId": validation.Validate(websiteID, validation.Required.Error("website_id_required")),
		"message":   validation.Validate(message, validation.Required.Error("message_required")),
	}.Filter())
}

func sectionNameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("section_name_required"),
		validation.RuneLength(1, maxSectionNameLength).Error("section_name_too_long"),
	}
}

// toValidationError converts ozzo validation errors to a domain ValidationError.
// Internal ozzo errors (misconfigured rules) are returned unchanged.
func toValidationError(message string, err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return domain.NewValidationError(message, fields)
}
