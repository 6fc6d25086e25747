package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Lead represents one customer inquiry submitted through the contact form.
// All fields are set at creation; a stored lead is never updated or deleted.
type Lead struct {
	Timestamp          time.Time `json:"timestamp" validate:"required"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email" validate:"omitempty,email"`
	Address            string    `json:"address"`
	JobType            string    `json:"job_type"`
	Description        string    `json:"description"`
	PhotoFilename      string    `json:"photo_filename"`
	ChatbotInteraction string    `json:"chatbot_interaction"`
	LeadScore          int       `json:"lead_score" validate:"min=0,max=10"`
}

// LeadForm holds the raw contact-form fields before scoring and assessment.
// Every field is optional free text; the handler trims whitespace.
type LeadForm struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
