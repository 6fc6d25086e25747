package handlers

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/models"
	"github.com/apexridge/roofline/internal/services"
)

const maxUploadBytes = 16 << 20 // 16 MB

type LeadHandler struct {
	leads *services.LeadService
	log   zerolog.Logger
}

func NewLeadHandler(leads *services.LeadService, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{leads: leads, log: log}
}

// SubmitLead handles the contact-form submission, including the optional
// photo upload.
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})
		return
	}

	form := &models.LeadForm{
		Name:        r.FormValue("name"),
		Phone:       r.FormValue("phone"),
		Email:       r.FormValue("email"),
		Address:     r.FormValue("address"),
		JobType:     r.FormValue("job_type"),
		Description: r.FormValue("description"),
	}

	var photo *services.Photo
	if file, header, err := r.FormFile("photo"); err == nil && header.Filename != "" {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid photo"})
			return
		}
		photo = &services.Photo{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	if _, err := h.leads.Submit(r.Context(), form, photo); err != nil {
		h.log.Error().Err(err).Msg("lead submission failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to process submission"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thank you! We'll contact you soon.",
	})
}
