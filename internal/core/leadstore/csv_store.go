// Package leadstore persists submitted leads as rows of a CSV file. The
// log is append-only: rows are never updated, deleted, or queried back.
package leadstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/apexridge/roofline/internal/core"
	"github.com/apexridge/roofline/internal/models"
)

// header is the fixed column order of the lead log. Changing it would
// corrupt existing files.
var header = []string{
	"timestamp",
	"name",
	"phone",
	"email",
	"address",
	"job_type",
	"description",
	"photo_filename",
	"chatbot_interaction",
	"lead_score",
}

type CSVStore struct {
	path string
}

// NewCSVStore creates the store and writes the header row if the file does
// not exist yet.
func NewCSVStore(path string) (*CSVStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create leads dir: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create leads file: %w", err)
		}
		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write leads header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("write leads header: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
	}

	return &CSVStore{path: path}, nil
}

// Append writes one lead as a new row. Repeated calls with the same lead
// write duplicate rows; there is no dedup.
func (s *CSVStore) Append(lead *models.Lead) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open leads file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		lead.Timestamp.Format(time.RFC3339),
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Address,
		lead.JobType,
		lead.Description,
		lead.PhotoFilename,
		lead.ChatbotInteraction,
		strconv.Itoa(lead.LeadScore),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append lead: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append lead: %w", err)
	}
	return nil
}

var _ core.LeadStore = (*CSVStore)(nil)
