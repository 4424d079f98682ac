package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saent-x/tors-x.dev/pkg/config"
)

// ContactMessage is the payload accepted from the contact form.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SendContactMessage forwards a message to the hosted form-submission
// endpoint configured via FORM_ENDPOINT.
func SendContactMessage(msg ContactMessage) error {
	if config.FormEndpoint == "" {
		return fmt.Errorf("form endpoint not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}

	client := &http.Client{Timeout: config.FormTimeout}
	resp, err := client.Post(config.FormEndpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("submit contact message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("form endpoint returned %s", resp.Status)
	}
	return nil
}
