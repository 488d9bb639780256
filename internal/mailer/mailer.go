// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/goaltrack/goaltrack/internal/errors"
)

// Mailer is the outbound email surface used by the notification service.
type Mailer interface {
	Send(to, subject, html string) error
}

type ResendClient struct {
	baseUrl    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewResendClient(apiKey, from string) *ResendClient {
	return &ResendClient{
		baseUrl:    "https://api.resend.com",
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

type sendResponse struct {
	Id string `json:"id"`
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *ResendClient) Send(to, subject, html string) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("marshal send request (resend): %w", err)
	}

	req, err := http.NewRequest("POST", c.baseUrl+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request (resend): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.EmailSendError{To: to, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		var resendErr resendError
		if err := json.Unmarshal(errorBody, &resendErr); err == nil && resendErr.Message != "" {
			return &apperrors.EmailSendError{To: to, Err: fmt.Errorf("resend error: %s", resendErr.Message)}
		}
		return &apperrors.EmailSendError{To: to, Err: fmt.Errorf("resend error status: %d", resp.StatusCode)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body (resend): %w", err)
	}

	var sendResp sendResponse
	if err := json.Unmarshal(respBody, &sendResp); err != nil {
		return fmt.Errorf("parse send response (resend): %w", err)
	}
	return nil
}
