// Package advisory wraps the external text-generation endpoint that produces
// leave-availability hints. Verdicts are advisory only: the first token class
// (CONFIRMED/WARNING/ERROR) is the single machine-readable signal, the rest
// is human-readable rationale.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Verdict string

const (
	VerdictConfirmed Verdict = "CONFIRMED"
	VerdictWarning   Verdict = "WARNING"
	VerdictError     Verdict = "ERROR"
	VerdictUnknown   Verdict = ""
)

// Advisory is a classified verdict. Message keeps the full response text,
// prefix included.
type Advisory struct {
	Verdict Verdict `json:"verdict"`
	Message string  `json:"message"`
}

// Classify maps a raw response onto a verdict by its prefix. Anything without
// a recognized prefix classifies as unknown and is treated as "no advisory".
func Classify(text string) Advisory {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "CONFIRMED:"):
		return Advisory{Verdict: VerdictConfirmed, Message: trimmed}
	case strings.HasPrefix(trimmed, "WARNING:"):
		return Advisory{Verdict: VerdictWarning, Message: trimmed}
	case strings.HasPrefix(trimmed, "ERROR:"):
		return Advisory{Verdict: VerdictError, Message: trimmed}
	default:
		return Advisory{Verdict: VerdictUnknown, Message: trimmed}
	}
}

// LeaveQuery carries everything the endpoint needs to judge a request.
type LeaveQuery struct {
	EmployeeName string
	Vacation     int
	Sick         int
	Personal     int
	LeaveType    string
	StartDate    string
	EndDate      string
}

var (
	ErrUnavailable = errors.New("advisory service unavailable")
	ErrDisabled    = errors.New("advisory service disabled")
)

// Client is the outbound boundary; tests substitute a stub.
type Client interface {
	CheckLeaveAvailability(ctx context.Context, q LeaveQuery) (Advisory, error)
	Generate(ctx context.Context, prompt string) (string, error)
}

// APIError reports a non-2xx response from the endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("advisory API error [%d]: %s", e.StatusCode, e.Message)
}

// HTTPClient talks to a generateContent-style text endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	hc      *http.Client
}

func NewHTTPClient(baseURL, apiKey, model string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		hc:      &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *HTTPClient) CheckLeaveAvailability(ctx context.Context, q LeaveQuery) (Advisory, error) {
	prompt := fmt.Sprintf(
		"You are an HR assistant. %s is requesting %s leave from %s to %s. "+
			"Their current balances are: %d vacation days, %d sick days, %d personal days. "+
			"Reply with a single short verdict line that starts with exactly one of "+
			"\"CONFIRMED:\", \"WARNING:\" or \"ERROR:\" followed by a brief reason. "+
			"Use ERROR: only when the balance cannot cover the request.",
		q.EmployeeName, q.LeaveType, q.StartDate, q.EndDate,
		q.Vacation, q.Sick, q.Personal,
	)

	text, err := c.Generate(ctx, prompt)
	if err != nil {
		return Advisory{}, err
	}
	return Classify(text), nil
}

func (c *HTTPClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode advisory request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: malformed response", ErrUnavailable)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// Disabled satisfies Client when no API key is configured. Every call reports
// ErrDisabled, which callers degrade to "no advisory shown".
type Disabled struct{}

func (Disabled) CheckLeaveAvailability(ctx context.Context, q LeaveQuery) (Advisory, error) {
	return Advisory{}, ErrDisabled
}

func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrDisabled
}
