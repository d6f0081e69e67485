package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CloudClient talks to the external vision endpoint that does full-image
// identification server-side. The core only consumes its
// {success, employee, distance} shape.
type CloudClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewCloudClient(baseURL string, timeout time.Duration) *CloudClient {
	if baseURL == "" {
		return nil
	}
	return &CloudClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type cloudResponse struct {
	Success  bool        `json:"success"`
	Employee *Enrollment `json:"employee"`
	Distance float64     `json:"distance"`
	Error    string      `json:"error"`
}

func (c *CloudClient) Identify(ctx context.Context, imageBase64 string) (MatchResult, error) {
	payload := map[string]any{
		"action": "identifyFace",
		"data":   map[string]string{"image": imageBase64},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return MatchResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return MatchResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return MatchResult{}, fmt.Errorf("cloud recognition call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return MatchResult{}, fmt.Errorf("cloud recognition returned status %d", resp.StatusCode)
	}

	var decoded cloudResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return MatchResult{}, fmt.Errorf("decode cloud response: %w", err)
	}
	if !decoded.Success || decoded.Employee == nil {
		return MatchResult{Matched: false, Distance: decoded.Distance}, nil
	}
	return MatchResult{Matched: true, Employee: decoded.Employee, Distance: decoded.Distance}, nil
}
