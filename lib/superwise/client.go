package superwise

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

var (
	// ErrUpstreamUnavailable covers transport failures and HTTP-level errors
	// from the agent endpoint
	ErrUpstreamUnavailable = errors.New("superwise agent unavailable")
	// ErrUpstreamProtocol covers responses that are not valid JSON
	ErrUpstreamProtocol = errors.New("unexpected superwise agent response")
)

// Client talks to a Superwise app-worker agent. Responses are relayed
// verbatim; there is no retry and no caching.
type Client struct {
	baseURL    string
	agentID    string
	httpClient *http.Client
}

// NewClient creates a client for the given app-worker base URL and agent id
func NewClient(baseURL, agentID string) *Client {
	return &Client{
		baseURL:    baseURL,
		agentID:    agentID,
		httpClient: http.DefaultClient,
	}
}

// askRequest is the agent's ask payload
type askRequest struct {
	Input       string        `json:"input"`
	ChatHistory []interface{} `json:"chat_history"`
}

// Ask sends a prompt to the agent and returns the decoded JSON body as-is
func (c *Client) Ask(input string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/v1/ask", c.baseURL, c.agentID)

	payload, err := json.Marshal(askRequest{Input: input, ChatHistory: []interface{}{}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamProtocol, err)
	}

	log.Printf("POST %s", url)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: agent returned status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamProtocol, err)
	}

	return body, nil
}

// TestPlanPrompt builds the fixed prompt asking the agent for a test plan
func TestPlanPrompt(projectName string) string {
	return "create test case plan for " + projectName +
		". Please do not include any test cases. " +
		"Please do not provide any data in tables format."
}

// TestCasesPrompt builds the fixed prompt asking the agent for test cases
func TestCasesPrompt(projectName string) string {
	return "create test cases for " + projectName +
		". The response must be in json form and should have the fields " +
		"Test Case Name, Description, Priority, Browsers, " +
		"Environment, Test Steps. " +
		"The json format should be aligned for all records so it can easily " +
		"render on UI tables."
}
