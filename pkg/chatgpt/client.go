package chatgpt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// FallbackReply is returned when the API answers with a well-formed but
// empty choices array. An empty completion is a policy case, not an
// error.
const FallbackReply = "I don't have an answer for that."

// parseFailure is the fixed reason carried by every ParseError from
// Complete. The raw body goes to the logger, not into the error.
const parseFailure = "Error parsing the API response"

// Client issues chat completion requests against an OpenAI-compatible
// endpoint. Construct it once and share it; it is safe for sequential
// reuse and holds the only HTTP handle in the program.
type Client struct {
	apiKey  string
	apiURL  string
	http    *http.Client
	logger  Logger
	verbose bool
}

// NewClient creates a completion client from cfg. Zero-value fields
// fall back to package defaults.
func NewClient(cfg Config) *Client {
	cfg = Normalize(cfg)
	return &Client{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.APIURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger,
		verbose: cfg.Verbose,
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type choice struct {
	Message Message `json:"message"`
}

// Choices is a pointer so a body without a choices field is
// distinguishable from one with an empty array.
type completionResponse struct {
	Choices *[]choice `json:"choices"`
}

// Complete sends the full transcript in one POST and returns the first
// choice of the response. The transcript is only read, never mutated.
//
// Failure modes: a *TransportError for anything below the protocol, a
// *ParseError when the body does not carry a choices array. Status
// codes are not checked separately; an HTTP error body has no choices
// array and surfaces as a parse failure with the raw body logged.
func (c *Client) Complete(ctx context.Context, model string, messages []Message) (Message, error) {
	payload, err := json.Marshal(completionRequest{Model: model, Messages: messages})
	if err != nil {
		return Message{}, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return Message{}, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	debug(c.verbose, c.logger, "sending completion request", map[string]any{
		"model":    model,
		"messages": len(messages),
	})

	resp, err := c.http.Do(req)
	if err != nil {
		return Message{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Message{}, &TransportError{Err: err}
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Choices == nil {
		if c.logger != nil {
			c.logger.Error("raw response", string(body))
		}
		return Message{}, &ParseError{Reason: parseFailure}
	}

	choices := *parsed.Choices
	if len(choices) == 0 {
		debug(c.verbose, c.logger, "completion returned no choices, using fallback", nil)
		return Message{Role: RoleAssistant, Content: FallbackReply}, nil
	}

	debug(c.verbose, c.logger, "completion received", map[string]any{
		"choices": len(choices),
	})
	return choices[0].Message, nil
}
