// Package openai calls a chat-completion endpoint to produce maintenance advice.
package openai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
)

type Config struct {
	Host        string
	BasePath    string
	Scheme      string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client implements ports.Recommender.
type Client struct {
	transport *httptransport.Runtime
	auth      runtime.ClientAuthInfoWriter
	scheme    string
	cfg       Config
}

func New(cfg Config) *Client {
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "https"
	}
	transport := httptransport.New(cfg.Host, cfg.BasePath, []string{scheme})
	if cfg.Timeout > 0 {
		transport.Transport = &http.Transport{ResponseHeaderTimeout: cfg.Timeout}
	}
	return &Client{
		transport: transport,
		auth:      httptransport.BearerToken(cfg.APIKey),
		scheme:    scheme,
		cfg:       cfg,
	}
}

// Recommend sends prompt as a single user message and returns the first choice.
// Non-2xx responses come back as openapi errors carrying the upstream status.
func (c *Client) Recommend(ctx context.Context, prompt string) (string, error) {
	body := &ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	result, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 "createChatCompletion",
		Method:             http.MethodPost,
		PathPattern:        "/chat/completions",
		ProducesMediaTypes: []string{"application/json"},
		ConsumesMediaTypes: []string{"application/json"},
		Schemes:            []string{c.scheme},
		Params: runtime.ClientRequestWriterFunc(func(req runtime.ClientRequest, _ strfmt.Registry) error {
			return req.SetBodyParam(body)
		}),
		Reader:   runtime.ClientResponseReaderFunc(readResponse),
		AuthInfo: c.auth,
		Context:  ctx,
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func readResponse(resp runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
	if resp.Code() < 200 || resp.Code() > 299 {
		msg := resp.Message()
		var apiErr apiError
		if err := consumer.Consume(resp.Body(), &apiErr); err == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return nil, openapierrors.New(int32(resp.Code()), "API Error: %d - %s", resp.Code(), msg)
	}

	var out ChatCompletionResponse
	if err := consumer.Consume(resp.Body(), &out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, openapierrors.New(http.StatusBadGateway, "API Error: response has no choices")
	}
	return out.Choices[0].Message.Content, nil
}
