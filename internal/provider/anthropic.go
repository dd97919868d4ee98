package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// NewAnthropicClient returns a Messages API client. The key is passed through
// unchecked; an empty key fails on the first request.
func NewAnthropicClient(apiKey string, opts ...option.RequestOption) *anthropic.Client {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	c := anthropic.NewClient(opts...)
	return &c
}

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest
