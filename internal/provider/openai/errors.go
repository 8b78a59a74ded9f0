package openai

import (
	"errors"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/nutriagent"
)

// wrapError attaches the provider and, for API errors, the HTTP status.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	apiErr := &nutriagent.APIError{Provider: nutriagent.ProviderOpenAI, Err: err}
	var sdkErr *openai.Error
	if errors.As(err, &sdkErr) {
		apiErr.StatusCode = sdkErr.StatusCode
	}
	return apiErr
}
