package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/nutriagent"
)

// wrapError attaches the provider and, for API errors, the HTTP status.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	apiErr := &nutriagent.APIError{Provider: nutriagent.ProviderAnthropic, Err: err}
	var sdkErr *anthropic.Error
	if errors.As(err, &sdkErr) {
		apiErr.StatusCode = sdkErr.StatusCode
	}
	return apiErr
}
