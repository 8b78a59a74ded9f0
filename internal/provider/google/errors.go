package google

import (
	"errors"

	"github.com/spetersoncode/nutriagent"
	"google.golang.org/genai"
)

// wrapError attaches the provider and, for API errors, the HTTP status.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	apiErr := &nutriagent.APIError{Provider: nutriagent.ProviderGoogle, Err: err}
	var sdkErr genai.APIError
	if errors.As(err, &sdkErr) {
		apiErr.StatusCode = sdkErr.Code
	}
	return apiErr
}
