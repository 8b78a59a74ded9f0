package agent

import (
	"context"

	"github.com/spetersoncode/nutriagent"
)

// Passthrough returns a Generator that calls the data capability directly
// without consulting a model. It serves deployments with no LLM configured.
func Passthrough() Generator {
	return passthrough{}
}

type passthrough struct{}

func (passthrough) Generate(ctx context.Context, _ []nutriagent.Message, fetch DataProvider) (*Result, error) {
	if fetch == nil {
		return nil, ErrNoDataProvider
	}
	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{Text: value, Termination: TerminationComplete}, nil
}
