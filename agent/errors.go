package agent

import (
	"errors"
	"fmt"

	"github.com/spetersoncode/nutriagent"
)

// ErrNoDataProvider is returned when Generate is called without a data capability.
var ErrNoDataProvider = errors.New("agent: no data provider")

// NotFoundError is returned when no agent is registered under an id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("agent not found: %s", e.ID)
}

// Kind returns nutriagent.KindNotFound.
func (e *NotFoundError) Kind() nutriagent.ErrorKind {
	return nutriagent.KindNotFound
}

// ErrAlreadyRegistered is returned when registering an agent under a taken id.
type ErrAlreadyRegistered struct {
	ID string
}

func (e *ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("agent: already registered: %s", e.ID)
}
