package registry

import (
	"errors"
	"fmt"
)

// ErrDuplicateChainID is returned by Build when a chain ID is registered twice. It indicates
// corrupt or conflicting input and aborts construction.
var ErrDuplicateChainID = errors.New("duplicate chain id")

// ChainNotSupportedError is returned when a chain is not registered or is registered but not
// supported for verification.
type ChainNotSupportedError struct {
	ChainID string
}

func (e *ChainNotSupportedError) Error() string {
	return fmt.Sprintf("chain %s not supported for verification", e.ChainID)
}

// UnknownChainError is returned when a chain is not registered at all.
type UnknownChainError struct {
	ChainID string
}

func (e *UnknownChainError) Error() string {
	return fmt.Sprintf("chain %s is not a registered chain", e.ChainID)
}
