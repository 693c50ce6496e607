package registry

import "strconv"

// UnspecifiedChainID is accepted by CheckKnownChainID for requests which are not bound to a chain.
const UnspecifiedChainID = "0"

// CheckSupportedChainID checks that the chain is registered and supported for verification.
// Registered chains that are no longer supported fail this check but pass CheckKnownChainID.
func (r *Registry) CheckSupportedChainID(chainID string) (bool, error) {
	id, ok := ParseChainID(chainID)
	if !ok {
		return false, &ChainNotSupportedError{ChainID: chainID}
	}

	if _, ok := r.supported[id]; !ok {
		return false, &ChainNotSupportedError{ChainID: chainID}
	}

	return true, nil
}

// CheckKnownChainID checks that the chain is registered, whether supported or not. The
// UnspecifiedChainID sentinel is always accepted.
func (r *Registry) CheckKnownChainID(chainID string) (bool, error) {
	if chainID == UnspecifiedChainID {
		return true, nil
	}

	id, ok := ParseChainID(chainID)
	if !ok {
		return false, &UnknownChainError{ChainID: chainID}
	}

	if _, ok := r.all[id]; !ok {
		return false, &UnknownChainError{ChainID: chainID}
	}

	return true, nil
}

// ParseChainID parses a chain ID in canonical decimal form. Leading zeros, signs and anything
// else that does not format back to the same string are rejected.
func ParseChainID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || strconv.FormatUint(id, 10) != s {
		return 0, false
	}

	return id, true
}
