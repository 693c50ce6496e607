// Package catalog defines the shape of the third party chain catalog (the chainid.network
// chains.json format) and validates a pre-parsed snapshot of it.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedCatalog is returned when a catalog record is missing a required field.
var ErrMalformedCatalog = errors.New("malformed chain catalog")

// NativeCurrency describes the native token of a chain.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Chain is a single record of the catalog.
type Chain struct {
	ChainID        uint64         `json:"chainId" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	ShortName      string         `json:"shortName"`
	Title          string         `json:"title,omitempty"`
	Chain          string         `json:"chain"`
	Network        string         `json:"network,omitempty"`
	NetworkID      uint64         `json:"networkId"`
	NativeCurrency NativeCurrency `json:"nativeCurrency"`
	// RPC holds endpoint templates which may embed a credential placeholder.
	RPC     []string `json:"rpc"`
	InfoURL string   `json:"infoURL"`
	Faucets []string `json:"faucets"`
}

// Catalog is a validated, ordered catalog snapshot.
type Catalog struct {
	chains []Chain
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New validates records and wraps them into a Catalog. The records are kept in order and are not
// otherwise modified.
func New(records []Chain) (*Catalog, error) {
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d (chainId %d): %w", ErrMalformedCatalog, i, rec.ChainID, describe(err))
		}
	}

	return &Catalog{chains: records}, nil
}

// Parse decodes a chains.json document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var records []Chain
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	return New(records)
}

// LoadFile reads and parses the chains.json document at filePath.
func LoadFile(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Chains returns the catalog records in catalog order.
func (c *Catalog) Chains() []Chain {
	out := make([]Chain, len(c.chains))
	copy(out, c.chains)

	return out
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.chains)
}

// describe turns validator errors into a short message naming the failing fields.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("field %s failed %q", fe.Field(), fe.Tag()))
	}

	return errors.Join(errs...)
}
