// Package endpoint resolves the ordered RPC endpoint list of a chain from provider credentials,
// operator owned nodes and catalog URL templates.
//
// Resolution is best effort: a missing provider credential or node URL is logged as a warning and
// the affected provider endpoint is left out. Catalog templates are always kept. Resolving never
// fails.
package endpoint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smartcontractkit/chain-registry/config/env"
	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

var (
	// ErrMissingCredential is logged when a provider credential is not configured.
	ErrMissingCredential = errors.New("provider credential not set")
	// ErrMissingNodeURL is logged when an operator node is requested but its URL is not configured.
	ErrMissingNodeURL = errors.New("operator node url not set")
)

const (
	alchemyDomain = "g.alchemy.com"

	headerContentType    = "Content-Type"
	headerCFClientID     = "CF-Access-Client-Id"
	headerCFClientSecret = "CF-Access-Client-Secret"
)

// infuraPlaceholders are the forms the Infura key placeholder takes in catalog and extension
// templates. The "${...}" form must be replaced first.
var infuraPlaceholders = []string{"${INFURA_API_KEY}", "{INFURA_API_KEY}"}

// Resolver builds endpoint lists from the environment configuration.
type Resolver struct {
	cfg  *env.Config
	lggr logger.Logger
}

// NewResolver returns a Resolver reading credentials from cfg and reporting missing configuration
// to lggr.
func NewResolver(cfg *env.Config, lggr logger.Logger) *Resolver {
	if cfg == nil {
		cfg = &env.Config{}
	}
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Resolver{cfg: cfg, lggr: lggr.Named("endpoint")}
}

// Resolve expands sources into endpoints, preserving order.
func (r *Resolver) Resolve(sources []Source) []Endpoint {
	endpoints := make([]Endpoint, 0, len(sources))
	for _, src := range sources {
		if src.Provider != "" {
			endpoints = append(endpoints, r.Provider(src.Subnetwork, src.Family, src.OwnNode)...)
			continue
		}

		if ep, ok := r.Template(src.URL); ok {
			endpoints = append(endpoints, ep)
		}
	}

	return endpoints
}

// Provider returns, in priority order, the operator node endpoint of the subnetwork (only when
// ownNode is set and its URL is configured) and the Alchemy endpoint for the family (only when a
// key is configured).
func (r *Resolver) Provider(subnetwork string, family Family, ownNode bool) []Endpoint {
	var endpoints []Endpoint

	if ownNode {
		if ep, ok := r.ownNode(subnetwork); ok {
			endpoints = append(endpoints, ep)
		}
	}

	key := r.alchemyKey(family)
	if key == "" {
		r.lggr.Warnw("Alchemy key not set, skipping provider endpoint",
			"error", ErrMissingCredential,
			"family", family,
			"subnetwork", subnetwork,
		)

		return endpoints
	}

	return append(endpoints, Endpoint{
		URL: fmt.Sprintf("https://%s-%s.%s/v2/%s", family, subnetwork, alchemyDomain, key),
	})
}

// Templates resolves each catalog template. Every non-empty template is kept, in order.
func (r *Resolver) Templates(templates []string) []Endpoint {
	endpoints := make([]Endpoint, 0, len(templates))
	for _, tmpl := range templates {
		if ep, ok := r.Template(tmpl); ok {
			endpoints = append(endpoints, ep)
		}
	}

	return endpoints
}

// Template substitutes the Infura key into tmpl. When the key is not configured the template is
// kept as is and a warning is logged. Other placeholders are left untouched. It reports false
// only for an empty template.
func (r *Resolver) Template(tmpl string) (Endpoint, bool) {
	if tmpl == "" {
		return Endpoint{}, false
	}

	key := r.cfg.Infura.ID
	for _, p := range infuraPlaceholders {
		if !strings.Contains(tmpl, p) {
			continue
		}

		if key == "" {
			r.lggr.Warnw("Infura key not set, keeping templated endpoint unresolved",
				"error", ErrMissingCredential,
				"template", tmpl,
			)

			return Endpoint{URL: tmpl}, true
		}

		tmpl = strings.ReplaceAll(tmpl, p, key)
	}

	return Endpoint{URL: tmpl}, true
}

func (r *Resolver) ownNode(subnetwork string) (Endpoint, bool) {
	url, ok := r.cfg.NodeURL(subnetwork)
	if !ok {
		r.lggr.Warnw("Operator node URL not set, skipping own node endpoint",
			"error", fmt.Errorf("%w: %s", ErrMissingNodeURL, env.NodeURLEnvVar(subnetwork)),
			"subnetwork", subnetwork,
		)

		return Endpoint{}, false
	}

	headers := map[string]string{headerContentType: "application/json"}
	if id := r.cfg.CFAccess.ClientID; id != "" {
		headers[headerCFClientID] = id
	}
	if secret := r.cfg.CFAccess.ClientSecret; secret != "" {
		headers[headerCFClientSecret] = secret
	}

	return Endpoint{URL: url, Headers: headers}, true
}

// alchemyKey selects the Alchemy key for the family. Optimism and Arbitrum have their own keys
// and fall back to the default one.
func (r *Resolver) alchemyKey(family Family) string {
	var key string
	switch family {
	case FamilyOptimism:
		key = r.cfg.Alchemy.OptimismID
	case FamilyArbitrum:
		key = r.cfg.Alchemy.ArbitrumID
	}
	if key == "" {
		key = r.cfg.Alchemy.ID
	}

	return key
}
