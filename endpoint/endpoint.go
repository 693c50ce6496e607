package endpoint

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// Endpoint is a resolved RPC access point for a chain. Credentials needed by operator owned nodes
// travel in Headers and are applied by the caller when the request is made, instead of being
// embedded in the URL.
type Endpoint struct {
	URL string `json:"url" yaml:"url"`
	// Headers are sensitive and never serialized.
	Headers map[string]string `json:"-" yaml:"-"`
}

// Authenticated reports whether the endpoint carries request headers.
func (e Endpoint) Authenticated() bool {
	return len(e.Headers) > 0
}

// HTTPHeader returns the endpoint headers as an http.Header.
func (e Endpoint) HTTPHeader() http.Header {
	h := make(http.Header, len(e.Headers))
	for k, v := range e.Headers {
		h.Set(k, v)
	}

	return h
}

// ClientOptions returns the go-ethereum RPC client options needed to talk to the endpoint, e.g.
//
//	client, err := rpc.DialOptions(ctx, ep.URL, ep.ClientOptions()...)
func (e Endpoint) ClientOptions() []rpc.ClientOption {
	if !e.Authenticated() {
		return nil
	}

	return []rpc.ClientOption{rpc.WithHeaders(e.HTTPHeader())}
}

// Redacted returns the URL with API keys masked, suitable for logs and CLI output. Keys are
// expected as the path segment following a "v2" or "v3" version segment, which is how Alchemy and
// Infura URLs carry them.
func (e Endpoint) Redacted() string {
	u, err := url.Parse(e.URL)
	if err != nil {
		return "<invalid url>"
	}

	segments := strings.Split(u.Path, "/")
	for i := 0; i < len(segments)-1; i++ {
		if (segments[i] == "v2" || segments[i] == "v3") && segments[i+1] != "" {
			segments[i+1] = "***"
		}
	}
	u.Path = strings.Join(segments, "/")
	u.RawPath = ""
	u.User = nil

	return u.String()
}
