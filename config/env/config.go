// Package env loads the environment configuration of the registry: deployment mode, provider
// credentials and operator node URLs.
package env

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ModeProduction is the NODE_ENV value which marks a production deployment.
const ModeProduction = "production"

// nodeURLEnvPrefix prefixes the per subnetwork operator node URL variables, e.g.
// NODE_URL_MAINNET or NODE_URL_SEPOLIA.
const nodeURLEnvPrefix = "NODE_URL_"

// AlchemyConfig holds the Alchemy API keys. The family specific keys fall back to ID when unset.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type AlchemyConfig struct {
	ID         string `mapstructure:"id" yaml:"id"`                   // Secret: default Alchemy API key
	OptimismID string `mapstructure:"optimism_id" yaml:"optimism_id"` // Secret: Alchemy API key for Optimism networks
	ArbitrumID string `mapstructure:"arbitrum_id" yaml:"arbitrum_id"` // Secret: Alchemy API key for Arbitrum networks
}

// InfuraConfig holds the Infura project ID substituted into catalog RPC templates.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type InfuraConfig struct {
	ID string `mapstructure:"id" yaml:"id"` // Secret: Infura project ID
}

// EtherscanConfig holds the Etherscan API key appended to creator transaction API URLs.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type EtherscanConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"` // Secret: Etherscan API key
}

// CFAccessConfig holds the Cloudflare Access service token sent to operator owned nodes.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type CFAccessConfig struct {
	ClientID     string `mapstructure:"client_id" yaml:"client_id"`         // Secret: CF-Access-Client-Id header value
	ClientSecret string `mapstructure:"client_secret" yaml:"client_secret"` // Secret: CF-Access-Client-Secret header value
}

// Config is the environment supplied configuration used while building the registry. It is
// resolved once and passed explicitly to the components which need it.
type Config struct {
	NodeEnv   string          `mapstructure:"node_env" yaml:"node_env"`
	Alchemy   AlchemyConfig   `mapstructure:"alchemy" yaml:"alchemy"`
	Infura    InfuraConfig    `mapstructure:"infura" yaml:"infura"`
	CFAccess  CFAccessConfig  `mapstructure:"cf_access" yaml:"cf_access"`
	Etherscan EtherscanConfig `mapstructure:"etherscan" yaml:"etherscan"`
	// NodeURLs maps a lower cased subnetwork name to the URL of the operator owned node serving it.
	NodeURLs map[string]string `mapstructure:"node_urls" yaml:"node_urls"`
}

// IsProduction reports whether the process runs as a production deployment.
func (c *Config) IsProduction() bool {
	return c.NodeEnv == ModeProduction
}

// NodeURL returns the operator node URL configured for the subnetwork.
func (c *Config) NodeURL(subnetwork string) (string, bool) {
	url, ok := c.NodeURLs[strings.ToLower(subnetwork)]
	if !ok || url == "" {
		return "", false
	}

	return url, true
}

// NodeURLEnvVar returns the name of the environment variable holding the node URL of the
// subnetwork.
func NodeURLEnvVar(subnetwork string) string {
	return nodeURLEnvPrefix + strings.ToUpper(subnetwork)
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return unmarshal(v)
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.NodeURLs == nil {
		cfg.NodeURLs = make(map[string]string)
	}
	for sub, url := range nodeURLsFromEnv(os.Environ()) {
		cfg.NodeURLs[sub] = url
	}

	return cfg, nil
}

// nodeURLsFromEnv collects the NODE_URL_<SUBNETWORK> variables out of environ.
func nodeURLsFromEnv(environ []string) map[string]string {
	urls := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}

		sub, found := strings.CutPrefix(key, nodeURLEnvPrefix)
		if !found || sub == "" {
			continue
		}

		urls[strings.ToLower(sub)] = value
	}

	return urls
}

var (
	// envBindings maps config keys to the environment variables that can provide their value.
	// The first listed variable is preferred, later ones are accepted for compatibility with
	// existing deployments.
	envBindings = map[string][]string{
		"node_env":                {"NODE_ENV"},
		"alchemy.id":              {"ALCHEMY_ID"},
		"alchemy.optimism_id":     {"ALCHEMY_ID_OPTIMISM"},
		"alchemy.arbitrum_id":     {"ALCHEMY_ID_ARBITRUM"},
		"infura.id":               {"INFURA_ID", "INFURA_API_KEY"},
		"cf_access.client_id":     {"CF_ACCESS_CLIENT_ID"},
		"cf_access.client_secret": {"CF_ACCESS_CLIENT_SECRET"},
		"etherscan.api_key":       {"ETHERSCAN_API_KEY"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
