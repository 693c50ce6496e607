package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	// fileCfg is written to a temporary YAML file by the tests.
	fileCfg = &Config{
		NodeEnv: "development",
		Alchemy: AlchemyConfig{
			ID:         "alchemy-file",
			OptimismID: "alchemy-opt-file",
		},
		Infura: InfuraConfig{ID: "infura-file"},
		CFAccess: CFAccessConfig{
			ClientID:     "cf-id-file",
			ClientSecret: "cf-secret-file",
		},
		Etherscan: EtherscanConfig{APIKey: "etherscan-file"},
		NodeURLs: map[string]string{
			"mainnet": "https://node.file/mainnet",
			"goerli":  "https://node.file/goerli",
		},
	}

	envVars = map[string]string{
		"NODE_ENV":                "production",
		"ALCHEMY_ID":              "alchemy-env",
		"ALCHEMY_ID_ARBITRUM":     "alchemy-arb-env",
		"INFURA_ID":               "infura-env",
		"CF_ACCESS_CLIENT_ID":     "cf-id-env",
		"CF_ACCESS_CLIENT_SECRET": "cf-secret-env",
		"ETHERSCAN_API_KEY":       "etherscan-env",
		"NODE_URL_MAINNET":        "https://node.env/mainnet",
		"NODE_URL_SEPOLIA":        "https://node.env/sepolia",
	}
)

func writeConfigFile(t *testing.T, cfg *Config) string {
	t.Helper()

	b, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	fp := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fp, b, 0o600))

	return fp
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()

	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func Test_Load_FileOnly(t *testing.T) {
	for k := range envVars {
		t.Setenv(k, "")
	}

	got, err := Load(writeConfigFile(t, fileCfg))
	require.NoError(t, err)

	assert.Equal(t, fileCfg.NodeEnv, got.NodeEnv)
	assert.Equal(t, fileCfg.Alchemy, got.Alchemy)
	assert.Equal(t, fileCfg.Infura, got.Infura)
	assert.Equal(t, fileCfg.CFAccess, got.CFAccess)
	assert.Equal(t, fileCfg.Etherscan, got.Etherscan)
	assert.Equal(t, "https://node.file/mainnet", got.NodeURLs["mainnet"])
	assert.Equal(t, "https://node.file/goerli", got.NodeURLs["goerli"])
	assert.False(t, got.IsProduction())
}

func Test_Load_EnvOverridesFile(t *testing.T) {
	setEnvVars(t, envVars)

	got, err := Load(writeConfigFile(t, fileCfg))
	require.NoError(t, err)

	assert.True(t, got.IsProduction())
	assert.Equal(t, AlchemyConfig{
		ID:         "alchemy-env",
		OptimismID: "alchemy-opt-file",
		ArbitrumID: "alchemy-arb-env",
	}, got.Alchemy)
	assert.Equal(t, "infura-env", got.Infura.ID)
	assert.Equal(t, CFAccessConfig{ClientID: "cf-id-env", ClientSecret: "cf-secret-env"}, got.CFAccess)
	assert.Equal(t, "etherscan-env", got.Etherscan.APIKey)
	assert.Equal(t, "https://node.env/mainnet", got.NodeURLs["mainnet"])
	assert.Equal(t, "https://node.file/goerli", got.NodeURLs["goerli"])
	assert.Equal(t, "https://node.env/sepolia", got.NodeURLs["sepolia"])
}

func Test_Load_MissingFileFallsBackToEnv(t *testing.T) {
	setEnvVars(t, envVars)

	got, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "alchemy-env", got.Alchemy.ID)
	assert.Equal(t, "https://node.env/sepolia", got.NodeURLs["sepolia"])
}

func Test_LoadEnv_LegacyInfuraVariable(t *testing.T) {
	t.Setenv("INFURA_ID", "")
	t.Setenv("INFURA_API_KEY", "legacy-infura")

	got, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "legacy-infura", got.Infura.ID)
}

func Test_Config_NodeURL(t *testing.T) {
	t.Parallel()

	cfg := &Config{NodeURLs: map[string]string{"mainnet": "https://node/mainnet", "goerli": ""}}

	url, ok := cfg.NodeURL("MAINNET")
	assert.True(t, ok)
	assert.Equal(t, "https://node/mainnet", url)

	_, ok = cfg.NodeURL("goerli")
	assert.False(t, ok)

	_, ok = cfg.NodeURL("sepolia")
	assert.False(t, ok)
}

func Test_NodeURLEnvVar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NODE_URL_SEPOLIA", NodeURLEnvVar("sepolia"))
}

func Test_nodeURLsFromEnv(t *testing.T) {
	t.Parallel()

	got := nodeURLsFromEnv([]string{
		"NODE_URL_MAINNET=https://a",
		"NODE_URL_=https://ignored",
		"NODE_URL_GOERLI=",
		"PATH=/usr/bin",
		"MALFORMED",
	})

	assert.Equal(t, map[string]string{"mainnet": "https://a"}, got)
}
