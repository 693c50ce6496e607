package extension

import (
	"errors"
	"fmt"
	"strings"
)

// FetcherType names the kind of block explorer a chain's contract creation data is fetched from.
type FetcherType string

const (
	FetcherEtherscan       FetcherType = "etherscan"
	FetcherBlockscout      FetcherType = "blockscout"
	FetcherBlocksscan      FetcherType = "blocksscan"
	FetcherTelos           FetcherType = "telos"
	FetcherMeter           FetcherType = "meter"
	FetcherAvalancheSubnet FetcherType = "avalanche_subnet"
)

// AddressPlaceholder is substituted by the consumer with the contract address being looked up.
const AddressPlaceholder = "${ADDRESS}"

// Explorer URL suffixes and creation transaction regexes. The regexes are kept as strings so they
// serialize as-is in the chains listing.
const (
	etherscanSuffix       = "address/" + AddressPlaceholder
	blockscoutSuffix      = "address/" + AddressPlaceholder + "/transactions"
	blocksscanSuffix      = "api/accounts/" + AddressPlaceholder
	telosSuffix           = "v2/evm/get_contract?contract=" + AddressPlaceholder
	meterSuffix           = "api/accounts/" + AddressPlaceholder
	avalancheSubnetSuffix = "contracts/" + AddressPlaceholder + "/transactions:getDeployment"

	etherscanRegex     = "at txn.*href=.*/tx/(0x.{64})"
	blockscoutRegexOld = `transaction_hash_link" href="${BLOCKSCOUT_PREFIX}/tx/(.*?)"`
	blockscoutRegexNew = "at txn.*href.*/tx/(0x.{64}?)"
	blockscoutPrefix   = "${BLOCKSCOUT_PREFIX}"

	// etherscanCreatorTxSuffix queries the contract creation endpoint of the Etherscan API. The
	// API key is appended.
	etherscanCreatorTxSuffix = "/api?module=contract&action=getcontractcreation&contractaddresses=" + AddressPlaceholder + "&apikey="
)

var fetcherSuffixes = map[FetcherType]string{
	FetcherEtherscan:       etherscanSuffix,
	FetcherBlockscout:      blockscoutSuffix,
	FetcherBlocksscan:      blocksscanSuffix,
	FetcherTelos:           telosSuffix,
	FetcherMeter:           meterSuffix,
	FetcherAvalancheSubnet: avalancheSubnetSuffix,
}

// Fetcher describes where the creation transaction of a contract on the chain can be looked up.
type Fetcher struct {
	Type FetcherType `yaml:"type"`
	// URL is the explorer base URL, e.g. https://etherscan.io/.
	URL string `yaml:"url"`
	// Prefix is the path prefix some Blockscout instances put in front of transaction links.
	Prefix string `yaml:"prefix,omitempty"`
	// APIURL is the Etherscan API base URL, e.g. https://api.etherscan.io, for explorers serving
	// the contract creation endpoint.
	APIURL string `yaml:"api_url,omitempty"`
}

// Validate checks the fetcher type is known and a URL is set.
func (f Fetcher) Validate() error {
	if _, ok := fetcherSuffixes[f.Type]; !ok {
		return fmt.Errorf("unknown fetcher type %q", f.Type)
	}
	if f.URL == "" {
		return errors.New("fetcher url is required")
	}
	if f.Prefix != "" && f.Type != FetcherBlockscout {
		return fmt.Errorf("prefix is only supported by %s fetchers", FetcherBlockscout)
	}
	if f.APIURL != "" && f.Type != FetcherEtherscan {
		return fmt.Errorf("api url is only supported by %s fetchers", FetcherEtherscan)
	}

	return nil
}

// ContractFetchAddress returns the explorer URL template for looking up a contract, containing
// AddressPlaceholder.
func (f Fetcher) ContractFetchAddress() string {
	base := f.URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return base + fetcherSuffixes[f.Type]
}

// CreatorTxAPI returns the Etherscan API URL template for looking up the creation transaction of
// a contract, containing AddressPlaceholder. It is empty when the fetcher has no API URL.
func (f Fetcher) CreatorTxAPI(apiKey string) string {
	if f.APIURL == "" {
		return ""
	}

	return strings.TrimSuffix(f.APIURL, "/") + etherscanCreatorTxSuffix + apiKey
}

// TxRegex returns the regexes extracting the creation transaction hash from the explorer page.
// API backed explorers (blocksscan, telos, meter, avalanche subnets) return structured data and
// have none.
func (f Fetcher) TxRegex() []string {
	switch f.Type {
	case FetcherEtherscan:
		return []string{etherscanRegex}
	case FetcherBlockscout:
		return []string{
			strings.Replace(blockscoutRegexOld, blockscoutPrefix, f.Prefix, 1),
			blockscoutRegexNew,
		}
	default:
		return nil
	}
}
