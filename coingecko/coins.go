package coingecko

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCurrency reports a currency symbol with no known CoinGecko
// coin ID. It is fatal before any fetch happens, there is no point retrying.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// coins maps lowercase currency symbols to CoinGecko coin IDs.
// Loaded once, never mutated.
var coins = map[string]string{
	"btc":   "bitcoin",
	"eth":   "ethereum",
	"usdt":  "tether",
	"usdc":  "usd-coin",
	"bnb":   "binancecoin",
	"xrp":   "ripple",
	"ada":   "cardano",
	"sol":   "solana",
	"doge":  "dogecoin",
	"dot":   "polkadot",
	"matic": "polygon",
	"shib":  "shiba-inu",
	"ltc":   "litecoin",
	"trx":   "tron",
	"avax":  "avalanche-2",
	"uni":   "uniswap",
	"wbtc":  "wrapped-bitcoin",
	"link":  "chainlink",
	"atom":  "cosmos",
	"etc":   "ethereum-classic",
	"xmr":   "monero",
	"bch":   "bitcoin-cash",
	"algo":  "algorand",
	"fil":   "filecoin",
	"apt":   "aptos",
	"qnt":   "quant-network",
	"vet":   "vechain",
	"icp":   "internet-computer",
	"near":  "near",
	"egld":  "elrond-erd-2",
}

// ID returns the CoinGecko coin ID for a lowercase currency symbol.
func ID(symbol string) (string, error) {
	id, ok := coins[symbol]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, symbol)
	}
	return id, nil
}
