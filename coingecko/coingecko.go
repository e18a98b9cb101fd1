// Package coingecko fetches historical daily USD prices for crypto
// currencies from the CoinGecko market_chart API.
//
// It supplies raw, possibly gapped series; filling the gaps is the caller's
// business.
package coingecko

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/wager/date"
	"github.com/rs/zerolog"
)

const coingecko_api_key = "COINGECKO_API_KEY"

var apiFlag = flag.String("coingecko-api-key", "", "CoinGecko demo API key to use for fetching prices.\n If missing it will read the environment variable \""+coingecko_api_key+"\". The public API works without one, with tighter rate limits.")

func apiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *apiFlag == "" {
		*apiFlag = os.Getenv(coingecko_api_key)
	}
	return *apiFlag
}

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// maxRetries bounds the attempts on a transient fetch failure.
const maxRetries = 5

// rateLimitPause is the delay between successive currency fetches, the
// public API throttles aggressively.
const rateLimitPause = time.Second

// fetchFunc fetches the raw daily USD prices of one coin ID over a range.
// Keeping it a pure function lets the retry policy wrap it as a decorator
// and tests substitute a deterministic in-memory double.
type fetchFunc func(id string, span date.Range) (*date.History[float64], error)

// Supplier fetches raw daily price series, with bounded retries and a
// rate-limiting pause between currencies.
type Supplier struct {
	fetch fetchFunc
	pause func(time.Duration)
	log   zerolog.Logger
}

// NewSupplier returns a Supplier hitting the live API through a
// daily-expiring disk cache.
func NewSupplier(log zerolog.Logger) *Supplier {
	client := daily()
	raw := func(id string, span date.Range) (*date.History[float64], error) {
		return fetchRange(client, defaultBaseURL, apiKey(), id, span)
	}
	return &Supplier{
		fetch: withRetry(raw, log, time.Sleep),
		pause: time.Sleep,
		log:   log,
	}
}

// FetchAll fetches the raw daily series of every currency over its declared
// range, keyed by currency symbol.
//
// Every symbol is resolved to a coin ID before the first fetch: an
// unsupported currency aborts immediately, no partial fetching happens.
func (s *Supplier) FetchAll(ranges map[string]date.Range) (map[string]*date.History[float64], error) {
	ids := make(map[string]string, len(ranges))
	for symbol := range ranges {
		id, err := ID(symbol)
		if err != nil {
			return nil, err
		}
		ids[symbol] = id
	}

	result := make(map[string]*date.History[float64], len(ranges))
	for i, symbol := range slices.Sorted(maps.Keys(ranges)) {
		if i > 0 {
			s.pause(rateLimitPause)
		}
		span := ranges[symbol]
		s.log.Info().Str("currency", symbol).Stringer("range", span).Msg("fetching daily prices")
		prices, err := s.fetch(ids[symbol], span)
		if err != nil {
			return nil, fmt.Errorf("fetching prices for %s: %w", symbol, err)
		}
		s.log.Debug().Str("currency", symbol).Int("days", prices.Len()).Msg("fetched daily prices")
		result[symbol] = prices
	}
	return result, nil
}

// withRetry decorates fetch with the bounded retry policy: up to maxRetries
// attempts, waiting attempt*2 seconds between them, then fatal.
func withRetry(fetch fetchFunc, log zerolog.Logger, sleep func(time.Duration)) fetchFunc {
	return func(id string, span date.Range) (*date.History[float64], error) {
		var errs error
		for attempt := 1; attempt <= maxRetries; attempt++ {
			prices, err := fetch(id, span)
			if err == nil {
				return prices, nil
			}
			errs = errors.Join(errs, err)
			if attempt < maxRetries {
				wait := time.Duration(attempt) * 2 * time.Second
				log.Warn().Err(err).Str("id", id).Dur("wait", wait).Msg("error fetching data, retrying")
				sleep(wait)
			}
		}
		return nil, fmt.Errorf("giving up after %d attempts: %w", maxRetries, errs)
	}
}

// fetchRange fetches the market_chart/range payload of one coin and buckets
// its millisecond samples into UTC calendar days.
//
// When a day holds several samples the last one wins, it is the freshest
// price of that day.
func fetchRange(client *http.Client, base, key, id string, span date.Range) (*date.History[float64], error) {
	// Bounds are inclusive: 'to' is the next midnight after the last day.
	from := span.From.Unix()
	to := span.To.Add(1).Unix()

	addr := fmt.Sprintf("%s/coins/%s/market_chart/range?vs_currency=usd&from=%d&to=%d",
		base, url.PathEscape(id), from, to)
	if key != "" {
		addr += "&x_cg_demo_api_key=" + url.QueryEscape(key)
	}

	// The payload is {"prices": [[ms, price], ...], ...}; only prices is
	// interesting, pluck it out of the untyped JSON.
	var payload any
	if err := jwget(client, addr, &payload); err != nil {
		return nil, err
	}
	rows, err := jsonpath.Get("$.prices", payload)
	if err != nil {
		return nil, fmt.Errorf("unexpected market_chart payload for %q: %w", id, err)
	}
	list, ok := rows.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected market_chart payload for %q: prices is %T", id, rows)
	}

	prices := new(date.History[float64])
	for _, row := range list {
		pair, ok := row.([]any)
		if !ok || len(pair) < 2 {
			return nil, fmt.Errorf("unexpected market_chart payload for %q: sample %v", id, row)
		}
		ms, okMs := pair[0].(float64)
		price, okPrice := pair[1].(float64)
		if !okMs || !okPrice {
			return nil, fmt.Errorf("unexpected market_chart payload for %q: sample %v", id, pair)
		}
		on := date.FromTime(time.UnixMilli(int64(ms)))
		prices.Append(on, price)
	}
	return prices, nil
}
