package wager

import "errors"

// Sentinel errors of the valuation core. All of them are terminal for the
// current invocation: this is a batch calculation tool, no partial output is
// produced on a fatal error. Callers match with errors.Is.
var (
	// ErrNoRateData reports that gap-filling found no usable price anywhere
	// in a currency's raw series.
	ErrNoRateData = errors.New("no exchange rate data available")

	// ErrNoRateAvailable reports that a nearest-date lookup ran on an empty
	// series.
	ErrNoRateAvailable = errors.New("no exchange rate available")

	// ErrMissingRate reports that valuation could not resolve a rate for a
	// transaction.
	ErrMissingRate = errors.New("missing exchange rate")

	// ErrMalformedTransaction reports a parse-time failure in a transaction
	// record.
	ErrMalformedTransaction = errors.New("malformed transaction")
)
