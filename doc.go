// Package wager reconciles dated gambling transactions denominated in
// crypto currencies against historical exchange rates, producing a canonical
// USD valuation per transaction and derived win/loss statistics.
//
// The core functionalities include:
//   - Rate Series: building, per currency, a total daily USD price series
//     over the span of observed transactions, filling gaps in the raw data
//     with a deterministic forward/backward fill policy.
//   - Valuation: assigning each transaction an authoritative USD amount from
//     the resolved rate of its calendar day, with a deterministic
//     nearest-date fallback.
//   - Statistics: extrema, time-bucketed averages and running daily and
//     cumulative balances over the valued transaction stream, separately for
//     deposits and withdrawals, and the net win/loss across both.
//
// Raw prices come from a remote pricing service behind the coingecko
// package; transactions come from CSV exports. This package serves as the
// foundational logic for the `wgr` command-line tool.
package wager
