// Package ledger implements an append-only hand history for recording the
// outcome of every showdown played at a table.
//
// # Core Components
//
// History: An append-only log of showdown records with hash chaining for
// tamper detection.
//
// Record: A single finished hand containing the board, the best hand of
// every contender, the winners and a link to the previous record.
//
// # Security Properties
//
// The history provides:
//   - Append-only: records are only ever added at the end
//   - Verifiability: Anyone can verify the integrity of the entire chain
//   - Tamper detection: Any modification breaks the hash chain
//
// # Usage
//
// Create a history, then append a record after each showdown. The Verify
// method can be called at any time to ensure the chain remains intact.
package ledger
