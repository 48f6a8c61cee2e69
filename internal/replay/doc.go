// Package replay pairs source and destination records, replays each
// record's edit script and reports the reconstructed sequences.
//
// Replays run on a bounded worker group; results come back in source order.
// The first failing record cancels the rest and no results are returned.
package replay
