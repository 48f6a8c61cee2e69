// Package writers turns replay results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON/JSONL, FASTA).
//   - Replay stays domain-only and never formats anything.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
