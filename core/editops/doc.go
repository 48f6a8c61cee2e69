// Package editops replays edit scripts.
//
// An edit script describes how a source sequence turns into a destination
// sequence. It comes in two equivalent forms:
//
//   - Editops: one record per single-element change (point form).
//   - Opcodes: one record per contiguous range of same-kind operations (block form).
//
// The Apply* functions rebuild the transformed sequence from a script and the
// two sequences it was computed against. Elements are copied by position and
// never compared, so the same code serves bytes, runes or arbitrary tokens.
//
// Scripts are validated before any output is produced; a script that points
// outside its sequences or is not ordered yields a *ScriptError and no output.
package editops
