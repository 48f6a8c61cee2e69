// pkg/api/replay_v1.go
package api

// ReplayV1 is the stable JSON/JSONL schema for one replayed record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReplayV1 struct {
	ID      string `json:"id"`
	Form    string `json:"form"` // "point" | "block"
	Ops     int    `json:"ops"`
	SrcLen  int    `json:"src_len"`
	DestLen int    `json:"dest_len"`
	Length  int    `json:"length"`
	Match   bool   `json:"match"`
	Seq     string `json:"seq,omitempty"`
}
