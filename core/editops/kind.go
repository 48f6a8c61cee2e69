package editops

import (
	"fmt"
	"strings"
)

// Kind is the type of a single edit or block.
type Kind uint8

const (
	Keep Kind = iota
	Replace
	Insert
	Delete
)

var kindNames = [...]string{
	Keep:    "keep",
	Replace: "replace",
	Insert:  "insert",
	Delete:  "delete",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool { return k <= Delete }

// ParseKind maps a name to a Kind. "equal" and "none" are accepted for Keep.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep", "equal", "none":
		return Keep, nil
	case "replace":
		return Replace, nil
	case "insert":
		return Insert, nil
	case "delete":
		return Delete, nil
	}
	return 0, fmt.Errorf("unknown edit kind %q; allowed: keep replace insert delete", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid edit kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
