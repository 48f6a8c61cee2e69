// Package script loads edit-script documents: per-record scripts in point
// (editops) or block (opcodes) form, stored as TSV, YAML or JSON.
package script

import (
	"fmt"
	"path/filepath"
	"strings"

	"editreplay-core/editops"
)

// Form names the representation of a script.
type Form string

const (
	FormPoint Form = "point"
	FormBlock Form = "block"
)

// ParseForm accepts "point"/"editops" and "block"/"opcodes".
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "point", "editops":
		return FormPoint, nil
	case "block", "opcodes":
		return FormBlock, nil
	}
	return "", fmt.Errorf("unknown script form %q (want point or block)", s)
}

// Entry is the script for one record.
type Entry struct {
	ID      string
	Form    Form
	Editops editops.Editops
	Opcodes editops.Opcodes
}

// Document holds entries in file order.
type Document struct {
	Entries []Entry
	index   map[string]int
}

// Lookup returns the entry for a record id.
func (d *Document) Lookup(id string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	i, ok := d.index[id]
	if !ok {
		return Entry{}, false
	}
	return d.Entries[i], true
}

// Len is the number of entries.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// RequireForm fails if any entry is not of form f.
func (d *Document) RequireForm(f Form) error {
	for _, e := range d.Entries {
		if e.Form != f {
			return fmt.Errorf("script %q is in %s form, want %s", e.ID, e.Form, f)
		}
	}
	return nil
}

// entry returns the entry for id, creating it with form f. An existing
// entry of another form is an error.
func (d *Document) entry(id string, f Form) (*Entry, error) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[id]; ok {
		e := &d.Entries[i]
		if e.Form != f {
			return nil, fmt.Errorf("script %q mixes %s and %s records", id, e.Form, f)
		}
		return e, nil
	}
	d.index[id] = len(d.Entries)
	d.Entries = append(d.Entries, Entry{ID: id, Form: f})
	return &d.Entries[len(d.Entries)-1], nil
}

// Load reads a document, picking the format from the file extension:
// .yaml/.yml, .json, anything else is TSV.
func Load(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".json":
		return LoadJSON(path)
	}
	return LoadTSV(path)
}
