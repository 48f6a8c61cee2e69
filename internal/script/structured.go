package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"editreplay-core/editops"
)

// fileDoc is the on-disk shape of YAML and JSON documents.
type fileDoc struct {
	Scripts []fileEntry `yaml:"scripts" json:"scripts"`
}

type fileEntry struct {
	ID     string          `yaml:"id" json:"id"`
	Form   string          `yaml:"form,omitempty" json:"form,omitempty"`
	Ops    editops.Editops `yaml:"ops,omitempty" json:"ops,omitempty"`
	Blocks editops.Opcodes `yaml:"blocks,omitempty" json:"blocks,omitempty"`
}

// LoadYAML reads a YAML document. Unknown keys are rejected.
func LoadYAML(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fd fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fd); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fd.document(path)
}

// LoadJSON reads a JSON document. Unknown keys are rejected.
func LoadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fd fileDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fd); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fd.document(path)
}

func (fd fileDoc) document(path string) (*Document, error) {
	doc := &Document{}
	for i, fe := range fd.Scripts {
		if fe.ID == "" {
			return nil, fmt.Errorf("%s: script %d has no id", path, i+1)
		}
		if _, dup := doc.Lookup(fe.ID); dup {
			return nil, fmt.Errorf("%s: duplicate script id %q", path, fe.ID)
		}
		form, err := fe.form()
		if err != nil {
			return nil, fmt.Errorf("%s: script %q: %w", path, fe.ID, err)
		}
		e, err := doc.entry(fe.ID, form)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		e.Editops, e.Opcodes = fe.Ops, fe.Blocks
	}
	return doc, nil
}

// form resolves the declared form against the fields present.
func (fe fileEntry) form() (Form, error) {
	if len(fe.Ops) > 0 && len(fe.Blocks) > 0 {
		return "", errors.New("both ops and blocks given")
	}
	inferred := FormPoint
	if len(fe.Blocks) > 0 {
		inferred = FormBlock
	}
	if fe.Form == "" {
		return inferred, nil
	}
	declared, err := ParseForm(fe.Form)
	if err != nil {
		return "", err
	}
	if (declared == FormPoint && len(fe.Blocks) > 0) || (declared == FormBlock && len(fe.Ops) > 0) {
		return "", fmt.Errorf("form %s does not match its records", declared)
	}
	return declared, nil
}
