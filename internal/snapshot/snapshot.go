// Package snapshot converts trees into a location-free, deterministic form
// used for golden output and structural fingerprints.
package snapshot

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-lower/ast"
	"github.com/t14raptor/go-lower/token"
)

// Version is bumped whenever the encoded form changes.
const Version = 1

type (
	// Entry is one node. Fields follow the node's struct field order.
	Entry struct {
		Kind   string  `cbor:"1,keyasint" json:"kind" yaml:"kind"`
		Fields []Field `cbor:"2,keyasint,omitempty" json:"fields,omitempty" yaml:"fields,omitempty"`
	}

	// Field is one named slot of a node. At most one of Token, Value,
	// Node and List is set; a slot with none set is absent or empty.
	Field struct {
		Name  string   `cbor:"1,keyasint" json:"name" yaml:"name"`
		Token *Token   `cbor:"2,keyasint,omitempty" json:"token,omitempty" yaml:"token,omitempty"`
		Value string   `cbor:"3,keyasint,omitempty" json:"value,omitempty" yaml:"value,omitempty"`
		Node  *Entry   `cbor:"4,keyasint,omitempty" json:"node,omitempty" yaml:"node,omitempty"`
		List  []*Entry `cbor:"5,keyasint,omitempty" json:"list,omitempty" yaml:"list,omitempty"`
	}

	Token struct {
		Type  string `cbor:"1,keyasint" json:"type" yaml:"type"`
		Value string `cbor:"2,keyasint" json:"value" yaml:"value"`
	}

	document struct {
		Version int    `cbor:"1,keyasint"`
		Root    *Entry `cbor:"2,keyasint"`
	}
)

// Dump returns the snapshot of the tree rooted at n, or nil for a nil node.
func Dump(n ast.Node) *Entry {
	if n == nil {
		return nil
	}
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil
	}

	e := &Entry{Kind: n.Kind().String()}
	sv := v.Elem()
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		e.Fields = append(e.Fields, dumpField(sf.Name, sv.Field(i)))
	}
	return e
}

func dumpField(name string, fv reflect.Value) Field {
	f := Field{Name: name}
	switch x := fv.Interface().(type) {
	case nil:
	case *token.Token:
		if x != nil {
			f.Token = &Token{Type: x.Type.String(), Value: x.Value}
		}
	case token.Type:
		f.Value = x.String()
	case bool:
		if x {
			f.Value = "true"
		}
	case ast.Node:
		f.Node = Dump(x)
	default:
		if fv.Kind() == reflect.Slice && fv.Len() > 0 {
			f.List = make([]*Entry, fv.Len())
			for i := range f.List {
				node, _ := fv.Index(i).Interface().(ast.Node)
				f.List[i] = Dump(node)
			}
		}
	}
	return f
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: canonical encoding mode: %v", err))
	}
	return em
}()

// MarshalCBOR encodes the snapshot of n with canonical CBOR, so equal trees
// always encode to equal bytes.
func MarshalCBOR(n ast.Node) ([]byte, error) {
	data, err := encMode.Marshal(document{Version: Version, Root: Dump(n)})
	if err != nil {
		return nil, fmt.Errorf("snapshot: cbor: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes data produced by MarshalCBOR.
func UnmarshalCBOR(data []byte) (*Entry, error) {
	var doc document
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: cbor: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("snapshot: unsupported version %d", doc.Version)
	}
	return doc.Root, nil
}

// Fingerprint is the BLAKE2b-256 digest of the canonical encoding of n.
// Trees that differ only in source locations have equal fingerprints.
func Fingerprint(n ast.Node) ([blake2b.Size256]byte, error) {
	data, err := MarshalCBOR(n)
	if err != nil {
		return [blake2b.Size256]byte{}, err
	}
	return blake2b.Sum256(data), nil
}

// FingerprintHex is Fingerprint in lowercase hexadecimal.
func FingerprintHex(n ast.Node) (string, error) {
	sum, err := Fingerprint(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}

func MarshalJSON(n ast.Node) ([]byte, error) {
	data, err := json.MarshalIndent(Dump(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: json: %w", err)
	}
	return data, nil
}

func MarshalYAML(n ast.Node) ([]byte, error) {
	data, err := yaml.Marshal(Dump(n))
	if err != nil {
		return nil, fmt.Errorf("snapshot: yaml: %w", err)
	}
	return data, nil
}
