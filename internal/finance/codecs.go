package finance

import (
	"io"
	"strings"

	"github.com/penny-dev/penny/internal/ledger"
	"github.com/penny-dev/penny/internal/tabular"
)

// Codec serializes the ledger to and from one textual representation.
// Format doubles as the file extension used for import dispatch.
type Codec interface {
	Encode(w io.Writer, l *ledger.Ledger) error
	Decode(r io.Reader) (*ledger.Ledger, error)
	Format() string
}

// Registry holds named codecs.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec. Panics on duplicate format.
func (r *Registry) Register(c Codec) {
	key := strings.ToLower(c.Format())
	if _, ok := r.codecs[key]; ok {
		panic("duplicate codec format: " + key)
	}
	r.codecs[key] = c
}

// Get returns the codec for format, or nil.
func (r *Registry) Get(format string) Codec {
	return r.codecs[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with both built-in codecs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(structuredCodec{})
	r.Register(tabularCodec{})
	return r
}

// structuredCodec is the nested JSON form, identical to the durable
// data file.
type structuredCodec struct{}

func (structuredCodec) Format() string { return "json" }

func (structuredCodec) Encode(w io.Writer, l *ledger.Ledger) error {
	return ledger.Encode(w, l)
}

func (structuredCodec) Decode(r io.Reader) (*ledger.Ledger, error) {
	return ledger.Decode(r)
}

// tabularCodec is the flat six-column CSV form.
type tabularCodec struct{}

func (tabularCodec) Format() string { return "csv" }

func (tabularCodec) Encode(w io.Writer, l *ledger.Ledger) error {
	return tabular.Write(w, l)
}

func (tabularCodec) Decode(r io.Reader) (*ledger.Ledger, error) {
	return tabular.Read(r)
}
