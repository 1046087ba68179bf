package record

import "github.com/tracefmt/otf2go/chunk"

// Unknown stands in for a record-type byte absent from Catalog: a build
// reading a trace written by a newer producer than itself (spec.md §7,
// "unknown-record"). Tag is the raw wire byte; Data is the record body
// verbatim, already isolated by the length prefix an unknown record is
// read with, so it can be re-emitted or inspected by the unknown
// callback without this package understanding its fields.
type Unknown struct {
	Tag  byte
	Data []byte
}

func (Unknown) Kind() Kind { return KindUnknown }

func (r Unknown) Marshal(w *chunk.Writer) error {
	w.WriteBytes(r.Data)
	return nil
}
