package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// MappingTable is a per-location, per-domain table of local-to-global
// identifier mappings (spec.md §4.5). It precedes the event records it
// governs in the same stream; the trace reader consumes it into a
// mapping.Context rather than handing it to the dispatcher.
type MappingTable struct {
	Domain idref.Domain
	Local  []uint64
	Global []uint64
}

func (MappingTable) Kind() Kind { return KindMappingTable }

func (r MappingTable) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Domain))
	w.WriteU32(uint32(len(r.Local)))
	for i := range r.Local {
		w.WriteU64(r.Local[i])
		w.WriteU64(r.Global[i])
	}
	return nil
}

func UnmarshalMappingTable(r *chunk.Reader) (*MappingTable, error) {
	dom, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	local := make([]uint64, n)
	global := make([]uint64, n)
	for i := uint32(0); i < n; i++ {
		if local[i], err = r.ReadU64(); err != nil {
			return nil, err
		}
		if global[i], err = r.ReadU64(); err != nil {
			return nil, err
		}
	}
	return &MappingTable{Domain: idref.Domain(dom), Local: local, Global: global}, nil
}

// ClockOffset is one sample of a location's clock-offset curve: at local
// time Time, the location's clock read Offset ticks away from the
// archive's global clock, with Stddev recording the sample's measured
// uncertainty (spec.md §4.5's piecewise-linear interpolation rule draws
// on the two samples bracketing a given local timestamp).
type ClockOffset struct {
	Time   uint64
	Offset int64
	Stddev float64
}

func (ClockOffset) Kind() Kind { return KindClockOffset }

func (r ClockOffset) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.Time)
	w.WriteI64(r.Offset)
	w.WriteF64(r.Stddev)
	return nil
}

func UnmarshalClockOffset(r *chunk.Reader) (*ClockOffset, error) {
	t, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	off, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	stddev, err := r.ReadF64()
	if err != nil {
		return nil, err
	}
	return &ClockOffset{Time: t, Offset: off, Stddev: stddev}, nil
}
