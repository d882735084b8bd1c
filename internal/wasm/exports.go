package wasm

import "fmt"

// ExportKind distinguishes what an export entry refers to.
type ExportKind byte

// Export kinds defined by the wasm binary format.
const (
	ExportFunc   ExportKind = 0
	ExportTable  ExportKind = 1
	ExportMemory ExportKind = 2
	ExportGlobal ExportKind = 3
)

// Export is one entry of a module's export section.
type Export struct {
	Name  string
	Kind  ExportKind
	Index uint32
}

// Exports decodes the module's export section. A module without an export
// section yields a nil slice.
func (m *Module) Exports() ([]Export, error) {
	sec := m.section(SectionExport)
	if sec == nil {
		return nil, nil
	}
	return decodeExports(sec.Payload)
}

// FilterExports rewrites the export section in place, retaining only the
// entries for which keep returns true. All other sections are untouched.
// A module without an export section is left as is.
func (m *Module) FilterExports(keep func(Export) bool) error {
	sec := m.section(SectionExport)
	if sec == nil {
		return nil
	}

	exports, err := decodeExports(sec.Payload)
	if err != nil {
		return err
	}

	kept := exports[:0]
	for _, e := range exports {
		if keep(e) {
			kept = append(kept, e)
		}
	}

	sec.Payload = encodeExports(kept)
	return nil
}

// section returns a pointer to the first section with the given ID, or nil.
func (m *Module) section(id SectionID) *Section {
	for i := range m.Sections {
		if m.Sections[i].ID == id {
			return &m.Sections[i]
		}
	}
	return nil
}

func decodeExports(payload []byte) ([]Export, error) {
	count, off, err := readUvarint(payload, 0)
	if err != nil {
		return nil, fmt.Errorf("export count: %w", err)
	}

	// The smallest possible export entry is 3 bytes (empty name, kind,
	// index), so a count beyond that bound is malformed on its face. The
	// check also keeps a hostile count from driving the allocation below.
	if count > uint64(len(payload)-off)/3 {
		return nil, fmt.Errorf("export count %d exceeds section payload of %d bytes", count, len(payload))
	}

	exports := make([]Export, 0, count)
	for i := uint64(0); i < count; i++ {
		nameLen, next, err := readUvarint(payload, off)
		if err != nil {
			return nil, fmt.Errorf("export %d name length: %w", i, err)
		}
		off = next
		if nameLen > uint64(len(payload)-off) {
			return nil, fmt.Errorf("export %d: name of %d bytes exceeds remaining payload", i, nameLen)
		}
		name := string(payload[off : off+int(nameLen)])
		off += int(nameLen)

		if off >= len(payload) {
			return nil, fmt.Errorf("export %q: missing kind byte", name)
		}
		kind := ExportKind(payload[off])
		off++

		index, next, err := readUvarint(payload, off)
		if err != nil {
			return nil, fmt.Errorf("export %q index: %w", name, err)
		}
		off = next

		exports = append(exports, Export{Name: name, Kind: kind, Index: uint32(index)})
	}

	if off != len(payload) {
		return nil, fmt.Errorf("export section has %d trailing bytes", len(payload)-off)
	}

	return exports, nil
}

func encodeExports(exports []Export) []byte {
	out := appendUvarint(nil, uint64(len(exports)))
	for _, e := range exports {
		out = appendUvarint(out, uint64(len(e.Name)))
		out = append(out, e.Name...)
		out = append(out, byte(e.Kind))
		out = appendUvarint(out, uint64(e.Index))
	}
	return out
}
