package wasm

import (
	"encoding/binary"
	"fmt"
)

// magic is the 4-byte preamble every binary wasm module starts with.
var magic = []byte{0x00, 0x61, 0x73, 0x6d}

// SectionID identifies a module section.
type SectionID byte

// Section IDs defined by the wasm binary format.
const (
	SectionCustom   SectionID = 0
	SectionType     SectionID = 1
	SectionImport   SectionID = 2
	SectionFunction SectionID = 3
	SectionTable    SectionID = 4
	SectionMemory   SectionID = 5
	SectionGlobal   SectionID = 6
	SectionExport   SectionID = 7
	SectionStart    SectionID = 8
	SectionElement  SectionID = 9
	SectionCode     SectionID = 10
	SectionData     SectionID = 11
)

// Section is one raw module section: an ID plus its undecoded payload.
type Section struct {
	ID      SectionID
	Payload []byte
}

// Module is a binary wasm module decoded to section granularity. Section
// order is preserved exactly as it appeared on the wire.
type Module struct {
	Version  uint32
	Sections []Section
}

// Decode parses data as a binary wasm module. Section payloads are copied,
// so the caller may reuse data afterwards.
func Decode(data []byte) (*Module, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("module too short: %d bytes", len(data))
	}
	for i, b := range magic {
		if data[i] != b {
			return nil, fmt.Errorf("bad magic: % x", data[:4])
		}
	}

	m := &Module{Version: binary.LittleEndian.Uint32(data[4:8])}

	off := 8
	for off < len(data) {
		id := SectionID(data[off])
		off++

		size, next, err := readUvarint(data, off)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", id, err)
		}
		off = next

		if size > uint64(len(data)-off) {
			return nil, fmt.Errorf("section %d: payload of %d bytes exceeds remaining input", id, size)
		}

		payload := make([]byte, size)
		copy(payload, data[off:off+int(size)])
		off += int(size)

		m.Sections = append(m.Sections, Section{ID: id, Payload: payload})
	}

	return m, nil
}

// Encode serializes the module back to the binary format. Decoding a module
// and encoding it without modification yields the original bytes.
func (m *Module) Encode() []byte {
	out := make([]byte, 0, 8)
	out = append(out, magic...)
	out = binary.LittleEndian.AppendUint32(out, m.Version)

	for _, s := range m.Sections {
		out = append(out, byte(s.ID))
		out = appendUvarint(out, uint64(len(s.Payload)))
		out = append(out, s.Payload...)
	}

	return out
}
