package resio

import "github.com/fzipp/rcc/litr"

// Header is the on-disk resource header of spec.md §3/§6.
type Header struct {
	Type            litr.NameOrOrdinal
	Name            litr.NameOrOrdinal
	DataVersion     uint32
	MemoryFlags     uint16
	LanguageID      uint16
	Version         uint32
	Characteristics uint32
}

// HeaderSize computes header_size per spec.md §3: "computed from actual
// byte length up to and including the name field, aligned to 4 bytes, plus
// the 16 fixed trailing bytes."
func (h Header) HeaderSize() uint32 {
	leading := 8 // data_size + header_size
	leading += SizeOfNameOrOrdinal(h.Type)
	leading += SizeOfNameOrOrdinal(h.Name)
	return uint32(Align4(leading) + 16)
}

// WriteResourceHeader writes a resource's header fields (data_size through
// characteristics) for a data body of dataSize bytes, without writing the
// body itself. Callers that have the body as a []byte should use
// WriteResource; callers that stream the body from elsewhere (spec.md §5's
// external-file path) write the header through here, copy the body
// themselves, then pad to a 4-byte boundary.
func WriteResourceHeader(w *Writer, h Header, dataSize int64) {
	w.WriteU32(uint32(dataSize))
	w.WriteU32(h.HeaderSize())
	w.WriteNameOrOrdinal(h.Type)
	w.WriteNameOrOrdinal(h.Name)
	w.PadTo4()
	w.WriteU32(h.DataVersion)
	w.WriteU16(h.MemoryFlags)
	w.WriteU16(h.LanguageID)
	w.WriteU32(h.Version)
	w.WriteU32(h.Characteristics)
}

// WriteResource writes a complete resource (header + data, data padded to
// a 4-byte boundary) to w, per spec.md §6.
func WriteResource(w *Writer, h Header, data []byte) {
	WriteResourceHeader(w, h, int64(len(data)))
	w.WriteBytes(data)
	w.PadTo4()
}

// WriteSentinelHeader writes the mandatory empty sentinel resource that
// must precede every other resource in the stream (spec.md §3, §6, §8):
// 32 bytes with header_size=32, type and name Ordinal(0) (each written as
// 0xFFFF then 0), and every other field zero.
func WriteSentinelHeader(w *Writer) {
	WriteResource(w, Header{
		Type: litr.Ordinal(0),
		Name: litr.Ordinal(0),
	}, nil)
}
