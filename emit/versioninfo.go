package emit

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/fzipp/rcc/ast"
	"github.com/fzipp/rcc/resio"
)

const versionInfoSignature = 0xFEEF04BD
const versionInfoStrucVersion = 0x00010000

// EmitVersionInfo implements spec.md §4.5's VERSIONINFO payload: a root
// "VS_VERSION_INFO" block carrying the fixed VS_FIXEDFILEINFO as its
// binary value, followed by the StringFileInfo/VarFileInfo block tree.
func EmitVersionInfo(ctx *Context, w *resio.Writer, stmt *ast.Stmt) error {
	vi := stmt.VersionInfo
	fixed := encodeFixedFileInfo(vi)

	var children [][]byte
	for _, b := range vi.Blocks {
		children = append(children, encodeVersionBlock(ctx, b))
	}

	root := encodeBlock([]byte("VS_VERSION_INFO"), 0, uint16(len(fixed)), fixed, children)
	writeHeaderAndData(ctx, w, stmt, root)
	return nil
}

func encodeFixedFileInfo(vi *ast.VersionInfo) []byte {
	w := resio.NewWriter()
	w.WriteU32(versionInfoSignature)
	w.WriteU32(versionInfoStrucVersion)
	// Each version DWORD packs its two 16-bit parts, high part first.
	w.WriteU32(evalOr0(vi.FileVersionMS[0])<<16 | evalOr0(vi.FileVersionMS[1])&0xFFFF)
	w.WriteU32(evalOr0(vi.FileVersionLS[0])<<16 | evalOr0(vi.FileVersionLS[1])&0xFFFF)
	w.WriteU32(evalOr0(vi.ProductVersionMS[0])<<16 | evalOr0(vi.ProductVersionMS[1])&0xFFFF)
	w.WriteU32(evalOr0(vi.ProductVersionLS[0])<<16 | evalOr0(vi.ProductVersionLS[1])&0xFFFF)
	w.WriteU32(evalOr0(vi.FileFlagsMask))
	w.WriteU32(evalOr0(vi.FileFlags))
	w.WriteU32(evalOr0(vi.FileOS))
	w.WriteU32(evalOr0(vi.FileType))
	w.WriteU32(evalOr0(vi.FileSubtype))
	w.WriteU32(0) // fileDateMS
	w.WriteU32(0) // fileDateLS
	return w.Bytes()
}

func evalOr0(e *ast.Expr) uint32 {
	if e == nil {
		return 0
	}
	return e.Eval().Value
}

// encodeVersionBlock recursively encodes a BLOCK node: its own VALUE
// statements become child sub-blocks (each keyed by that VALUE's own
// key), followed by nested BLOCK children (spec.md §4.5).
func encodeVersionBlock(ctx *Context, b *ast.VersionInfoBlock) []byte {
	var children [][]byte
	for _, v := range b.Values {
		children = append(children, encodeVersionValue(v))
	}
	for _, child := range b.Children {
		children = append(children, encodeVersionBlock(ctx, child))
	}
	key := b.Key
	if key == nil && len(b.Values) == 1 && len(b.Children) == 0 {
		// A bare top-level VALUE outside any BLOCK (parse.parseVersionValueAsBlock);
		// it already produced its own sub-block above, so fold it through
		// directly without an extra wrapping layer.
		return children[0]
	}
	return encodeBlock(key, 1, 0, nil, children)
}

// encodeVersionValue encodes one VALUE statement as its own sub-block:
// type 1 (text) with a null-terminated UTF-16 string value, or type 0
// (binary) with the concatenated numeric bytes, per spec.md §4.5. A
// value that mixes strings and numbers already carries the
// mixed-value-length warning from the parser; here it degrades to the
// string form with the numeric tail dropped, avoiding the ambiguous
// on-disk length the reference compiler would miscompile.
func encodeVersionValue(v ast.VersionInfoValue) []byte {
	if v.Text != nil {
		units := stringExprUnits(v.Text)
		units = append(units, 0)
		data := resio.NewWriter()
		for _, u := range units {
			data.WriteU16(u)
		}
		return encodeBlock(v.Key, 1, uint16(len(units)), data.Bytes(), nil)
	}
	data := resio.NewWriter()
	for _, n := range v.Numbers {
		writeExprAsData(data, n)
	}
	return encodeBlock(v.Key, 0, uint16(data.Len()), data.Bytes(), nil)
}

// encodeBlock builds one block's complete on-disk bytes: length,
// value_length, type, key, pad-to-4, value data, child blocks, itself
// padded to a 4-byte boundary (spec.md §4.5/§6). Padding is measured from
// the start of the block, and the length field counts the whole block.
func encodeBlock(key []byte, typ uint16, valueLength uint16, valueData []byte, children [][]byte) []byte {
	out := resio.NewWriter()
	out.WriteU16(0) // length, filled in below
	out.WriteU16(valueLength)
	out.WriteU16(typ)
	for _, u := range utf16.Encode([]rune(string(key))) {
		out.WriteU16(u)
	}
	out.WriteU16(0)
	out.PadTo4()
	out.WriteBytes(valueData)
	out.PadTo4()
	for _, c := range children {
		out.WriteBytes(c)
		out.PadTo4()
	}
	b := out.Bytes()
	binary.LittleEndian.PutUint16(b[0:2], uint16(len(b)))
	return b
}
