// Package resfmt implements the external-format readers of spec.md §4.5/
// §4.6: the icon/cursor directory parser that splits a .ico/.cur into
// individual image sub-resources plus a group directory, and the bitmap
// header validator/trimmer. It follows the teacher's files.go idiom of
// direct encoding/binary field reads rather than a decode-to-image.Image
// library (SPEC_FULL.md DOMAIN STACK: byte-exact passthrough rules out
// golang.org/x/image here).
package resfmt

import (
	"encoding/binary"
	"fmt"
)

// IconDirEntry is one 16-byte entry of an ICO/CUR directory (spec.md §4.5).
type IconDirEntry struct {
	Width, Height byte
	ColorCount    byte
	Reserved      byte
	Planes        uint16 // cursor: hotspot x
	BitCount      uint16 // cursor: hotspot y
	BytesInRes    uint32
	ImageOffset   uint32
}

// IconDir is a parsed ICO/CUR directory: the 6-byte header plus its
// entries (spec.md §4.5).
type IconDir struct {
	Type    uint16 // 1 = ICON, 2 = CURSOR
	Entries []IconDirEntry
}

// ParseIconDir parses the directory header and entry table of an ICO/CUR
// file. It does not validate that ImageOffset+BytesInRes stays within
// len(data); callers slice the image payload themselves and get a clean
// out-of-range error from that slice operation's caller.
func ParseIconDir(data []byte) (IconDir, error) {
	if len(data) < 6 {
		return IconDir{}, fmt.Errorf("resfmt: icon/cursor directory header truncated")
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	typ := binary.LittleEndian.Uint16(data[2:4])
	count := binary.LittleEndian.Uint16(data[4:6])
	if reserved != 0 || (typ != 1 && typ != 2) {
		return IconDir{}, fmt.Errorf("resfmt: unrecognized icon/cursor directory header")
	}
	const entrySize = 16
	need := 6 + int(count)*entrySize
	if len(data) < need {
		return IconDir{}, fmt.Errorf("resfmt: icon/cursor directory entries truncated")
	}
	dir := IconDir{Type: typ, Entries: make([]IconDirEntry, count)}
	for i := 0; i < int(count); i++ {
		e := data[6+i*entrySize:]
		dir.Entries[i] = IconDirEntry{
			Width:       e[0],
			Height:      e[1],
			ColorCount:  e[2],
			Reserved:    e[3],
			Planes:      binary.LittleEndian.Uint16(e[4:6]),
			BitCount:    binary.LittleEndian.Uint16(e[6:8]),
			BytesInRes:  binary.LittleEndian.Uint32(e[8:12]),
			ImageOffset: binary.LittleEndian.Uint32(e[12:16]),
		}
	}
	return dir, nil
}

// ImageData returns entry's image payload from the source file bytes.
func (d IconDir) ImageData(data []byte, entry IconDirEntry) ([]byte, error) {
	start := int(entry.ImageOffset)
	end := start + int(entry.BytesInRes)
	if start < 0 || end > len(data) || start > end {
		return nil, fmt.Errorf("resfmt: icon/cursor entry data out of bounds")
	}
	return data[start:end], nil
}

// WriteGroupDirEntry encodes one 14-byte GROUP_ICON/GROUP_CURSOR directory
// entry: the ICO entry's fields, but with a 16-bit sub-resource id in
// place of the 32-bit file offset (spec.md §4.5).
func WriteGroupDirEntry(e IconDirEntry, id uint16) []byte {
	buf := make([]byte, 14)
	buf[0] = e.Width
	buf[1] = e.Height
	buf[2] = e.ColorCount
	buf[3] = e.Reserved
	binary.LittleEndian.PutUint16(buf[4:6], e.Planes)
	binary.LittleEndian.PutUint16(buf[6:8], e.BitCount)
	binary.LittleEndian.PutUint32(buf[8:12], e.BytesInRes)
	binary.LittleEndian.PutUint16(buf[12:14], id)
	return buf
}

// WriteGroupDirHeader encodes the 6-byte directory header preceding a
// GROUP_ICON/GROUP_CURSOR resource's entries.
func WriteGroupDirHeader(typ uint16, count uint16) []byte {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint16(buf[0:2], 0)
	binary.LittleEndian.PutUint16(buf[2:4], typ)
	binary.LittleEndian.PutUint16(buf[4:6], count)
	return buf
}
