package resfmt

import (
	"encoding/binary"
	"fmt"
)

const bitmapFileHeaderSize = 14

// TrimBitmapFileHeader validates and strips the 14-byte BITMAPFILEHEADER
// from a .bmp file's bytes, per spec.md §4.5: the header size declared by
// the following BITMAPINFOHEADER/BITMAPV4/V5 structure must be exactly 12
// or at least 40; the declared palette (biClrUsed * paletteEntrySize) must
// not exceed the remaining bytes — the reference compiler's over-read
// miscompile for an oversized palette is refused rather than reproduced
// (spec.md §4.5, §9).
func TrimBitmapFileHeader(data []byte) ([]byte, error) {
	if len(data) < bitmapFileHeaderSize+4 {
		return nil, fmt.Errorf("resfmt: bitmap file truncated")
	}
	body := data[bitmapFileHeaderSize:]
	infoHeaderSize := binary.LittleEndian.Uint32(body[0:4])
	if infoHeaderSize != 12 && infoHeaderSize < 40 {
		return nil, fmt.Errorf("resfmt: unrecognized bitmap header size %d", infoHeaderSize)
	}

	if infoHeaderSize >= 40 && len(body) >= 40 {
		bitCount := binary.LittleEndian.Uint16(body[14:16])
		clrUsed := binary.LittleEndian.Uint32(body[32:36])
		if clrUsed > 0 && bitCount <= 8 {
			paletteEntrySize := uint32(4) // RGBQUAD
			paletteBytes := uint64(clrUsed) * uint64(paletteEntrySize)
			headerAndPalette := uint64(infoHeaderSize) + paletteBytes
			if headerAndPalette > uint64(len(body)) {
				return nil, fmt.Errorf("resfmt: declared palette (%d entries) exceeds file bounds", clrUsed)
			}
		}
	}
	return body, nil
}
