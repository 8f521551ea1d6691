package resfmt

import (
	"encoding/binary"
	"testing"
)

func makeBMP(infoHeaderSize uint32, bitCount uint16, clrUsed uint32, extra int) []byte {
	data := make([]byte, bitmapFileHeaderSize+40+extra)
	binary.LittleEndian.PutUint32(data[bitmapFileHeaderSize:], infoHeaderSize)
	binary.LittleEndian.PutUint16(data[bitmapFileHeaderSize+14:], bitCount)
	binary.LittleEndian.PutUint32(data[bitmapFileHeaderSize+32:], clrUsed)
	return data
}

func TestTrimBitmapFileHeaderStripsHeader(t *testing.T) {
	data := makeBMP(40, 24, 0, 0)
	body, err := TrimBitmapFileHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != len(data)-bitmapFileHeaderSize {
		t.Errorf("len(body) = %d, want %d", len(body), len(data)-bitmapFileHeaderSize)
	}
}

func TestTrimBitmapFileHeaderRejectsUnrecognizedHeaderSize(t *testing.T) {
	data := makeBMP(20, 24, 0, 0)
	_, err := TrimBitmapFileHeader(data)
	if err == nil {
		t.Fatalf("expected an error for unrecognized header size 20")
	}
}

func TestTrimBitmapFileHeaderRejectsOversizedPalette(t *testing.T) {
	data := makeBMP(40, 8, 1000, 0) // 1000 palette entries * 4 bytes = way past file bounds
	_, err := TrimBitmapFileHeader(data)
	if err == nil {
		t.Fatalf("expected an error for a palette declared beyond file bounds")
	}
}

func TestTrimBitmapFileHeaderTruncatedFile(t *testing.T) {
	_, err := TrimBitmapFileHeader([]byte{1, 2, 3})
	if err == nil {
		t.Fatalf("expected an error for a truncated file")
	}
}
