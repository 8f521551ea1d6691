package resfmt

import (
	"encoding/binary"
	"testing"
)

func makeIconDir(typ uint16, entries []IconDirEntry) []byte {
	buf := make([]byte, 6+len(entries)*16)
	binary.LittleEndian.PutUint16(buf[2:4], typ)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(entries)))
	for i, e := range entries {
		off := 6 + i*16
		buf[off+0] = e.Width
		buf[off+1] = e.Height
		buf[off+2] = e.ColorCount
		buf[off+3] = e.Reserved
		binary.LittleEndian.PutUint16(buf[off+4:off+6], e.Planes)
		binary.LittleEndian.PutUint16(buf[off+6:off+8], e.BitCount)
		binary.LittleEndian.PutUint32(buf[off+8:off+12], e.BytesInRes)
		binary.LittleEndian.PutUint32(buf[off+12:off+16], e.ImageOffset)
	}
	return buf
}

func TestParseIconDirRoundTripsEntries(t *testing.T) {
	want := IconDirEntry{Width: 32, Height: 32, ColorCount: 0, BitCount: 32, BytesInRes: 744, ImageOffset: 22}
	data := makeIconDir(1, []IconDirEntry{want})
	dir, err := ParseIconDir(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.Type != 1 {
		t.Errorf("Type = %d, want 1", dir.Type)
	}
	if len(dir.Entries) != 1 || dir.Entries[0] != want {
		t.Errorf("Entries = %+v, want [%+v]", dir.Entries, want)
	}
}

func TestParseIconDirRejectsBadHeader(t *testing.T) {
	data := makeIconDir(1, nil)
	binary.LittleEndian.PutUint16(data[0:2], 1) // reserved must be 0
	if _, err := ParseIconDir(data); err == nil {
		t.Fatalf("expected an error for a non-zero reserved field")
	}
}

func TestParseIconDirRejectsTruncatedEntries(t *testing.T) {
	data := makeIconDir(1, []IconDirEntry{{}})
	data = data[:len(data)-4]
	if _, err := ParseIconDir(data); err == nil {
		t.Fatalf("expected an error for truncated entry table")
	}
}

func TestImageDataExtractsSlice(t *testing.T) {
	entry := IconDirEntry{ImageOffset: 2, BytesInRes: 3}
	data := []byte{0, 0, 0xAA, 0xBB, 0xCC, 0}
	got, err := IconDir{}.ImageData(data, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xAA, 0xBB, 0xCC}
	if string(got) != string(want) {
		t.Errorf("ImageData = %v, want %v", got, want)
	}
}

func TestImageDataRejectsOutOfBounds(t *testing.T) {
	entry := IconDirEntry{ImageOffset: 10, BytesInRes: 100}
	data := []byte{1, 2, 3}
	if _, err := (IconDir{}).ImageData(data, entry); err == nil {
		t.Fatalf("expected an out-of-bounds error")
	}
}

func TestWriteGroupDirEntryEncodesIDNotOffset(t *testing.T) {
	e := IconDirEntry{Width: 16, Height: 16, ColorCount: 0, Planes: 1, BitCount: 8, BytesInRes: 1128}
	got := WriteGroupDirEntry(e, 7)
	if len(got) != 14 {
		t.Fatalf("len = %d, want 14", len(got))
	}
	if id := binary.LittleEndian.Uint16(got[12:14]); id != 7 {
		t.Errorf("id field = %d, want 7", id)
	}
	if bytesInRes := binary.LittleEndian.Uint32(got[8:12]); bytesInRes != 1128 {
		t.Errorf("BytesInRes field = %d, want 1128", bytesInRes)
	}
}

func TestWriteGroupDirHeaderEncodesTypeAndCount(t *testing.T) {
	got := WriteGroupDirHeader(2, 3)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if typ := binary.LittleEndian.Uint16(got[2:4]); typ != 2 {
		t.Errorf("type = %d, want 2", typ)
	}
	if count := binary.LittleEndian.Uint16(got[4:6]); count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
