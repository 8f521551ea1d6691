package litr

import (
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyOrdinal(t *testing.T) {
	tests := []struct {
		text string
		want uint16
	}{
		{"1", 1},
		{"100", 100},
		{"0x10", 0x10},
		{"0x1234", 0x1234},
		{"0x12345", 0x1234}, // only first 4 hex digits
		{"1¹", 11},
	}
	for _, tt := range tests {
		got := Classify([]byte(tt.text))
		if !got.IsOrdinal() {
			t.Errorf("Classify(%q) = Name, want Ordinal(%d)", tt.text, tt.want)
			continue
		}
		if got.Ordinal != tt.want {
			t.Errorf("Classify(%q).Ordinal = %d, want %d", tt.text, got.Ordinal, tt.want)
		}
	}
}

func TestClassifyNameFallback(t *testing.T) {
	tests := []string{"IDC_MAIN", "MyDialog", "0", "1x", "1,2"}
	for _, text := range tests {
		got := Classify([]byte(text))
		if got.IsOrdinal() {
			t.Errorf("Classify(%q) = Ordinal(%d), want Name", text, got.Ordinal)
		}
	}
}

func TestClassifyNameUppercasesASCII(t *testing.T) {
	got := Classify([]byte("myDialog"))
	want := NameOrOrdinal{Kind: NameKind, Name: utf16.Encode([]rune("MYDIALOG"))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify(%q) mismatch (-want +got):\n%s", "myDialog", diff)
	}
}

func TestClassifyNonASCIIPreservedAsUTF16(t *testing.T) {
	got := Classify([]byte("café"))
	want := NameOrOrdinal{Kind: NameKind, Name: utf16.Encode([]rune("CAFé"))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify(%q) mismatch (-want +got):\n%s", "café", diff)
	}
}

func TestClassifyNameTruncatedAt256Units(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'A'
	}
	got := Classify(long)
	if got.IsOrdinal() {
		t.Fatalf("Classify(300 A's) = Ordinal, want Name")
	}
	if len(got.Name) != MaxNameCodeUnits {
		t.Errorf("len(Name) = %d, want %d", len(got.Name), MaxNameCodeUnits)
	}
}
