package okto8_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KaComet/okto8"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x0123, "SYS 123"},
		{0x1ABC, "JP ABC"},
		{0x2200, "CALL 200"},
		{0x3A7F, "SE VA, 7F"},
		{0x4A7F, "SNE VA, 7F"},
		{0x5120, "SE V1, V2"},
		{0x6AFF, "LD VA, FF"},
		{0x7A01, "ADD VA, 01"},
		{0x8120, "LD V1, V2"},
		{0x8121, "OR V1, V2"},
		{0x8122, "AND V1, V2"},
		{0x8123, "XOR V1, V2"},
		{0x8124, "ADD V1, V2"},
		{0x8125, "SUB V1, V2"},
		{0x8126, "SHR V1"},
		{0x8127, "SUBN V1, V2"},
		{0x812E, "SHL V1"},
		{0x9120, "SNE V1, V2"},
		{0xA300, "LD I, 300"},
		{0xB300, "JP V0, 300"},
		{0xC40F, "RND V4, 0F"},
		{0xD125, "DRW V1, V2, 5"},
		{0xE19E, "SKP V1"},
		{0xE1A1, "SKNP V1"},
		{0xF307, "LD V3, DT"},
		{0xF30A, "LD V3, K"},
		{0xF315, "LD DT, V3"},
		{0xF318, "LD ST, V3"},
		{0xF31E, "ADD I, V3"},
		{0xF329, "LD F, V3"},
		{0xF333, "LD B, V3"},
		{0xF355, "LD [I], V3"},
		{0xF365, "LD V3, [I]"},
		{0x5121, "DW 5121"},
		{0x8128, "DW 8128"},
		{0xE1FF, "DW E1FF"},
		{0xF3FF, "DW F3FF"},
	}

	for _, tt := range tests {
		if got := okto8.Disassemble(tt.word); got != tt.want {
			t.Errorf(`Disassemble(%04X) = %q, expected %q`, tt.word, got, tt.want)
		}
	}
}

func TestDisassembleProgram(t *testing.T) {
	program := []byte{
		0x00, 0xE0,
		0x6A, 0x05,
		0xD0, 0x11,
		0x12, 0x00,
	}

	out := bytes.Buffer{}
	if err := okto8.DisassembleProgram(bytes.NewReader(program), &out); err != nil {
		t.Fatalf(`DisassembleProgram() returned an error %v`, err)
	}

	want := strings.Join([]string{
		"200  00E0  CLS",
		"202  6A05  LD VA, 05",
		"204  D011  DRW V0, V1, 1",
		"206  1200  JP 200",
		"",
	}, "\n")

	if out.String() != want {
		t.Errorf("listing mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestDisassembleProgramOddTrailingByte(t *testing.T) {
	program := []byte{
		0x00, 0xE0,
		0xAB,
	}

	out := bytes.Buffer{}
	if err := okto8.DisassembleProgram(bytes.NewReader(program), &out); err != nil {
		t.Fatalf(`DisassembleProgram() returned an error %v`, err)
	}

	if !strings.Contains(out.String(), "DB AB") {
		t.Errorf("listing %q does not carry the trailing byte as raw data", out.String())
	}
}
