package helpers

import (
	"math/big"
	"testing"
)

func TestShortenAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0xABCDEF1234567890", "0xABCD...7890"},
		{"0x829ee0644aa28E6002E357A1F41a6CCBb521fb30", "0x829e...fb30"},
		{"0x1234", "0x1234"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ShortenAddr(tt.in); got != tt.want {
			t.Errorf("ShortenAddr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortenAddrShape(t *testing.T) {
	addrs := []string{
		"0xABCDEF1234567890",
		"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		"0123456789",
	}
	for _, addr := range addrs {
		got := ShortenAddr(addr)
		want := addr[:6] + "..." + addr[len(addr)-4:]
		if got != want {
			t.Errorf("ShortenAddr(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestFormatToken(t *testing.T) {
	oneAndHalf, _ := new(big.Int).SetString("1500000000000000000", 10)

	tests := []struct {
		name     string
		balance  *big.Int
		decimals uint8
		symbol   string
		want     string
	}{
		{"nil balance", nil, 18, "MANTA", "0.0000 MANTA"},
		{"zero", big.NewInt(0), 18, "MANTA", "0.0000 MANTA"},
		{"one and a half", oneAndHalf, 18, "MANTA", "1.5000 MANTA"},
		{"six decimals", big.NewInt(2_500_000), 6, "USDC", "2.5000 USDC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatToken(tt.balance, tt.decimals, tt.symbol); got != tt.want {
				t.Errorf("FormatToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
