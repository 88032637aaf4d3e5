package taxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid bare digits", "11144477735", true},
		{"valid punctuated", "529.982.247-25", true},
		{"punctuation ignored", "111.444.777-35", true},
		{"repeated digits pass checksum but are rejected", "11111111111", false},
		{"wrong check digits", "12345678900", false},
		{"second check digit wrong", "11144477734", false},
		{"too short", "1114447773", false},
		{"too long", "111444777355", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
		{"digits buried in garbage still validate", "cpf: 529.982.247-25!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.cpf))
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want bool
	}{
		{"valid punctuated", "11.222.333/0001-81", true},
		{"valid bare digits", "11222333000181", true},
		{"another valid registration", "00.000.000/0001-91", true},
		{"repeated digits rejected", "11.111.111/1111-11", false},
		{"wrong check digit", "11.222.333/0001-80", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
		{"cpf length input", "11144477735", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCNPJ(tt.cnpj))
		})
	}
}
