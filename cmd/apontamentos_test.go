package cmd

import (
	"testing"

	"apontador/internal/apontamento"
)

func TestDescribeApontamento(t *testing.T) {
	a := apontamento.Apontamento{
		FuncionarioID:   7,
		FuncionarioNome: "João",
		OrdemID:         "OP-0001.01",
		Data:            "01/01/2024",
		HoraInicio:      "08:00",
		HoraFim:         "17:00",
	}
	got := describeApontamento(a)
	want := "01/01/2024 08:00–17:00  OS OP-0001.01"
	if got != want {
		t.Errorf("describeApontamento = %q, want %q", got, want)
	}
}

func TestChosenIndex(t *testing.T) {
	tests := []struct {
		choice  string
		n       int
		want    int
		wantErr bool
	}{
		{"0", 3, 0, false},
		{"2", 3, 2, false},
		{"3", 3, 0, true},
		{"-1", 3, 0, true},
		{"", 3, 0, true},
		{"abc", 3, 0, true},
	}
	for _, tt := range tests {
		got, err := chosenIndex(tt.choice, tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("chosenIndex(%q, %d) error = %v, wantErr %v", tt.choice, tt.n, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("chosenIndex(%q, %d) = %d, want %d", tt.choice, tt.n, got, tt.want)
		}
	}
}
