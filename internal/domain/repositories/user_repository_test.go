package repositories

import "testing"

func TestParseActiveFilter(t *testing.T) {
	tests := []struct {
		raw      string
		expected ActiveFilter
		ok       bool
	}{
		{"", ActiveAny, true},
		{"all", ActiveAny, true},
		{"ALL", ActiveAny, true},
		{"true", ActiveOnly, true},
		{"false", InactiveOnly, true},
		{"-1", ActiveAny, false},
		{"sim", ActiveAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			filter, ok := ParseActiveFilter(tt.raw)
			if filter != tt.expected || ok != tt.ok {
				t.Errorf("para '%s', esperava (%v, %v), obteve (%v, %v)", tt.raw, tt.expected, tt.ok, filter, ok)
			}
		})
	}
}

func TestActiveFilter_Value(t *testing.T) {
	if _, ok := ActiveAny.Value(); ok {
		t.Error("ActiveAny não deveria filtrar")
	}
	if v, ok := ActiveOnly.Value(); !ok || !v {
		t.Error("ActiveOnly deveria filtrar active = true")
	}
	if v, ok := InactiveOnly.Value(); !ok || v {
		t.Error("InactiveOnly deveria filtrar active = false")
	}
}

func TestParseSortColumn(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"id", "id"},
		{"name", "name"},
		{"email", "email"},
		{"", "id"},
		{"password", "id"},
		{"; DROP TABLE users", "id"},
		{"NAME", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseSortColumn(tt.raw).Column(); got != tt.expected {
				t.Errorf("para '%s', esperava coluna '%s', obteve '%s'", tt.raw, tt.expected, got)
			}
		})
	}
}
