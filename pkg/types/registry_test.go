package types

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kbaseapps/assembly-params/pkg/types/spades"
)

func TestNew_AllNames(t *testing.T) {
	tests := []struct {
		name     string
		wantType string
	}{
		{SPAdesParams, "*spades.SPAdesParams"},
		{ReadsParams, "*spades.ReadsParams"},
		{LongReadsParams, "*spades.LongReadsParams"},
		{HybridSPAdesParams, "*spades.HybridSPAdesParams"},
		{MetaSPAdesEstimate, "*spades.MetaSPAdesEstimate"},
		{MetaSPAdesEstimatorParams, "*spades.MetaSPAdesEstimatorParams"},
		{AssemblyOutput, "*spades.AssemblyOutput"},
		{LegacySPAdesParams, "*gaprice.SPAdesParams"},
		{UnicyclerParams, "*unicycler.UnicyclerParams"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := New(tt.name)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.name, err)
			}
			if got := fmt.Sprintf("%T", rec); got != tt.wantType {
				t.Errorf("New(%q) = %s, want %s", tt.name, got, tt.wantType)
			}
			out, err := rec.MarshalJSON()
			if err != nil {
				t.Fatalf("marshal empty: %v", err)
			}
			if string(out) != "{}" {
				t.Errorf("empty record encodes as %s", out)
			}
		})
	}
	if len(Names()) != len(tests) {
		t.Errorf("Names() has %d entries, want %d", len(Names()), len(tests))
	}
}

func TestNew_UnknownName(t *testing.T) {
	_, err := New("kb_SPAdes.Nope")
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !strings.Contains(err.Error(), "kb_SPAdes.Nope") {
		t.Errorf("error should name the type: %v", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestDecode(t *testing.T) {
	rec, err := Decode(SPAdesParams, []byte(`{"workspace_name":"ws","foo":"bar"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	p := rec.(*spades.SPAdesParams)
	if p.GetWorkspaceName() != "ws" {
		t.Errorf("workspace_name = %q", p.GetWorkspaceName())
	}
	if _, err := Decode(SPAdesParams, []byte(`[1,2]`)); err == nil {
		t.Error("expected error decoding an array")
	}
	if _, err := Decode("x.Y", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown type")
	}
}
