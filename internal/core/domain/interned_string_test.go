package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/wsu/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	name1 := domain.NewInternedString("core")
	name2 := domain.NewInternedString("core")

	if name1.Value() != name2.Value() {
		t.Errorf("expected handles to be equal for identical package names, got %v and %v", name1.Value(), name2.Value())
	}

	if name1.String() != "core" {
		t.Errorf("expected String() to return %q, got %q", "core", name1.String())
	}
}

func TestInternedString_Equal(t *testing.T) {
	core1 := domain.NewInternedString("core")
	core2 := domain.NewInternedString("core")
	app := domain.NewInternedString("app")

	if !core1.Equal(core2) {
		t.Error("expected Equal to report true for two package names interned from the same string")
	}
	if core1.Equal(app) {
		t.Error("expected Equal to report false for distinct package names")
	}

	var zero1, zero2 domain.InternedString
	if !zero1.Equal(zero2) {
		t.Error("expected two zero-value InternedStrings to be Equal")
	}
}

func TestInternedStringJSON(t *testing.T) {
	t.Run("marshal and unmarshal preserve the package name", func(t *testing.T) {
		original := domain.NewInternedString("lib1")

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("failed to marshal InternedString: %v", err)
		}

		expectedJSON := `"lib1"`
		if string(data) != expectedJSON {
			t.Errorf("expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled domain.InternedString
		if err := json.Unmarshal(data, &unmarshaled); err != nil {
			t.Fatalf("failed to unmarshal InternedString: %v", err)
		}

		if unmarshaled.String() != original.String() {
			t.Errorf("expected unmarshaled string %q, got %q", original.String(), unmarshaled.String())
		}
	})

	t.Run("marshal and unmarshal as a struct field", func(t *testing.T) {
		type packageRef struct {
			Name domain.InternedString `json:"name"`
		}

		original := packageRef{Name: domain.NewInternedString("app")}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("failed to marshal struct: %v", err)
		}

		expectedJSON := `{"name":"app"}`
		if string(data) != expectedJSON {
			t.Errorf("expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled packageRef
		if err := json.Unmarshal(data, &unmarshaled); err != nil {
			t.Fatalf("failed to unmarshal struct: %v", err)
		}

		if unmarshaled.Name.String() != original.Name.String() {
			t.Errorf("expected unmarshaled name %q, got %q", original.Name.String(), unmarshaled.Name.String())
		}
	})
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("interns every element, preserving order", func(t *testing.T) {
		names := []string{"core", "lib1", "app"}

		interned := domain.NewInternedStrings(names)

		if len(interned) != len(names) {
			t.Errorf("expected %d interned strings, got %d", len(names), len(interned))
		}
		for i, expected := range names {
			if interned[i].String() != expected {
				t.Errorf("expected interned string at index %d to be %q, got %q", i, expected, interned[i].String())
			}
		}
	})

	t.Run("empty slice returns empty slice", func(t *testing.T) {
		interned := domain.NewInternedStrings([]string{})

		if len(interned) != 0 {
			t.Errorf("expected empty slice, got %d elements", len(interned))
		}
	})

	t.Run("repeated names share a handle", func(t *testing.T) {
		interned := domain.NewInternedStrings([]string{"core", "core"})

		if interned[0].Value() != interned[1].Value() {
			t.Error("expected handles to be equal for identical package names")
		}
	})
}
