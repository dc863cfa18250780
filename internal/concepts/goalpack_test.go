package concepts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseGoalPack_Valid(t *testing.T) {
	raw := []byte(`{
		"id": "times-tables-extra",
		"title": "Times tables",
		"concepts": ["mult-facts-10", "div-facts-10"]
	}`)
	pack, err := ParseGoalPack(raw)
	if err != nil {
		t.Fatal(err)
	}
	if pack.ID != "times-tables-extra" || len(pack.Concepts) != 2 {
		t.Errorf("pack = %+v", pack)
	}
}

func TestParseGoalPack_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{`},
		{"missing id", `{"concepts": ["mult-facts-10"]}`},
		{"empty id", `{"id": "", "concepts": ["mult-facts-10"]}`},
		{"missing concepts", `{"id": "x"}`},
		{"empty concepts", `{"id": "x", "concepts": []}`},
		{"unknown field", `{"id": "x", "concepts": ["a"], "reward": 10}`},
	}
	for _, tt := range tests {
		if _, err := ParseGoalPack([]byte(tt.raw)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadGoalPackFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	raw := []byte(`{"id": "custom", "concepts": ["fractions-unit", "fraction-mult"]}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cat := NewSeedCatalog()
	pack, err := LoadGoalPackFile(cat, path)
	if err != nil {
		t.Fatal(err)
	}
	if pack.ID != "custom" {
		t.Errorf("pack id = %q", pack.ID)
	}

	nodes, err := cat.OrderedByGoal("custom")
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Errorf("goal resolves to %d concepts, want 2", len(nodes))
	}
}

func TestLoadGoalPackFile_UnknownConceptNotRegistered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	raw := []byte(`{"id": "ghost", "concepts": ["not-a-concept"]}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cat := NewSeedCatalog()
	if _, err := LoadGoalPackFile(cat, path); err == nil {
		t.Fatal("expected error for unknown concept")
	}
	if _, err := cat.OrderedByGoal("ghost"); err == nil {
		t.Error("failed pack should not be registered")
	}
}
