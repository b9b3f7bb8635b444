package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCatalogPopulated(t *testing.T) {
	cat := Default()

	if len(cat.BlockedDomains) == 0 {
		t.Error("BlockedDomains should not be empty")
	}
	if len(cat.SuspiciousExtensions) == 0 {
		t.Error("SuspiciousExtensions should not be empty")
	}
	if len(cat.ScamKeywords) == 0 {
		t.Error("ScamKeywords should not be empty")
	}
	if len(cat.PrizeKeywords) == 0 {
		t.Error("PrizeKeywords should not be empty")
	}
	if len(cat.BankingKeywords) == 0 {
		t.Error("BankingKeywords should not be empty")
	}
	if len(cat.Shorteners) == 0 {
		t.Error("Shorteners should not be empty")
	}

	for _, ext := range cat.SuspiciousExtensions {
		if ext == "" || ext[0] != '.' {
			t.Errorf("extension %q should be dot-prefixed", ext)
		}
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cat, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile returned error for missing file: %v", err)
	}
	if !reflect.DeepEqual(cat, Default()) {
		t.Error("missing file should fall back to the default catalog")
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte("blocked_domains:\n  - golpe-total.com\nshorteners:\n  - enc.url\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	if !reflect.DeepEqual(cat.BlockedDomains, []string{"golpe-total.com"}) {
		t.Errorf("BlockedDomains = %v, want the override", cat.BlockedDomains)
	}
	if !reflect.DeepEqual(cat.Shorteners, []string{"enc.url"}) {
		t.Errorf("Shorteners = %v, want the override", cat.Shorteners)
	}
	// Lists the file doesn't name keep their defaults.
	if !reflect.DeepEqual(cat.ScamKeywords, Default().ScamKeywords) {
		t.Error("ScamKeywords should keep defaults when not overridden")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("blocked_domains: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	before := len(base.BlockedDomains)

	merged := base.Merge([]string{"novo-golpe.com", "pix-premio.com", "", "novo-golpe.com"})

	if len(merged.BlockedDomains) != before+1 {
		t.Errorf("merged has %d blocked domains, want %d (dedup + skip empty)",
			len(merged.BlockedDomains), before+1)
	}
	if merged.BlockedDomains[len(merged.BlockedDomains)-1] != "novo-golpe.com" {
		t.Error("new domain should be appended at the end")
	}
	if len(base.BlockedDomains) != before {
		t.Error("Merge must not modify the receiver")
	}
}
