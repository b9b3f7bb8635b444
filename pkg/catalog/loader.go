package catalog

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a catalog from a YAML file. If the file doesn't exist, the
// built-in defaults are returned (not an error) so deployments work without
// any configuration files. Lists missing from the file fall back to their
// default values, so a partial override only replaces what it names.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var loaded Catalog
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	cat := Default()
	if len(loaded.BlockedDomains) > 0 {
		cat.BlockedDomains = loaded.BlockedDomains
	}
	if len(loaded.SuspiciousExtensions) > 0 {
		cat.SuspiciousExtensions = loaded.SuspiciousExtensions
	}
	if len(loaded.ScamKeywords) > 0 {
		cat.ScamKeywords = loaded.ScamKeywords
	}
	if len(loaded.PrizeKeywords) > 0 {
		cat.PrizeKeywords = loaded.PrizeKeywords
	}
	if len(loaded.BankingKeywords) > 0 {
		cat.BankingKeywords = loaded.BankingKeywords
	}
	if len(loaded.Shorteners) > 0 {
		cat.Shorteners = loaded.Shorteners
	}

	logrus.WithFields(logrus.Fields{
		"path":            path,
		"blocked_domains": len(cat.BlockedDomains),
		"scam_keywords":   len(cat.ScamKeywords),
	}).Info("catalog loaded from file")

	return cat, nil
}
