// Package catalog holds the static signal data used by the risk analyzer:
// blocked domains, suspicious extensions, keyword lists and known URL
// shorteners. A Catalog is assembled once at process start and treated as
// immutable afterwards.
package catalog

// Catalog is the full set of fraud signals available to the analyzer.
type Catalog struct {
	// BlockedDomains are hostnames (or hostname fragments) of known scam sites.
	BlockedDomains []string `yaml:"blocked_domains"`

	// SuspiciousExtensions are dot-prefixed TLDs rarely used by legitimate
	// businesses, e.g. ".top".
	SuspiciousExtensions []string `yaml:"suspicious_extensions"`

	// ScamKeywords are urgency/threat phrases common in Brazilian scams.
	ScamKeywords []string `yaml:"scam_keywords"`

	// PrizeKeywords are prize/easy-money phrases.
	PrizeKeywords []string `yaml:"prize_keywords"`

	// BankingKeywords name Brazilian banking institutions. Kept as reference
	// data for consumers of the catalog; the analyzer does not score them.
	BankingKeywords []string `yaml:"banking_keywords"`

	// Shorteners are hostnames of well-known URL shortening services.
	Shorteners []string `yaml:"shorteners"`
}

// defaultBlockedDomains provides hardcoded fallback data when no YAML catalog
// is available. This ensures the analyzer always works without config files.
var defaultBlockedDomains = []string{
	"pix-premio.com",
	"suporte-conta-bancaria.net",
	"premio-caixa2025.com",
	"atendimento-seguranca-br.com",
	"resgate-milhas-hoje.net",
	"promo-app-banco.xyz",
	"verificacao-obrigatoria.top",
	"correios-taxa-pendente.com",
}

var defaultSuspiciousExtensions = []string{
	".xyz", ".top", ".link", ".club", ".info", ".online", ".site", ".live",
	".gq", ".cf", ".tk", ".ml", ".ga",
}

var defaultScamKeywords = []string{
	"urgente",
	"bloqueio",
	"bloqueada",
	"suspensa",
	"atualize seus dados",
	"atualização cadastral",
	"senha expirou",
	"conta será encerrada",
	"cancelamento",
	"evite multa",
	"nome no serasa",
	"sujo",
	"restrição",
	"clique imediatamente",
	"reconhecimento facial",
	"biometria",
}

var defaultPrizeKeywords = []string{
	"parabéns",
	"você ganhou",
	"selecionado",
	"sorteio",
	"resgate agora",
	"pix premiado",
	"dinheiro fácil",
	"renda extra",
	"trabalhe de casa",
	"lucro garantido",
}

var defaultBankingKeywords = []string{
	"caixa",
	"bradesco",
	"itau",
	"nubank",
	"santander",
	"banco do brasil",
	"inter",
	"febraban",
	"banco central",
}

var defaultShorteners = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "t.co", "is.gd",
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		BlockedDomains:       defaultBlockedDomains,
		SuspiciousExtensions: defaultSuspiciousExtensions,
		ScamKeywords:         defaultScamKeywords,
		PrizeKeywords:        defaultPrizeKeywords,
		BankingKeywords:      defaultBankingKeywords,
		Shorteners:           defaultShorteners,
	}
}

// Merge returns a new catalog with extra blocked domains appended. Entries
// already present are skipped. The receiver is not modified.
func (c *Catalog) Merge(blockedDomains []string) *Catalog {
	out := *c
	seen := make(map[string]bool, len(c.BlockedDomains))
	merged := make([]string, 0, len(c.BlockedDomains)+len(blockedDomains))
	for _, d := range c.BlockedDomains {
		seen[d] = true
		merged = append(merged, d)
	}
	for _, d := range blockedDomains {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		merged = append(merged, d)
	}
	out.BlockedDomains = merged
	return &out
}
