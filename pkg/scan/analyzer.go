// Package scan implements the fraud-risk scoring engine: a deterministic
// local analyzer over text and embedded URLs, and the fusion policy that
// merges an optional external classifier verdict into the local result.
package scan

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/detetive-digital/detetive/pkg/catalog"
)

// Penalties subtracted from the starting score of 100. The blacklist and
// numeric-IP penalties can each floor the score on their own; they are kept
// as subtractions (not short-circuits) so weaker signals can still stack to
// the same floor.
const (
	penaltyPerKeyword    = 15
	penaltyBlacklist     = 100
	penaltyInsecureHTTP  = 20
	penaltyDigitDomain   = 25
	penaltyHyphenDomain  = 20
	penaltySuspiciousTLD = 30
	penaltyNumericIP     = 80
	penaltyShortener     = 15
	penaltyMalformedURL  = 10
)

// shortTextThreshold is the rune count under which a URL-less message gets
// the advisory "too short" finding. No score penalty applies.
const shortTextThreshold = 10

// ipv4Pattern matches a strict dotted quad: four groups of 1-3 digits,
// digits and dots only. Octet ranges are intentionally not validated.
var ipv4Pattern = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`)

var summaryByTier = map[RiskTier]string{
	TierDangerous:  "CUIDADO! O nível de segurança é muito baixo. Há fortes indícios de tentativa de golpe.",
	TierSuspicious: "ATENÇÃO. O nível de segurança é moderado. Encontramos sinais suspeitos, tenha cautela.",
	TierSafe:       "Nenhum sinal de fraude foi detectado nos padrões analisados. O conteúdo parece legítimo.",
}

// Analyzer applies the signal catalog to user-submitted text. It is pure
// computation over its input and the catalog: no I/O, no shared mutable
// state, safe for concurrent use.
type Analyzer struct {
	catalog *catalog.Catalog
}

// NewAnalyzer creates an analyzer over the given catalog. Passing nil uses
// the built-in default catalog.
func NewAnalyzer(cat *catalog.Catalog) *Analyzer {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Analyzer{catalog: cat}
}

// Analyze scores text for fraud signals. It accepts any string, including
// empty or whitespace-only input, and never fails: the only malformed-input
// path (a URL substring that doesn't parse) is folded into the score as a
// penalized finding.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	score := 100
	var findings []Finding

	lowerText := strings.ToLower(normalizeText(text))
	rawURL := ExtractURL(text)

	// Keyword signals. Each catalog entry counts once regardless of how many
	// times it appears; matching is substring containment, not word-boundary.
	urgentCount := countMatches(lowerText, a.catalog.ScamKeywords)
	prizeCount := countMatches(lowerText, a.catalog.PrizeKeywords)

	if urgentCount > 0 {
		score -= urgentCount * penaltyPerKeyword
		findings = append(findings, Finding{
			ID:      "urgent_words",
			Message: fmt.Sprintf("Encontramos %d palavra(s) que indicam urgência ou ameaça (comum em golpes).", urgentCount),
			Source:  SourceKeyword,
		})
	}

	if prizeCount > 0 {
		score -= prizeCount * penaltyPerKeyword
		findings = append(findings, Finding{
			ID:      "prize_words",
			Message: fmt.Sprintf("Encontramos %d termo(s) prometendo prêmios ou dinheiro fácil.", prizeCount),
			Source:  SourceKeyword,
		})
	}

	// URL signals. All applicable checks run unconditionally; penalties stack.
	if rawURL != "" {
		if u, ok := parseURL(rawURL); ok {
			score = a.scoreURL(u, score, &findings)
		} else {
			score -= penaltyMalformedURL
			findings = append(findings, Finding{
				ID:      "invalid_url",
				Message: "O link parece estar mal formatado ou quebrado.",
				Source:  SourceHeuristic,
			})
		}
	} else if utf8.RuneCountInString(strings.TrimSpace(lowerText)) < shortTextThreshold {
		// Advisory only, no penalty.
		findings = append(findings, Finding{
			ID:      "short_text",
			Message: "O texto é muito curto para uma análise precisa.",
			Source:  SourceHeuristic,
		})
	}

	score = clamp(score, 0, 100)
	tier := TierOf(score)

	return AnalysisResult{
		Score:        score,
		RiskTier:     tier,
		Findings:     findings,
		Summary:      summaryByTier[tier],
		ExtractedURL: rawURL,
	}
}

// scoreURL runs the URL checks in fixed order against an already-parsed URL
// and returns the adjusted score.
func (a *Analyzer) scoreURL(u *url.URL, score int, findings *[]Finding) int {
	host := strings.ToLower(u.Hostname())

	for _, blocked := range a.catalog.BlockedDomains {
		if strings.Contains(host, blocked) {
			score -= penaltyBlacklist
			*findings = append(*findings, Finding{
				ID:      "blacklist",
				Message: fmt.Sprintf("O domínio %s está em nossa lista de sites perigosos conhecidos.", host),
				Source:  SourceBlacklist,
			})
			break
		}
	}

	if u.Scheme == "http" {
		score -= penaltyInsecureHTTP
		*findings = append(*findings, Finding{
			ID:      "http",
			Message: "O link não usa conexão segura (HTTPS). Sites oficiais de bancos usam sempre HTTPS.",
			Source:  SourceProtocol,
		})
	}

	if countDigits(host) > 3 {
		score -= penaltyDigitDomain
		*findings = append(*findings, Finding{
			ID:      "numbers_domain",
			Message: "O endereço do site contém muitos números, o que é muito suspeito.",
			Source:  SourceDomain,
		})
	}

	if strings.Count(host, "-") > 2 {
		score -= penaltyHyphenDomain
		*findings = append(*findings, Finding{
			ID:      "hyphens_domain",
			Message: "O endereço contém muitos hífens (-), técnica comum para imitar sites oficiais.",
			Source:  SourceDomain,
		})
	}

	for _, ext := range a.catalog.SuspiciousExtensions {
		if strings.HasSuffix(host, ext) {
			score -= penaltySuspiciousTLD
			*findings = append(*findings, Finding{
				ID:      "suspicious_extension",
				Message: fmt.Sprintf("O site termina com uma extensão incomum (%s), raramente usada por empresas sérias.", trailingLabel(host)),
				Source:  SourceDomain,
			})
			break
		}
	}

	if ipv4Pattern.MatchString(host) {
		score -= penaltyNumericIP
		*findings = append(*findings, Finding{
			ID:      "ip_address",
			Message: "O link aponta para um endereço numérico (IP) em vez de um nome de site. Isso é extremamente perigoso.",
			Source:  SourceDomain,
		})
	}

	for _, s := range a.catalog.Shorteners {
		if strings.Contains(host, s) {
			score -= penaltyShortener
			*findings = append(*findings, Finding{
				ID:      "shortener",
				Message: "Link encurtado detectado. Golpistas usam isso para esconder o destino real.",
				Source:  SourceHeuristic,
			})
			break
		}
	}

	return score
}

// parseURL reports whether the extracted substring is a structurally valid
// http(s) URL with a non-empty hostname.
func parseURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return nil, false
	}
	return u, true
}

func countMatches(lowerText string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lowerText, kw) {
			count++
		}
	}
	return count
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

// trailingLabel returns the text after the last dot of a hostname.
func trailingLabel(host string) string {
	if idx := strings.LastIndex(host, "."); idx != -1 {
		return host[idx+1:]
	}
	return host
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
