package scan

import (
	"reflect"
	"strings"
	"testing"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(nil)
}

func findingIDs(findings []Finding) []string {
	ids := make([]string, 0, len(findings))
	for _, f := range findings {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestAnalyzeNoSignals(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("Hello, how are you?")

	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if result.RiskTier != TierSafe {
		t.Errorf("RiskTier = %s, want %s", result.RiskTier, TierSafe)
	}
	if len(result.Findings) != 0 {
		t.Errorf("Findings = %v, want none", result.Findings)
	}
	if result.ExtractedURL != "" {
		t.Errorf("ExtractedURL = %q, want empty", result.ExtractedURL)
	}
	if result.Summary == "" {
		t.Error("Summary should not be empty")
	}
}

func TestAnalyzeBlacklistedDomain(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("Você ganhou! Acesse https://pix-premio.com/win")

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.RiskTier != TierDangerous {
		t.Errorf("RiskTier = %s, want %s", result.RiskTier, TierDangerous)
	}

	found := false
	for _, f := range result.Findings {
		if f.Source == SourceBlacklist {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a blacklist finding, got %v", findingIDs(result.Findings))
	}
	if result.ExtractedURL != "https://pix-premio.com/win" {
		t.Errorf("ExtractedURL = %q, want the blacklisted link", result.ExtractedURL)
	}
}

func TestAnalyzeNumericIP(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("clique aqui http://192.168.10.5")

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0 (penalties -20 -25 -80 clamp to 0)", result.Score)
	}
	if result.RiskTier != TierDangerous {
		t.Errorf("RiskTier = %s, want %s", result.RiskTier, TierDangerous)
	}

	ids := findingIDs(result.Findings)
	want := []string{"http", "numbers_domain", "ip_address"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("finding IDs = %v, want %v", ids, want)
	}
}

func TestAnalyzeKeywordCounts(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore int
		wantTier  RiskTier
		wantIDs   []string
	}{
		{
			name:      "two scam keywords",
			text:      "aviso urgente: sua conta sofreu bloqueio total",
			wantScore: 70,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"urgent_words"},
		},
		{
			name:      "two prize keywords",
			text:      "parabéns caro cliente, você ganhou um presente",
			wantScore: 70,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"prize_words"},
		},
		{
			name:      "scam and prize stack",
			text:      "urgente! você ganhou um prêmio incrível hoje",
			wantScore: 70,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"urgent_words", "prize_words"},
		},
		{
			name:      "four scam keywords hit tier boundary",
			text:      "urgente bloqueio suspensa cancelamento",
			wantScore: 40,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"urgent_words"},
		},
		{
			name:      "substring match without word boundary",
			text:      "texto com abloqueiox embutido aqui",
			wantScore: 85,
			wantTier:  TierSafe,
			wantIDs:   []string{"urgent_words"},
		},
		{
			name:      "case insensitive matching",
			text:      "URGENTE: atualize seus dados imediatamente",
			wantScore: 70,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"urgent_words"},
		},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(tt.text)
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.RiskTier != tt.wantTier {
				t.Errorf("RiskTier = %s, want %s", result.RiskTier, tt.wantTier)
			}
			if ids := findingIDs(result.Findings); !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("finding IDs = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestAnalyzeURLChecks(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore int
		wantTier  RiskTier
		wantIDs   []string
	}{
		{
			name:      "insecure protocol only",
			text:      "visite http://example.com para mais detalhes",
			wantScore: 80,
			wantTier:  TierSafe,
			wantIDs:   []string{"http"},
		},
		{
			name:      "digit-heavy domain",
			text:      "acesse https://promo1234.com hoje mesmo",
			wantScore: 75,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"numbers_domain"},
		},
		{
			name:      "hyphen-heavy domain",
			text:      "acesse https://minha-conta-segura-br.net agora",
			wantScore: 80,
			wantTier:  TierSafe,
			wantIDs:   []string{"hyphens_domain"},
		},
		{
			name:      "suspicious extension",
			text:      "promoção em https://ofertas.top aproveite",
			wantScore: 70,
			wantTier:  TierSuspicious,
			wantIDs:   []string{"suspicious_extension"},
		},
		{
			name:      "url shortener",
			text:      "encurtei o link https://bit.ly/3xyzw para facilitar",
			wantScore: 85,
			wantTier:  TierSafe,
			wantIDs:   []string{"shortener"},
		},
		{
			name:      "keywords then url findings in discovery order",
			text:      "urgente você ganhou http://bit.ly/x",
			wantScore: 35,
			wantTier:  TierDangerous,
			wantIDs:   []string{"urgent_words", "prize_words", "http", "shortener"},
		},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(tt.text)
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.RiskTier != tt.wantTier {
				t.Errorf("RiskTier = %s, want %s", result.RiskTier, tt.wantTier)
			}
			if ids := findingIDs(result.Findings); !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("finding IDs = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestAnalyzeMalformedURL(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("veja este endereço http://%zz%quebrado com atenção")

	if result.Score != 90 {
		t.Errorf("Score = %d, want 90", result.Score)
	}
	ids := findingIDs(result.Findings)
	if !reflect.DeepEqual(ids, []string{"invalid_url"}) {
		t.Errorf("finding IDs = %v, want [invalid_url]", ids)
	}
	if result.Findings[0].Source != SourceHeuristic {
		t.Errorf("Source = %s, want %s", result.Findings[0].Source, SourceHeuristic)
	}
}

func TestAnalyzeShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"short greeting", "oi"},
	}

	a := newTestAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(tt.text)

			// Advisory only: no penalty.
			if result.Score != 100 {
				t.Errorf("Score = %d, want 100", result.Score)
			}
			if result.RiskTier != TierSafe {
				t.Errorf("RiskTier = %s, want %s", result.RiskTier, TierSafe)
			}
			ids := findingIDs(result.Findings)
			if !reflect.DeepEqual(ids, []string{"short_text"}) {
				t.Errorf("finding IDs = %v, want [short_text]", ids)
			}
		})
	}
}

func TestAnalyzeShortTextWithURLSkipsAdvisory(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze("https://a.io")

	for _, f := range result.Findings {
		if f.ID == "short_text" {
			t.Error("short_text advisory should not fire when a URL is present")
		}
	}
}

func TestAnalyzeUnicodeNormalization(t *testing.T) {
	a := newTestAnalyzer()
	// Fullwidth characters normalize to plain ASCII before matching.
	result := a.Analyze("ＵＲＧＥＮＴＥ responda esta mensagem")

	ids := findingIDs(result.Findings)
	if !reflect.DeepEqual(ids, []string{"urgent_words"}) {
		t.Errorf("finding IDs = %v, want [urgent_words]", ids)
	}
	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
}

func TestAnalyzeScoreAlwaysClamped(t *testing.T) {
	// Heavy stacking cannot push the score below 0.
	a := newTestAnalyzer()
	text := "urgente bloqueio suspensa cancelamento sujo restrição biometria " +
		"parabéns você ganhou sorteio http://premio-caixa2025.com/123456"
	result := a.Analyze(text)

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.RiskTier != TierDangerous {
		t.Errorf("RiskTier = %s, want %s", result.RiskTier, TierDangerous)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := newTestAnalyzer()
	text := "urgente: você ganhou, resgate agora em https://promo-app-banco.xyz/abc"

	first := a.Analyze(text)
	second := a.Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestAnalyzeLongInput(t *testing.T) {
	a := newTestAnalyzer()
	result := a.Analyze(strings.Repeat("mensagem comum sem sinais ", 5000))

	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if result.RiskTier != TierSafe {
		t.Errorf("RiskTier = %s, want %s", result.RiskTier, TierSafe)
	}
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		score    int
		expected RiskTier
	}{
		{0, TierDangerous},
		{39, TierDangerous},
		{40, TierSuspicious},
		{79, TierSuspicious},
		{80, TierSafe},
		{100, TierSafe},
	}

	for _, tt := range tests {
		if got := TierOf(tt.score); got != tt.expected {
			t.Errorf("TierOf(%d) = %s, want %s", tt.score, got, tt.expected)
		}
	}
}

func TestSummaryMatchesTier(t *testing.T) {
	a := newTestAnalyzer()
	tests := []struct {
		text string
		tier RiskTier
	}{
		{"Hello, how are you?", TierSafe},
		{"urgente bloqueio nesta mensagem", TierSuspicious},
		{"https://pix-premio.com/win", TierDangerous},
	}

	for _, tt := range tests {
		result := a.Analyze(tt.text)
		if result.RiskTier != tt.tier {
			t.Fatalf("Analyze(%q) tier = %s, want %s", tt.text, result.RiskTier, tt.tier)
		}
		if result.Summary != summaryByTier[tt.tier] {
			t.Errorf("Summary = %q, want the fixed %s message", result.Summary, tt.tier)
		}
	}
}
