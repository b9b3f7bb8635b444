package scan

// RiskTier classifies an analysis by ascending danger.
type RiskTier string

const (
	// TierUnknown is the zero value; the engine never produces it.
	TierUnknown RiskTier = "UNKNOWN"
	// TierSafe indicates no meaningful fraud signals were found
	TierSafe RiskTier = "SAFE"
	// TierSuspicious indicates some fraud signals were found
	TierSuspicious RiskTier = "SUSPICIOUS"
	// TierDangerous indicates strong fraud signals were found
	TierDangerous RiskTier = "DANGEROUS"
)

// String returns the string representation of a RiskTier.
func (t RiskTier) String() string {
	return string(t)
}

// Source identifies which check produced a Finding.
type Source string

const (
	SourceProtocol  Source = "protocol"
	SourceDomain    Source = "domain"
	SourceKeyword   Source = "keyword"
	SourceBlacklist Source = "blacklist"
	SourceHeuristic Source = "heuristic"
	SourceAI        Source = "ai"
)

// Finding is one itemized, sourced explanation accompanying a score. Findings
// are append-only within one analysis and never mutated after creation.
type Finding struct {
	// ID is a stable short identifier for the check that fired
	ID string `json:"id"`
	// Message is the human-readable explanation, in pt-BR
	Message string `json:"message"`
	// Source is the check family: protocol, domain, keyword, blacklist,
	// heuristic or ai
	Source Source `json:"source"`
}

// AnalysisResult is the output of one analysis pass. Score polarity is
// inverted relative to intuitive "risk": 100 is maximally trustworthy,
// 0 maximally dangerous.
type AnalysisResult struct {
	// Score is the trust score, clamped to [0, 100]
	Score int `json:"score"`
	// RiskTier is derived from Score via TierOf
	RiskTier RiskTier `json:"risk_tier"`
	// Findings are in discovery order; order matters for display, not scoring
	Findings []Finding `json:"findings"`
	// Summary is one human-readable verdict sentence
	Summary string `json:"summary"`
	// ExtractedURL is the URL substring used for URL checks, empty if none
	ExtractedURL string `json:"extracted_url,omitempty"`
}

// ExternalVerdict is the advisory classification returned by the external
// classifier. It is untrusted, unstructured input: the engine never assumes
// it is internally consistent with its own score.
type ExternalVerdict struct {
	// IsScam reports whether the classifier asserts fraud with confidence
	IsScam bool `json:"is_scam"`
	// Issues are free-text descriptions of specific concerns
	Issues []string `json:"issues"`
	// Summary is the classifier's own verdict sentence
	Summary string `json:"summary"`
}

// TierOf derives the risk tier from a clamped score.
// Scores below 40 are DANGEROUS, below 80 SUSPICIOUS, 80 and above SAFE.
func TierOf(score int) RiskTier {
	switch {
	case score < 40:
		return TierDangerous
	case score < 80:
		return TierSuspicious
	default:
		return TierSafe
	}
}

// IsDangerous returns true if the result landed in the DANGEROUS tier.
func (r *AnalysisResult) IsDangerous() bool {
	return r.RiskTier == TierDangerous
}

// IsSafe returns true if the result landed in the SAFE tier.
func (r *AnalysisResult) IsSafe() bool {
	return r.RiskTier == TierSafe
}
