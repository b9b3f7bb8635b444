package scan

import "fmt"

// penaltyPerIssue is subtracted from the local score for each issue the
// external classifier raises when it stops short of calling the content a
// scam outright.
const penaltyPerIssue = 15

// Fuse merges an external classifier verdict into a local analysis result
// and returns a new result; the local result is never mutated.
//
// When the verdict asserts scam, the local score is discarded outright and
// forced to 0/DANGEROUS: the classifier is trusted to override local lexical
// heuristics when it asserts fraud with confidence, since those heuristics
// can miss sophisticated attacks. When the verdict only lists issues, the
// local score is reduced by 15 per issue and the tier recomputed from the
// new score. In every case the verdict's issues are appended as ai-sourced
// findings and its summary replaces the local templated one.
func Fuse(local AnalysisResult, verdict ExternalVerdict) AnalysisResult {
	score := local.Score
	if verdict.IsScam {
		score = 0
	} else if len(verdict.Issues) > 0 {
		score = clamp(score-len(verdict.Issues)*penaltyPerIssue, 0, 100)
	}

	findings := make([]Finding, 0, len(local.Findings)+len(verdict.Issues))
	findings = append(findings, local.Findings...)
	for i, issue := range verdict.Issues {
		findings = append(findings, Finding{
			ID:      fmt.Sprintf("ai_%d", i),
			Message: issue,
			Source:  SourceAI,
		})
	}

	return AnalysisResult{
		Score:        score,
		RiskTier:     TierOf(score),
		Findings:     findings,
		Summary:      verdict.Summary,
		ExtractedURL: local.ExtractedURL,
	}
}
