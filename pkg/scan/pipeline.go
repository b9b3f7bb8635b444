package scan

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Classifier is the consumed external-verdict capability. Implementations
// must return an error (or a nil verdict) rather than a partial verdict on
// any failure, missing configuration or unparseable response, so the
// pipeline's local-only fallback activates uniformly.
type Classifier interface {
	// IsAvailable reports whether the classifier is configured at all.
	IsAvailable() bool
	// Classify returns a verdict for the text, or an error if unavailable.
	Classify(ctx context.Context, text string) (*ExternalVerdict, error)
}

// Pipeline runs the three analysis stages: compute the local result, fetch
// the optional external verdict, fuse. The only suspension point is the
// classifier call; callers wanting a timeout wrap ctx before calling.
type Pipeline struct {
	analyzer   *Analyzer
	classifier Classifier
	log        *logrus.Logger
}

// NewPipeline wires an analyzer to an optional classifier. classifier and
// log may be nil; a nil classifier yields local-only results.
func NewPipeline(analyzer *Analyzer, classifier Classifier, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{analyzer: analyzer, classifier: classifier, log: log}
}

// Analyze produces the final result for one piece of text. Classifier
// failures are logged and degrade to the local-only result; they are never
// surfaced to the caller as errors.
func (p *Pipeline) Analyze(ctx context.Context, text string) AnalysisResult {
	local := p.analyzer.Analyze(text)

	if p.classifier == nil || !p.classifier.IsAvailable() {
		return local
	}

	verdict, err := p.classifier.Classify(ctx, text)
	if err != nil {
		p.log.WithError(err).Warn("external classifier failed, using local result")
		return local
	}
	if verdict == nil {
		return local
	}

	return Fuse(local, *verdict)
}
