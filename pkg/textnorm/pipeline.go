package textnorm

// Pipeline composes the three preprocessing stages in their fixed order:
// Normalizer -> OCRCorrector -> Expander.
type Pipeline struct {
	norm *Normalizer
	ocr  *OCRCorrector
	abbr *Expander
}

// NewPipeline assembles a pipeline from pre-built stages.
func NewPipeline(n *Normalizer, c *OCRCorrector, e *Expander) *Pipeline {
	return &Pipeline{norm: n, ocr: c, abbr: e}
}

// Normalize runs only the first stage.
func (p *Pipeline) Normalize(text string) string {
	return p.norm.Normalize(text)
}

// Preprocess runs the full pipeline.
func (p *Pipeline) Preprocess(text string) string {
	return p.abbr.Expand(p.ocr.Fix(p.norm.Normalize(text)))
}
