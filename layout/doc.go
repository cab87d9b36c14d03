// Package layout implements the heading-detection pipeline stages that
// turn decoded page spans into a classified outline.
//
// # Stages
//
// Each stage consumes the previous stage's output:
//
//   - [LineDetector] - consolidates spans into semantic lines
//   - [BlockDetector] - merges lines into blocks and normalizes text
//   - [BuildProfile] - computes document-wide font statistics once
//   - [Scorer] - computes font/content/layout sub-scores per block
//   - [Filter] - discards low scores and excluded patterns
//   - [Classifier] - maps font-size tiers to Title/H1/H2/H3
//   - [Assembler] - orders headings and packages the outline
//
// # Document Profile
//
// Document-wide statistics (character-weighted font-size percentiles,
// font family usage, repeated header/footer texts) are computed once into
// an immutable [DocumentProfile] and passed into the scorer and
// classifier explicitly; no stage recomputes them.
//
// # Configuration
//
// Each stage can be configured independently:
//
//	config := layout.DefaultScorerConfig()
//	config.MaxHeadingWords = 16
//	scorer := layout.NewScorerWithConfig(profile, config)
package layout
