// Package analysis summarises converted art and luminance grids.
//
//   - [RampHistogram]: how often each ramp character is used
//   - [RowProfile]: mean luminance of each row
//   - [Coverage]: fraction of cells that are not blank
//
// The CLI plots these with asciigraph to help pick a width before export.
package analysis
