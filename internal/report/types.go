package report

// Report is the JSON record of one glitch run: the input, the
// parameters, and every variant written with the seed that produced
// it. Feeding a seed back through --seed re-renders that variant.
type Report struct {
	Version     int            `json:"version"`
	GeneratedAt string         `json:"generated_at"`
	Input       InputInfo      `json:"input"`
	Params      ParamsInfo     `json:"params"`
	Variants    []VariantEntry `json:"variants"`
	Stats       Stats          `json:"stats"`
}

// InputInfo holds metadata about the source image.
type InputInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// ParamsInfo mirrors the glitch parameters the run used.
type ParamsInfo struct {
	Angle      float64 `json:"angle"`
	Blocks     int     `json:"blocks"`
	Intensity  int     `json:"intensity"`
	Dither     bool    `json:"dither"`
	FuzzyEdges bool    `json:"fuzzy_edges"`
	Resize     float64 `json:"resize,omitempty"`
}

// VariantEntry is one written output file.
type VariantEntry struct {
	Index  int    `json:"index"`
	Path   string `json:"path"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`   // bytes on disk
	Hash   string `json:"hash"`   // first 16 hex chars of xxhash64
	Seed   uint64 `json:"seed"`   // random stream seed, reproduces this variant
}

// Stats aggregates run metrics.
type Stats struct {
	TotalVariants    int   `json:"total_variants"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
