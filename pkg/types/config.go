package types

// BuildConfig holds settings for the documentation build stage.
type BuildConfig struct {
	// SourceDir is the directory scanned for .rst doc sources (default "docs").
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutDir is the directory for rendered pages and the object index (default "build").
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// IndexConfig holds settings for the object index.
type IndexConfig struct {
	// OutDir is the build output directory (contains index/).
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
