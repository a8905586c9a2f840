package catalog

// Config holds the location of the seller catalog document.
type Config struct {
	// Source selects where the catalog is read from (file, storage).
	Source string `mapstructure:"source" default:"file"`
	// Path is the local catalog file, also the upload source for publishing.
	Path string `mapstructure:"path" default:"seller_data.toml"`
	// Object is the object name of the catalog inside the storage bucket.
	Object string `mapstructure:"object" default:"seller_data.toml"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}

// Name returns the document name to hand to the configured source.
func (c Config) Name() string {
	if c.Source == SourceStorage {
		return c.Object
	}
	return c.Path
}
