package catalog

// CatalogVersion is the expected version string of catalog files
const CatalogVersion = "1.0"

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read catalog file"
	ErrContextFailedToParseCatalog = "failed to parse catalog"
	ErrContextInvalidCatalog       = "invalid catalog"
)

// Log messages
const (
	LogMsgCatalogLoaded        = "Catalog loaded"
	LogMsgUsingEmbeddedCatalog = "No catalog path configured, using embedded catalog"
)
