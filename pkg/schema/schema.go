package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

const (
	SchemaName = "typedapi"

	// ContentTypeJSONPatch is the media type for PATCH request bodies (RFC 6902)
	ContentTypeJSONPatch = "application/json-patch+json"
)
