package logging

// Field names for structured logging.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldBytes  = "bytes"

	// Parser fields.
	FieldTokens     = "tokens"
	FieldCodepoints = "codepoints"
	FieldOffset     = "offset"
	FieldMaxDepth   = "max_depth"

	// Configuration fields.
	FieldConfig    = "config"
	FieldNormalize = "normalize"
	FieldWidth     = "width"
	FieldIndent    = "indent"
	FieldChanged   = "changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
