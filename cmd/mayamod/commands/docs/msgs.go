package docs

// Message constants
const (
	MsgShort = "Show the full usage documentation"
)
