package figma

// Node types the icon export cares about. Every other Figma type (TEXT, VECTOR, INSTANCE, ...)
// is treated as an opaque leaf.
const (
	TypeDocument  = "DOCUMENT"
	TypeCanvas    = "CANVAS"
	TypeFrame     = "FRAME"
	TypeGroup     = "GROUP"
	TypeComponent = "COMPONENT"
)

// NodeKind is the variant a Node belongs to from the exporter's point of view.
type NodeKind int

const (
	// KindOther is any node that is neither walked nor exported.
	KindOther NodeKind = iota
	// KindContainer nodes (document, canvas, frame, group) are walked into.
	KindContainer
	// KindComponent nodes are exported as icons and never walked into.
	KindComponent
)

func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindComponent:
		return "component"
	default:
		return "other"
	}
}

// FileResponse represents the response from the Figma file API endpoint.
// It contains the file metadata and the document tree.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// ImagesResponse represents the response from the Figma image render endpoint.
// Images maps node IDs to temporary download URLs; a node Figma failed to render maps to an empty string.
type ImagesResponse struct {
	Err    *string           `json:"err"`
	Images map[string]string `json:"images"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Only the fields needed to find and size icon components are decoded.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Children            []Node     `json:"children,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// Kind classifies the node by its type tag.
func (n *Node) Kind() NodeKind {
	switch n.Type {
	case TypeDocument, TypeCanvas, TypeFrame, TypeGroup:
		return KindContainer
	case TypeComponent:
		return KindComponent
	default:
		return KindOther
	}
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
