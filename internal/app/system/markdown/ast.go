package markdown

// Block-level nodes.
type (
	// Block is a node of the block layer.
	Block interface{ block() }

	Heading struct {
		Level   int // 1..4
		Content []Inline
	}

	Paragraph struct {
		Content []Inline
	}

	// RawHTML is an HTML block copied through unwrapped.
	RawHTML struct {
		Text string
	}

	List struct {
		Kind  ListKind
		Items []ListItem
	}

	ListItem struct {
		Nested  bool
		Checked bool // task lists only
		Content []Inline
	}

	Table struct {
		Header []Cell
		Rows   [][]Cell
	}

	Cell struct {
		Content []Inline
	}

	// CodeBlock is a fenced block. No markdown rules apply to Code.
	CodeBlock struct {
		Lang string
		Code string
	}

	// Section is a run of prose between fences.
	Section struct {
		Blocks []Block
	}
)

// ListKind selects the container and item style of a list.
type ListKind int

const (
	ListBullet ListKind = iota
	ListOrdered
	ListTask
)

func (Heading) block()   {}
func (Paragraph) block() {}
func (RawHTML) block()   {}
func (List) block()      {}
func (Table) block()     {}
func (CodeBlock) block() {}
func (Section) block()   {}

// Inline nodes.
type (
	Inline interface{ inline() }

	// Text is literal text. Newlines render as <br>.
	Text struct{ Value string }

	CodeSpan struct{ Code string }

	Image struct {
		Alt string
		Src string
	}

	// RawImage is an <img> tag found in the prose; its src is resolved and
	// the remaining attributes are kept.
	RawImage struct {
		Before string
		Src    string
		After  string
	}

	Link struct {
		URL     string
		Content []Inline
	}

	Strong struct{ Content []Inline }

	Emphasis struct{ Content []Inline }
)

func (Text) inline()     {}
func (CodeSpan) inline() {}
func (Image) inline()    {}
func (RawImage) inline() {}
func (Link) inline()     {}
func (Strong) inline()   {}
func (Emphasis) inline() {}
