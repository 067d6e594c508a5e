package markdown

// Theme holds the class attribute of every element the renderer emits.
// An empty class omits the attribute.
type Theme struct {
	Wrapper   string // outer div; empty means no wrapper
	Paragraph string
	CodeBlock string // div around a highlighted fence

	InlineCode string
	H1, H2     string
	H3, H4     string
	Strong     string
	Em         string
	Image      string
	Link       string

	BulletList       string
	OrderedList      string
	TaskList         string
	BulletItem       string
	BulletItemNested string
	OrderedItem      string
	TaskItem         string
	TaskItemNested   string
	TaskUnchecked    string // marker span
	TaskChecked      string

	TableWrapper string
	Table        string
	TableHead    string
	TableHeader  string
	TableRow     string
	TableCell    string
}

// DefaultTheme is the portfolio's dark Tailwind styling.
func DefaultTheme() Theme {
	return Theme{
		Wrapper:   "prose prose-invert max-w-none",
		Paragraph: "text-white/70 mb-4 leading-relaxed",
		CodeBlock: "my-4 rounded-lg border border-gray-700 bg-gray-900 overflow-x-auto text-sm",

		InlineCode: "bg-gray-800 text-orange-300 px-2 py-1 rounded text-sm font-mono border border-gray-700",
		H1:         "text-2xl font-bold mb-4 text-white border-b border-gray-700 pb-2",
		H2:         "text-xl font-semibold mb-3 text-white/90 mt-6",
		H3:         "text-lg font-medium mb-2 text-white/80 mt-4",
		H4:         "text-base font-medium mb-2 text-white/70 mt-3",
		Strong:     "font-semibold text-white",
		Em:         "italic text-white/90",
		Image:      "max-w-full h-auto rounded-lg border border-gray-700 my-4 mx-auto block",
		Link:       "text-orange-400 hover:text-orange-300 underline transition-colors",

		BulletList:       "my-3 space-y-1 list-disc pl-6",
		OrderedList:      "my-3 space-y-1 list-decimal pl-6",
		TaskList:         "my-3 space-y-1 pl-2",
		BulletItem:       "text-white/80 mb-1 ml-6 list-disc",
		BulletItemNested: "text-white/80 mb-1 ml-8 list-disc",
		OrderedItem:      "text-white/80 mb-2 ml-6 list-decimal",
		TaskItem:         "flex items-center text-white/80 mb-2 ml-2 list-none",
		TaskItemNested:   "flex items-center text-white/80 mb-2 ml-6 list-none",
		TaskUnchecked:    "mr-3 text-gray-400 text-lg",
		TaskChecked:      "mr-3 text-orange-400 text-lg",

		TableWrapper: "overflow-x-auto my-6",
		Table:        "min-w-full bg-gray-800/20 border border-gray-700 rounded-lg overflow-hidden",
		TableHead:    "bg-gray-800/40",
		TableHeader:  "px-4 py-3 text-left text-sm font-medium text-white/90 border-b border-gray-600",
		TableRow:     "hover:bg-gray-800/30 transition-colors",
		TableCell:    "px-4 py-3 text-sm text-white/80 border-b border-gray-700/50",
	}
}

// PlainTheme emits bare tags.
func PlainTheme() Theme {
	return Theme{}
}

func classAttr(c string) string {
	if c == "" {
		return ""
	}
	return ` class="` + c + `"`
}
