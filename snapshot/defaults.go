package snapshot

// initialStyle holds the computed value of every captured property for an
// element with no author or user-agent styling.
var initialStyle = map[string]string{
	"display":    "inline",
	"position":   "static",
	"visibility": "visible",
	"opacity":    "1",
	"z-index":    "auto",
	"transform":  "none",
	"box-shadow": "none",

	"color":           "rgb(0, 0, 0)",
	"font-family":     "\"Times New Roman\"",
	"font-size":       "16px",
	"font-weight":     "400",
	"font-style":      "normal",
	"line-height":     "normal",
	"letter-spacing":  "normal",
	"text-align":      "start",
	"text-decoration": "none",
	"white-space":     "normal",
	"word-wrap":       "normal",
	"text-overflow":   "clip",

	"background-color": "rgba(0, 0, 0, 0)",

	"width":  "auto",
	"height": "auto",

	"padding-top":    "0px",
	"padding-right":  "0px",
	"padding-bottom": "0px",
	"padding-left":   "0px",
	"margin-top":     "0px",
	"margin-right":   "0px",
	"margin-bottom":  "0px",
	"margin-left":    "0px",

	"border-top-width":    "0px",
	"border-right-width":  "0px",
	"border-bottom-width": "0px",
	"border-left-width":   "0px",
	"border-top-style":    "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"border-left-style":   "none",
	"border-radius":       "0px",

	"overflow":   "visible",
	"overflow-x": "visible",
	"overflow-y": "visible",

	"list-style-type":     "disc",
	"list-style-position": "outside",
	"list-style-image":    "none",

	"flex":            "0 1 auto",
	"flex-direction":  "row",
	"justify-content": "normal",
	"align-items":     "normal",
	"gap":             "normal",
}

// inherited lists properties children take from their parent.
var inherited = map[string]bool{
	"color":               true,
	"font-family":         true,
	"font-size":           true,
	"font-weight":         true,
	"font-style":          true,
	"line-height":         true,
	"letter-spacing":      true,
	"text-align":          true,
	"white-space":         true,
	"word-wrap":           true,
	"visibility":          true,
	"list-style-type":     true,
	"list-style-position": true,
	"list-style-image":    true,
}

var (
	blockDisplay = map[string]string{"display": "block"}
	bold         = map[string]string{"font-weight": "700"}
	italic       = map[string]string{"font-style": "italic"}
	underline    = map[string]string{"text-decoration": "underline"}
	lineThrough  = map[string]string{"text-decoration": "line-through"}
	monospace    = map[string]string{"font-family": "monospace"}
	inlineBlock  = map[string]string{"display": "inline-block"}
)

// tagDefaults approximates the user-agent stylesheet.
var tagDefaults = map[string]map[string]string{
	"html":       blockDisplay,
	"body":       blockDisplay,
	"div":        blockDisplay,
	"section":    blockDisplay,
	"article":    blockDisplay,
	"aside":      blockDisplay,
	"nav":        blockDisplay,
	"header":     blockDisplay,
	"footer":     blockDisplay,
	"main":       blockDisplay,
	"figure":     blockDisplay,
	"figcaption": blockDisplay,
	"details":    blockDisplay,
	"summary":    blockDisplay,
	"dialog":     blockDisplay,
	"fieldset":   blockDisplay,
	"legend":     blockDisplay,
	"address":    {"display": "block", "font-style": "italic"},
	"blockquote": {"display": "block", "margin-top": "16px", "margin-bottom": "16px", "margin-left": "40px", "margin-right": "40px"},
	"dl":         blockDisplay,
	"dt":         blockDisplay,
	"dd":         {"display": "block", "margin-left": "40px"},
	"p":          {"display": "block", "margin-top": "16px", "margin-bottom": "16px"},
	"pre":        {"display": "block", "white-space": "pre", "font-family": "monospace"},
	"hr": {
		"display":             "block",
		"border-top-width":    "1px",
		"border-right-width":  "1px",
		"border-bottom-width": "1px",
		"border-left-width":   "1px",
		"border-top-style":    "inset",
		"border-right-style":  "inset",
		"border-bottom-style": "inset",
		"border-left-style":   "inset",
	},

	"h1": {"display": "block", "font-size": "32px", "font-weight": "700"},
	"h2": {"display": "block", "font-size": "24px", "font-weight": "700"},
	"h3": {"display": "block", "font-size": "18.72px", "font-weight": "700"},
	"h4": {"display": "block", "font-size": "16px", "font-weight": "700"},
	"h5": {"display": "block", "font-size": "13.28px", "font-weight": "700"},
	"h6": {"display": "block", "font-size": "10.72px", "font-weight": "700"},

	"strong": bold,
	"b":      bold,
	"em":     italic,
	"i":      italic,
	"cite":   italic,
	"dfn":    italic,
	"var":    italic,
	"u":      underline,
	"ins":    underline,
	"s":      lineThrough,
	"strike": lineThrough,
	"del":    lineThrough,
	"code":   monospace,
	"kbd":    monospace,
	"samp":   monospace,
	"mark":   {"background-color": "rgb(255, 255, 0)", "color": "rgb(0, 0, 0)"},
	"a":      {"color": "rgb(0, 0, 238)", "text-decoration": "underline"},

	"ul": {"display": "block", "list-style-type": "disc", "padding-left": "40px", "margin-top": "16px", "margin-bottom": "16px"},
	"ol": {"display": "block", "list-style-type": "decimal", "padding-left": "40px", "margin-top": "16px", "margin-bottom": "16px"},
	"li": {"display": "list-item"},

	"table":    {"display": "table"},
	"caption":  {"display": "table-caption", "text-align": "center"},
	"thead":    {"display": "table-header-group"},
	"tbody":    {"display": "table-row-group"},
	"tfoot":    {"display": "table-footer-group"},
	"colgroup": {"display": "table-column-group"},
	"col":      {"display": "table-column"},
	"tr":       {"display": "table-row"},
	"td":       {"display": "table-cell", "padding-top": "1px", "padding-right": "1px", "padding-bottom": "1px", "padding-left": "1px"},
	"th":       {"display": "table-cell", "font-weight": "700", "text-align": "center", "padding-top": "1px", "padding-right": "1px", "padding-bottom": "1px", "padding-left": "1px"},

	"button":   inlineBlock,
	"input":    inlineBlock,
	"select":   inlineBlock,
	"textarea": inlineBlock,
	"iframe":   {"border-top-width": "2px", "border-right-width": "2px", "border-bottom-width": "2px", "border-left-width": "2px", "border-top-style": "inset", "border-right-style": "inset", "border-bottom-style": "inset", "border-left-style": "inset"},
}
