// Package icon renders the inline SVG glyphs used across the portfolio page.
//
// The glyph bodies are the Lucide outline icons (ISC license), drawn on a
// 24x24 grid with a 2px round stroke in currentColor.
package icon

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
)

// Name identifies a glyph.
type Name string

const (
	GitHub       Name = "github"
	LinkedIn     Name = "linkedin"
	Mail         Name = "mail"
	ExternalLink Name = "external-link"
	Calendar     Name = "calendar"
	Briefcase    Name = "briefcase"
	Code         Name = "code"
	Award        Name = "award"
	BookOpen     Name = "book-open"
	Terminal     Name = "terminal"
)

var glyphs = map[Name]string{
	GitHub: `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"></path>` +
		`<path d="M9 18c-4.51 2-5-2-7-2"></path>`,
	LinkedIn: `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"></path>` +
		`<rect width="4" height="12" x="2" y="9"></rect><circle cx="4" cy="4" r="2"></circle>`,
	Mail: `<rect width="20" height="16" x="2" y="4" rx="2"></rect>` +
		`<path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"></path>`,
	ExternalLink: `<path d="M15 3h6v6"></path><path d="M10 14 21 3"></path>` +
		`<path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"></path>`,
	Calendar: `<path d="M8 2v4"></path><path d="M16 2v4"></path>` +
		`<rect width="18" height="18" x="3" y="4" rx="2"></rect><path d="M3 10h18"></path>`,
	Briefcase: `<path d="M16 20V4a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"></path>` +
		`<rect width="20" height="14" x="2" y="6" rx="2"></rect>`,
	Code: `<polyline points="16 18 22 12 16 6"></polyline><polyline points="8 6 2 12 8 18"></polyline>`,
	Award: `<circle cx="12" cy="8" r="6"></circle>` +
		`<path d="M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"></path>`,
	BookOpen: `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"></path>` +
		`<path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"></path>`,
	Terminal: `<polyline points="4 17 10 11 4 5"></polyline><line x1="12" x2="20" y1="19" y2="19"></line>`,
}

// Known reports whether a glyph exists for name.
func Known(name Name) bool {
	_, ok := glyphs[name]
	return ok
}

// SVG returns the named glyph sized to size pixels. Unknown names render nothing.
func SVG(name Name, size int, class string) g.Node {
	body, ok := glyphs[name]
	if !ok {
		return nil
	}
	px := strconv.Itoa(size)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", px),
		g.Attr("height", px),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("class", strings.TrimSpace("lucide lucide-"+string(name)+" "+class)),
		g.Attr("aria-hidden", "true"),
		g.Raw(body),
	)
}
