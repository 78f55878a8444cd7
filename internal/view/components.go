// Package view renders the portfolio as gomponents node trees. Every function
// here is pure: identical inputs produce identical markup.
package view

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/mehulkansal/portfolio/internal/content"
	"github.com/mehulkansal/portfolio/internal/icon"
)

// SocialLink wraps children in an anchor that opens href in a new browsing
// context without leaking the opener or referrer.
func SocialLink(href string, children ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		h.Class("text-slate-300 hover:text-white transform hover:scale-110 transition-all duration-300 hover:shadow-glow"),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		g.Group(children),
	)
}

// TimelineItem renders one experience card. Right-side entries mirror on
// wide viewports; narrow viewports always stack in a single column.
func TimelineItem(e content.Experience) g.Node {
	return h.Div(
		c.Classes{
			"flex flex-col md:flex-row gap-8 items-center md:items-start relative": true,
			"md:flex-row-reverse": e.Side == content.SideRight,
		},
		h.Data("side", e.Side.String()),
		h.Div(h.Class("w-full md:w-1/2 relative"),
			h.Div(h.Class("absolute top-0 bottom-0 left-1/2 md:left-auto md:right-0 w-px bg-blue-500/20 -translate-x-1/2 md:translate-x-0")),
			h.Div(h.Class("timeline-card bg-slate-800/30 rounded-lg p-6 backdrop-blur-sm hover:bg-slate-700/40 transform hover:-translate-y-1 transition-all duration-300 hover:shadow-xl border border-transparent hover:border-blue-500/20 group"),
				h.Div(h.Class("flex items-center gap-2 text-blue-400 mb-2"),
					icon.SVG(icon.Calendar, 16, ""),
					h.Span(g.Text(e.DateRange)),
				),
				h.H3(h.Class("text-xl font-semibold group-hover:text-blue-400 transition-colors"), g.Text(e.Title)),
				h.P(h.Class("text-slate-400 group-hover:text-slate-300 mb-4"), g.Text(e.Company)),
				h.Ul(h.Class("list-disc list-inside text-slate-300 space-y-2 mb-4"),
					g.Map(e.Bullets, func(item string) g.Node {
						return h.Li(h.Class("group-hover:text-white transition-colors"), g.Text(item))
					}),
				),
				tagList(e.Skills, "bg-blue-500/10 text-blue-400 group-hover:bg-blue-500/20"),
			),
		),
	)
}

// ProjectCard renders a project tile. The hover overlay carries a Live Demo
// action only when LiveURL is set and a Code action only when SourceURL is set.
func ProjectCard(p content.Project) g.Node {
	return h.Div(h.Class("project-card bg-slate-800/30 rounded-lg overflow-hidden group hover:bg-slate-700/40 transform hover:-translate-y-1 transition-all duration-300 hover:shadow-xl border border-transparent hover:border-emerald-500/20"),
		h.Div(h.Class("relative overflow-hidden aspect-video"),
			h.Img(
				h.Src(p.ImageURL),
				h.Alt(p.Title),
				h.Class("w-full h-full object-cover transform group-hover:scale-105 transition-transform duration-300"),
			),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-t from-slate-900/90 to-transparent opacity-0 group-hover:opacity-100 group-focus-within:opacity-100 transition-opacity duration-300 flex items-end"),
				h.Div(h.Class("project-actions p-4 space-x-2"),
					g.If(p.LiveURL != "",
						projectAction(p.LiveURL, "bg-emerald-500/90 hover:bg-emerald-500", icon.ExternalLink, "Live Demo"),
					),
					g.If(p.SourceURL != "",
						projectAction(p.SourceURL, "bg-slate-700/90 hover:bg-slate-700", icon.GitHub, "Code"),
					),
				),
			),
		),
		h.Div(h.Class("p-6"),
			h.H3(h.Class("text-xl font-semibold mb-2 group-hover:text-emerald-400 transition-colors"), g.Text(p.Title)),
			h.P(h.Class("text-slate-300 mb-4"), g.Text(p.Description)),
			tagList(p.Skills, "bg-emerald-500/10 text-emerald-400 group-hover:bg-emerald-500/20"),
		),
	)
}

func projectAction(href, colors string, glyph icon.Name, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		h.Class("inline-flex items-center gap-1 px-3 py-1 rounded-full text-sm transition-colors "+colors),
		icon.SVG(glyph, 14, ""),
		g.Text(label),
	)
}

// tagList renders one tag per skill, duplicates included.
func tagList(skills []string, colors string) g.Node {
	return h.Div(h.Class("tags flex flex-wrap gap-2"),
		g.Map(skills, func(skill string) g.Node {
			return h.Span(h.Class("tag px-2 py-1 rounded text-sm transition-colors "+colors), g.Text(skill))
		}),
	)
}
