package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/mehulkansal/portfolio/internal/content"
	"github.com/mehulkansal/portfolio/internal/icon"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	stylesheet  = "assets/styles.css"
	favicon     = "assets/favicon.svg"
)

// Page renders the full portfolio document. year is stamped into the footer.
func Page(site content.Site, year int) g.Node {
	return document(site.Profile.Name+" | "+site.Profile.Headline, site.Profile.Summary,
		h.Div(h.Class("min-h-screen bg-gradient-to-br from-slate-900 via-slate-800 to-slate-900 text-white relative overflow-hidden"),
			backdrop(),
			h.Div(h.Class("relative"),
				Hero(site.Profile),
				ExperienceSection(site.Experience),
				ProjectsSection(site.Projects),
				SkillsSection(site.Skills),
				AchievementsSection(site.Achievements),
				EducationSection(site.Education),
				ContactSection(site.Contact),
				Footer(site.Footer, year),
			),
		),
	)
}

func document(title, description string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(favicon)),
			h.Script(h.Src(tailwindCDN)),
			h.Link(h.Rel("stylesheet"), h.Href(stylesheet)),
		},
		Body: body,
	})
}

// backdrop is the three blurred, slowly drifting colour blobs.
func backdrop() g.Node {
	blob := func(position, color, delay string) g.Node {
		return h.Div(h.Class("absolute " + position + " w-96 h-96 " + color + " rounded-full mix-blend-multiply filter blur-[128px] animate-blob" + delay))
	}
	return h.Div(h.Class("absolute inset-0 overflow-hidden pointer-events-none"), h.Aria("hidden", "true"),
		h.Div(h.Class("absolute -inset-[10px] opacity-50"),
			blob("top-1/4 left-1/4", "bg-blue-500", ""),
			blob("top-1/3 right-1/4", "bg-emerald-500", " animation-delay-2000"),
			blob("bottom-1/4 left-1/3", "bg-purple-500", " animation-delay-4000"),
		),
	)
}

// Hero renders the header with the flip-card portrait and social links.
func Hero(p content.Profile) g.Node {
	return h.Header(h.ID("hero"), h.Class("container mx-auto px-4 py-16 md:py-32"),
		h.Div(h.Class("max-w-5xl mx-auto flex flex-col md:flex-row items-center gap-8"),
			h.Div(h.Class("w-48 h-48 md:w-64 md:h-64 relative group perspective"),
				h.Div(h.Class("flip-card w-full h-full absolute transition-all duration-500 preserve-3d group-hover:rotate-y-180"),
					h.Div(h.Class("w-full h-full absolute backface-hidden rounded-full overflow-hidden border-4 border-blue-500/20 hover:border-blue-500/40 transition-colors"),
						h.Img(h.Src(p.PhotoURL), h.Alt("Profile"), h.Class("w-full h-full object-cover")),
						h.Div(h.Class("absolute inset-0 bg-gradient-to-t from-slate-900/50 to-transparent")),
					),
					g.If(p.AvatarURL != "",
						h.Div(h.Class("w-full h-full absolute backface-hidden rounded-full overflow-hidden border-4 border-blue-500/20 rotate-y-180 bg-slate-800 flex items-center justify-center"),
							h.Img(h.Src(p.AvatarURL), h.Alt("avatar"), h.Class("w-full h-full object-cover")),
						),
					),
				),
			),
			h.Div(h.Class("text-center md:text-left md:flex-1"),
				h.H1(h.Class("text-4xl md:text-6xl font-bold mb-6 bg-clip-text text-transparent bg-gradient-to-r from-blue-400 to-emerald-400 hover:from-emerald-400 hover:to-blue-400 transition-all duration-500 transform hover:scale-105"),
					g.Text(p.Name),
				),
				h.H2(h.Class("text-2xl md:text-3xl font-semibold mb-4 text-slate-200"), g.Text(p.Headline)),
				g.If(p.Summary != "",
					h.P(h.Class("text-xl text-slate-300 mb-8 hover:text-white transition-colors max-w-2xl"), g.Text(p.Summary)),
				),
				h.Div(h.Class("socials flex justify-center md:justify-start gap-6"),
					g.Map(p.Socials, func(s content.SocialProfile) g.Node {
						return SocialLink(s.URL,
							icon.SVG(s.Network, 24, ""),
							h.Span(h.Class("sr-only"), g.Text(s.Label)),
						)
					}),
				),
			),
		),
	)
}

// section is the shared frame: an icon-and-title heading over body.
func section(id string, glyph icon.Name, accent, title, width string, body g.Node) g.Node {
	return h.Section(h.ID(id), h.Class("container mx-auto px-4 py-16"),
		h.Div(h.Class(width+" mx-auto"),
			h.Div(h.Class("flex items-center gap-2 justify-center mb-8"),
				icon.SVG(glyph, 24, "text-"+accent),
				h.H2(h.Class("text-3xl font-bold text-center hover:text-"+accent+" transition-colors"), g.Text(title)),
			),
			body,
		),
	)
}

func ExperienceSection(entries []content.Experience) g.Node {
	return section("experience", icon.Briefcase, "blue-400", "Experience", "max-w-5xl",
		h.Div(h.Class("timeline space-y-12"), g.Map(entries, TimelineItem)),
	)
}

func ProjectsSection(projects []content.Project) g.Node {
	return section("projects", icon.Code, "emerald-400", "Projects", "max-w-5xl",
		h.Div(h.Class("projects-grid grid grid-cols-1 md:grid-cols-2 gap-8"), g.Map(projects, ProjectCard)),
	)
}

func SkillsSection(skills []string) g.Node {
	return section("skills", icon.Terminal, "purple-400", "Technical Skills", "max-w-5xl",
		h.Div(h.Class("skills-grid grid grid-cols-2 md:grid-cols-4 gap-4"),
			g.Map(skills, func(skill string) g.Node {
				return h.Div(h.Class("skill bg-slate-800/30 rounded-lg p-4 text-center hover:bg-slate-700/40 transform hover:-translate-y-1 hover:scale-105 transition-all duration-300 hover:shadow-xl border border-transparent hover:border-purple-500/20 group"),
					h.Span(h.Class("group-hover:text-purple-400 transition-colors"), g.Text(skill)),
				)
			}),
		),
	)
}

func AchievementsSection(items []content.Achievement) g.Node {
	return section("achievements", icon.Award, "yellow-400", "Achievements", "max-w-5xl",
		h.Div(h.Class("achievements-grid grid grid-cols-1 md:grid-cols-2 gap-6"),
			g.Map(items, func(a content.Achievement) g.Node {
				return h.Div(h.Class("achievement bg-slate-800/30 p-6 rounded-lg hover:bg-slate-700/40 transform hover:-translate-y-1 transition-all duration-300 hover:shadow-xl border border-transparent hover:border-yellow-500/20 group"),
					h.H3(h.Class("text-xl font-semibold mb-3 group-hover:text-yellow-400"), g.Text(a.Title)),
					h.P(h.Class("text-slate-300 group-hover:text-white"), g.Text(a.Description)),
				)
			}),
		),
	)
}

func EducationSection(entries []content.Education) g.Node {
	return section("education", icon.BookOpen, "blue-400", "Education", "max-w-3xl",
		h.Div(h.Class("space-y-8"),
			g.Map(entries, func(e content.Education) g.Node {
				return h.Div(h.Class("education bg-slate-800/30 p-8 rounded-lg hover:bg-slate-700/40 transform hover:-translate-y-1 transition-all duration-300 hover:shadow-xl border border-transparent hover:border-blue-500/20 group"),
					h.H3(h.Class("text-2xl font-bold mb-2 group-hover:text-blue-400"), g.Text(e.Degree)),
					h.P(h.Class("text-xl text-slate-300 mb-2"), g.Text(e.Institution)),
					g.If(e.Period != "" || e.Grade != "",
						h.P(h.Class("text-lg text-slate-400 mb-4"), g.Text(joinNonEmpty(" | ", e.Period, e.Grade))),
					),
					g.If(e.Location != "", h.P(h.Class("text-slate-300"), g.Text(e.Location))),
				)
			}),
		),
	)
}

// ContactSection renders the closing call-to-action as a mailto link.
func ContactSection(ct content.Contact) g.Node {
	return h.Section(h.ID("contact"), h.Class("container mx-auto px-4 py-16"),
		h.Div(h.Class("max-w-3xl mx-auto text-center"),
			h.H2(h.Class("text-3xl font-bold mb-8 hover:text-blue-400 transition-colors"), g.Text(ct.Heading)),
			g.If(ct.Pitch != "",
				h.P(h.Class("text-slate-300 mb-8 hover:text-white transition-colors"), g.Text(ct.Pitch)),
			),
			h.A(
				h.Href("mailto:"+ct.Email),
				h.Class("inline-block bg-gradient-to-r from-blue-500 to-emerald-500 hover:from-emerald-500 hover:to-blue-500 px-8 py-3 rounded-lg font-semibold transition-all duration-300 hover:scale-105 hover:shadow-xl"),
				g.Text(ct.ButtonLabel),
			),
		),
	)
}

// Footer renders the copyright line for year.
func Footer(text string, year int) g.Node {
	return h.Footer(h.Class("container mx-auto px-4 py-8"),
		h.Div(h.Class("text-center text-slate-400 hover:text-white transition-colors"),
			h.P(g.Text("© "+strconv.Itoa(year)+" "+text)),
		),
	)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
