package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mehulkansal/portfolio/internal/analytics"
)

const visitTimeLayout = "2006-01-02 15:04 MST"

// LoginPage asks for the admin token. failed adds the rejection notice.
func LoginPage(owner string, failed bool, year int) g.Node {
	return document("Admin Login | "+owner, "",
		h.Main(h.Class("min-h-screen bg-slate-900 text-slate-200"),
			h.Div(h.Class("container mx-auto max-w-md px-4 py-16 space-y-6"),
				h.H1(h.Class("text-3xl font-bold text-white"), g.Text("Admin Login")),
				g.If(failed,
					h.P(h.Class("login-error text-red-400"), g.Text("Invalid token")),
				),
				h.Form(h.Method("post"), h.Action("/admin/login"), h.Class("space-y-4"),
					h.Label(h.For("token"), h.Class("block text-sm"), g.Text("Admin token")),
					h.Input(
						h.ID("token"),
						h.Name("token"),
						h.Type("password"),
						h.Required(),
						h.AutoComplete("current-password"),
						h.Class("w-full rounded bg-slate-800 px-3 py-2"),
					),
					h.Button(h.Type("submit"), h.Class("rounded bg-blue-500 px-4 py-2 hover:bg-blue-600"), g.Text("Sign in")),
				),
			),
			Footer(owner, year),
		),
	)
}

// VisitorsPage lists recorded visits, newest first, as the server returned them.
func VisitorsPage(owner string, visits []analytics.Visit, year int) g.Node {
	return document("Visitors | "+owner, "",
		h.Main(h.Class("min-h-screen bg-slate-900 text-slate-200"),
			h.Div(h.Class("container mx-auto px-4 py-16 space-y-6"),
				h.Div(h.Class("flex items-center justify-between"),
					h.H1(h.Class("text-3xl font-bold text-white"), g.Text("Recent visitors")),
					h.Nav(h.Class("space-x-4 text-blue-400"),
						h.A(h.Href("/admin/api/stats"), g.Text("Stats")),
						h.A(h.Href("/admin/logout"), g.Text("Log out")),
					),
				),
				h.P(h.Class("visit-count text-slate-400"), g.Text("Visits shown: "+strconv.Itoa(len(visits)))),
				h.Table(h.Class("visitors w-full text-left text-sm"),
					h.THead(
						h.Tr(
							h.Th(g.Text("Time")),
							h.Th(g.Text("Path")),
							h.Th(g.Text("Visitor")),
							h.Th(g.Text("User agent")),
						),
					),
					h.TBody(
						g.Map(visits, func(v analytics.Visit) g.Node {
							return h.Tr(h.Class("visit border-t border-slate-800"),
								h.Td(g.Text(v.VisitedAt.Format(visitTimeLayout))),
								h.Td(g.Text(v.Path)),
								h.Td(h.Class("font-mono"), g.Text(v.HashedIP)),
								h.Td(h.Class("truncate max-w-xs"), g.Text(v.UserAgent)),
							)
						}),
					),
				),
			),
			Footer(owner, year),
		),
	)
}
