package view

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PrivacyPage explains what the server records about visitors. With tracking
// off it says nothing is collected.
func PrivacyPage(owner string, tracking bool, retention time.Duration, year int) g.Node {
	return document("Privacy Policy | "+owner, "",
		h.Main(h.Class("min-h-screen bg-slate-900 text-slate-200"),
			h.Div(h.Class("container mx-auto max-w-3xl px-4 py-16 space-y-6"),
				h.H1(h.Class("text-4xl font-bold text-white"), g.Text("Privacy Policy")),
				g.If(tracking, trackingNotice(retention)),
				g.If(!tracking,
					h.P(h.Class("no-tracking"), g.Text("No analytics are collected on this site. Page requests are not stored.")),
				),
				h.P(h.A(h.Href("/"), h.Class("text-blue-400 hover:text-blue-300"), g.Text("Back to the portfolio"))),
			),
			Footer(owner, year),
		),
	)
}

func trackingNotice(retention time.Duration) g.Node {
	days := int(retention.Hours() / 24)
	return g.Group{
		h.P(g.Text("This site counts page views to see which sections people read. Nothing is shared with third parties.")),
		h.Ul(h.Class("list-disc list-inside space-y-2"),
			h.Li(g.Text("Your IP address is never stored. It is combined with a random salt, generated anew each time the server starts, and hashed before anything is written.")),
			h.Li(g.Text("The page path and your browser's user agent are stored alongside the hash.")),
			h.Li(g.Text("Requests sent with the Do Not Track header are not recorded at all.")),
			h.Li(g.Text("Records are deleted after "+strconv.Itoa(days)+" days.")),
		),
	}
}
