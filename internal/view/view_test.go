package view

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/mehulkansal/portfolio/internal/analytics"
	"github.com/mehulkansal/portfolio/internal/content"
	"github.com/mehulkansal/portfolio/internal/icon"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func first(t *testing.T, n *html.Node, match func(*html.Node) bool) *html.Node {
	t.Helper()
	found := findAll(n, match)
	require.NotEmpty(t, found)
	return found[0]
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func class(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == name {
				return true
			}
		}
		return false
	}
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, textOf(n))
	}
	return out
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func TestSocialLink(t *testing.T) {
	doc := parse(t, SocialLink("https://github.com/octocat", icon.SVG(icon.GitHub, 24, "")))
	a := first(t, doc, tag("a"))

	assert.Equal(t, "https://github.com/octocat", attr(a, "href"))
	assert.Equal(t, "_blank", attr(a, "target"))
	assert.Equal(t, "noopener noreferrer", attr(a, "rel"))
	assert.Len(t, findAll(a, tag("svg")), 1)
}

func TestTimelineItem(t *testing.T) {
	entry := content.Experience{
		DateRange: "2020 - 2021",
		Title:     "Engineer",
		Company:   "Acme",
		Bullets:   []string{"shipped it", "fixed it", "shipped it"},
		Skills:    []string{"Go", "SQL", "Go"},
	}

	t.Run("one item per bullet in order", func(t *testing.T) {
		doc := parse(t, TimelineItem(entry))
		assert.Equal(t, entry.Bullets, texts(findAll(doc, tag("li"))))
	})

	t.Run("one tag per skill with duplicates kept", func(t *testing.T) {
		doc := parse(t, TimelineItem(entry))
		assert.Equal(t, entry.Skills, texts(findAll(doc, class("tag"))))
	})

	t.Run("renders date title and company", func(t *testing.T) {
		doc := parse(t, TimelineItem(entry))
		assert.Equal(t, "Engineer", textOf(first(t, doc, tag("h3"))))
		card := first(t, doc, class("timeline-card"))
		assert.Contains(t, textOf(card), "2020 - 2021")
		assert.Contains(t, textOf(card), "Acme")
	})

	t.Run("default side is left", func(t *testing.T) {
		doc := parse(t, TimelineItem(entry))
		row := first(t, doc, func(n *html.Node) bool { return attr(n, "data-side") != "" })
		assert.Equal(t, "left", attr(row, "data-side"))
		assert.False(t, class("md:flex-row-reverse")(row))
		assert.True(t, class("flex-col")(row))
	})

	t.Run("right side mirrors", func(t *testing.T) {
		right := entry
		right.Side = content.SideRight
		doc := parse(t, TimelineItem(right))
		row := first(t, doc, func(n *html.Node) bool { return attr(n, "data-side") != "" })
		assert.Equal(t, "right", attr(row, "data-side"))
		assert.True(t, class("md:flex-row-reverse")(row))
		assert.True(t, class("flex-col")(row))
	})

	t.Run("empty lists render empty containers", func(t *testing.T) {
		doc := parse(t, TimelineItem(content.Experience{Title: "Nothing yet"}))
		ul := first(t, doc, tag("ul"))
		assert.Empty(t, elementChildren(ul))
		tags := first(t, doc, class("tags"))
		assert.Empty(t, elementChildren(tags))
	})
}

func TestProjectCard(t *testing.T) {
	base := content.Project{
		Title:       "Thing",
		Description: "Does things",
		ImageURL:    "https://example.com/thing.png",
		Skills:      []string{"Go", "HTMX"},
	}

	actions := func(t *testing.T, p content.Project) []string {
		doc := parse(t, ProjectCard(p))
		bar := first(t, doc, class("project-actions"))
		return texts(elementChildren(bar))
	}

	tests := []struct {
		name      string
		liveURL   string
		sourceURL string
		want      []string
	}{
		{name: "both links", liveURL: "https://live.example.com", sourceURL: "https://github.com/x/y", want: []string{"Live Demo", "Code"}},
		{name: "live only", liveURL: "https://live.example.com", want: []string{"Live Demo"}},
		{name: "source only", sourceURL: "https://github.com/x/y", want: []string{"Code"}},
		{name: "no links", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.LiveURL = tt.liveURL
			p.SourceURL = tt.sourceURL
			assert.Equal(t, tt.want, actions(t, p))
		})
	}

	t.Run("actions link out safely", func(t *testing.T) {
		p := base
		p.LiveURL = "https://live.example.com"
		p.SourceURL = "https://github.com/x/y"
		doc := parse(t, ProjectCard(p))
		links := elementChildren(first(t, doc, class("project-actions")))
		require.Len(t, links, 2)
		assert.Equal(t, "https://live.example.com", attr(links[0], "href"))
		assert.Equal(t, "https://github.com/x/y", attr(links[1], "href"))
		for _, a := range links {
			assert.Equal(t, "_blank", attr(a, "target"))
			assert.Equal(t, "noopener noreferrer", attr(a, "rel"))
		}
	})

	t.Run("image and tags", func(t *testing.T) {
		doc := parse(t, ProjectCard(base))
		img := first(t, doc, tag("img"))
		assert.Equal(t, base.ImageURL, attr(img, "src"))
		assert.Equal(t, "Thing", attr(img, "alt"))
		assert.Equal(t, base.Skills, texts(findAll(doc, class("tag"))))
	})
}

func TestPage(t *testing.T) {
	site := content.Default()

	t.Run("sections in fixed order", func(t *testing.T) {
		doc := parse(t, Page(site, 2024))
		var ids []string
		for _, n := range findAll(doc, func(n *html.Node) bool {
			return (n.Data == "header" || n.Data == "section") && attr(n, "id") != ""
		}) {
			ids = append(ids, attr(n, "id"))
		}
		assert.Equal(t, []string{"hero", "experience", "projects", "skills", "achievements", "education", "contact"}, ids)
		assert.Len(t, findAll(doc, tag("footer")), 1)
	})

	t.Run("footer carries the year", func(t *testing.T) {
		for _, year := range []int{1999, 2024, 2031} {
			doc := parse(t, Page(site, year))
			footer := first(t, doc, tag("footer"))
			assert.Contains(t, textOf(footer), "© "+strconv.Itoa(year)+" "+site.Footer)
		}
	})

	t.Run("renders every entry", func(t *testing.T) {
		doc := parse(t, Page(site, 2024))
		assert.Len(t, findAll(doc, func(n *html.Node) bool { return attr(n, "data-side") != "" }), len(site.Experience))
		assert.Len(t, findAll(doc, class("project-card")), len(site.Projects))
		assert.Equal(t, site.Skills, texts(findAll(doc, class("skill"))))
		assert.Len(t, findAll(doc, class("achievement")), len(site.Achievements))
		assert.Len(t, findAll(doc, class("education")), len(site.Education))
	})

	t.Run("projects follow optional links", func(t *testing.T) {
		doc := parse(t, Page(site, 2024))
		bars := findAll(doc, class("project-actions"))
		require.Len(t, bars, 2)
		assert.Equal(t, []string{"Code"}, texts(elementChildren(bars[0])))
		assert.Equal(t, []string{"Live Demo", "Code"}, texts(elementChildren(bars[1])))
	})

	t.Run("social links open externally", func(t *testing.T) {
		doc := parse(t, Page(site, 2024))
		links := elementChildren(first(t, doc, class("socials")))
		require.Len(t, links, len(site.Profile.Socials))
		for i, a := range links {
			assert.Equal(t, site.Profile.Socials[i].URL, attr(a, "href"))
			assert.Equal(t, "noopener noreferrer", attr(a, "rel"))
		}
	})

	t.Run("contact is a mailto link", func(t *testing.T) {
		doc := parse(t, Page(site, 2024))
		contact := first(t, doc, func(n *html.Node) bool { return attr(n, "id") == "contact" })
		a := first(t, contact, tag("a"))
		assert.Equal(t, "mailto:"+site.Contact.Email, attr(a, "href"))
		assert.Equal(t, "Contact Me", textOf(a))
	})

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, render(t, Page(content.Default(), 2024)), render(t, Page(content.Default(), 2024)))
	})
}

func TestEmptySections(t *testing.T) {
	cases := map[string]struct {
		node      g.Node
		container string
	}{
		"skills":       {SkillsSection(nil), "skills-grid"},
		"projects":     {ProjectsSection([]content.Project{}), "projects-grid"},
		"timeline":     {ExperienceSection(nil), "timeline"},
		"achievements": {AchievementsSection(nil), "achievements-grid"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc := parse(t, tc.node)
			assert.Empty(t, elementChildren(first(t, doc, class(tc.container))))
		})
	}
}

func TestEducationSection(t *testing.T) {
	doc := parse(t, EducationSection([]content.Education{
		{Degree: "BSc", Institution: "Uni", Period: "2019 - 2023", Grade: "GPA 3.8", Location: "Somewhere"},
		{Degree: "Cert", Institution: "Board"},
	}))
	cards := findAll(doc, class("education"))
	require.Len(t, cards, 2)
	assert.Contains(t, textOf(cards[0]), "2019 - 2023 | GPA 3.8")
	assert.Contains(t, textOf(cards[0]), "Somewhere")
	assert.Len(t, findAll(cards[1], tag("p")), 1)
}

func TestPrivacyPage(t *testing.T) {
	t.Run("tracking on", func(t *testing.T) {
		doc := parse(t, PrivacyPage("Jane Doe", true, 30*24*time.Hour, 2024))
		assert.Equal(t, "Privacy Policy", textOf(first(t, doc, tag("h1"))))
		notice := textOf(first(t, doc, tag("ul")))
		assert.Contains(t, notice, "after 30 days")
		assert.Contains(t, notice, "each time the server starts")
		assert.Empty(t, findAll(doc, class("no-tracking")))
		assert.Contains(t, textOf(first(t, doc, tag("footer"))), "© 2024 Jane Doe")
	})

	t.Run("tracking off", func(t *testing.T) {
		doc := parse(t, PrivacyPage("Jane Doe", false, 30*24*time.Hour, 2024))
		assert.Contains(t, textOf(first(t, doc, class("no-tracking"))), "No analytics are collected")
		assert.Empty(t, findAll(doc, tag("ul")))
		assert.NotContains(t, textOf(doc), "Records are deleted")
	})
}

func TestLoginPage(t *testing.T) {
	doc := parse(t, LoginPage("Jane Doe", false, 2024))
	form := first(t, doc, tag("form"))
	assert.Equal(t, "post", attr(form, "method"))
	assert.Equal(t, "/admin/login", attr(form, "action"))

	input := first(t, form, tag("input"))
	assert.Equal(t, "token", attr(input, "name"))
	assert.Equal(t, "password", attr(input, "type"))
	assert.Empty(t, findAll(doc, class("login-error")))

	doc = parse(t, LoginPage("Jane Doe", true, 2024))
	assert.Equal(t, "Invalid token", textOf(first(t, doc, class("login-error"))))
}

func TestVisitorsPage(t *testing.T) {
	at := time.Date(2024, time.May, 2, 9, 30, 0, 0, time.UTC)
	visits := []analytics.Visit{
		{HashedIP: "0123456789abcdef", UserAgent: "agent/1", Path: "/", VisitedAt: at},
		{HashedIP: "fedcba9876543210", UserAgent: "agent/2", Path: "/sections/projects", VisitedAt: at.Add(-time.Hour)},
	}

	doc := parse(t, VisitorsPage("Jane Doe", visits, 2024))
	rows := findAll(doc, class("visit"))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-05-02 09:30 UTC", "/", "0123456789abcdef", "agent/1"}, texts(findAll(rows[0], tag("td"))))
	assert.Contains(t, textOf(rows[1]), "/sections/projects")
	assert.Equal(t, "Visits shown: 2", textOf(first(t, doc, class("visit-count"))))

	links := findAll(first(t, doc, tag("nav")), tag("a"))
	assert.Equal(t, "/admin/logout", attr(links[1], "href"))

	empty := parse(t, VisitorsPage("Jane Doe", nil, 2024))
	assert.Empty(t, elementChildren(first(t, empty, tag("tbody"))))
}

func TestHTMLRender(t *testing.T) {
	t.Run("writes markup with html content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, HTML{Node: Footer("x", 2024)}.Render(w))
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "© 2024 x")
	})

	t.Run("keeps an existing content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		w.Header().Set("Content-Type", "text/plain")
		require.NoError(t, HTML{}.Render(w))
		assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Body.String())
	})
}
