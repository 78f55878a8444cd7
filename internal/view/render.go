package view

import (
	"net/http"

	g "maragu.dev/gomponents"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// HTML adapts a node tree to gin's render.Render, so handlers can call
// c.Render(status, view.HTML{Node: n}).
type HTML struct {
	Node g.Node
}

func (r HTML) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	if r.Node == nil {
		return nil
	}
	return r.Node.Render(w)
}

func (r HTML) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
