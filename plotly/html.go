// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/google/uuid"
)

// plotlyCDN is the plotly.js bundle loaded by WriteHTML documents.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.27.0.min.js"

var htmlDoc = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.CDN}}"></script>
<style>
html, body { margin: 0; padding: 0; height: 100%; }
#{{.DivID}} { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="{{.DivID}}"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("{{.DivID}}", figure.data, figure.layout, figure.config){{if .OnClick}}.then(function(gd) {
  gd.on("plotly_click", function(data) {
{{.OnClick}}
  });
}){{end}};
</script>
</body>
</html>
`))

type htmlData struct {
	Title   string
	CDN     string
	DivID   string
	Figure  template.JS
	OnClick template.JS
}

// WriteHTML writes a self-contained HTML document to w that renders
// the figure with plotly.js loaded from its CDN. Each document gets
// a unique plot div ID, so several can be concatenated or embedded
// in one page without colliding.
//
// If f.OnClick is set, the document binds it to the figure's
// plotly_click event. The statements are emitted into the document
// unescaped and must come from a trusted source.
func (f *Figure) WriteHTML(w io.Writer, title string) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return htmlDoc.Execute(w, &htmlData{
		Title:   title,
		CDN:     plotlyCDN,
		DivID:   "plotly-" + uuid.NewString(),
		Figure:  template.JS(b),
		OnClick: template.JS(f.OnClick),
	})
}

// WriteHTML builds the figure and writes it as a standalone HTML
// document to w, titled with the plot title.
func (p *Plot) WriteHTML(w io.Writer) error {
	return p.Figure().WriteHTML(w, p.title)
}
