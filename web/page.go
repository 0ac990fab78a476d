package web

import (
	_ "embed"
	"encoding/base64"
	"html/template"
	"strings"

	"iris-eda/dispatch"
	"iris-eda/rock-share/base/config"
)

//go:embed templates/index.tmpl
var indexTemplate string

const indexName = "index"

func newTemplate() *template.Template {
	funcMap := template.FuncMap{
		"bold": bold,
	}
	return template.Must(template.New(indexName).Funcs(funcMap).Parse(indexTemplate))
}

// pageData 页面的全部内容，产物只会填其中一项
type pageData struct {
	Page         config.PageConfig
	SidebarLabel string
	Modes        []modeInfo
	Mode         string
	Header       string
	Controls     []control

	Overview    *dispatch.OverviewArtifact
	Summary     *dispatch.SummaryArtifact
	Figure      template.URL
	FigureWidth int
	Info        string
	Warning     string
	Error       string
}

func (p *pageData) fill(a dispatch.Artifact) {
	switch v := a.(type) {
	case dispatch.OverviewArtifact:
		p.Overview = &v
	case dispatch.SummaryArtifact:
		p.Summary = &v
	case dispatch.FigureArtifact:
		p.Figure = pngURL(v.Figure.PNG)
		p.FigureWidth = v.Figure.Width
		p.Info = v.Info
	case dispatch.WarningArtifact:
		p.Warning = v.Message
	}
}

func pngURL(b []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b))
}

// bold 只处理 **text**，其余内容转义
func bold(s string) template.HTML {
	parts := strings.Split(s, "**")
	var b strings.Builder
	for i, part := range parts {
		open := i%2 == 1 && i < len(parts)-1
		if open {
			b.WriteString("<strong>")
		} else if i%2 == 1 {
			b.WriteString("**")
		}
		b.WriteString(template.HTMLEscapeString(part))
		if open {
			b.WriteString("</strong>")
		}
	}
	return template.HTML(b.String())
}
