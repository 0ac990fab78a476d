package dispatch

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"iris-eda/render"
	"iris-eda/stats"
)

const (
	ARTIFACT_OVERVIEW = "overview"
	ARTIFACT_SUMMARY  = "summary"
	ARTIFACT_FIGURE   = "figure"
	ARTIFACT_WARNING  = "warning"
)

// Artifact 一次渲染写到页面上的唯一产物
type Artifact interface {
	Type() string
}

type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ColumnType struct {
	Name  string `json:"name"`
	Dtype string `json:"dtype"`
}

// OverviewArtifact 数据预览、三个指标和列类型
type OverviewArtifact struct {
	Columns []string     `json:"columns"`
	Rows    [][]string   `json:"rows"`
	Metrics []Metric     `json:"metrics"`
	Dtypes  []ColumnType `json:"dtypes"`
}

func (OverviewArtifact) Type() string { return ARTIFACT_OVERVIEW }

// Metric 按名字取指标值，不存在返回-1
func (a OverviewArtifact) Metric(label string) int {
	for _, m := range a.Metrics {
		if m.Label == label {
			return m.Value
		}
	}
	return -1
}

// SummaryArtifact 每个数值列一组描述统计，行是统计量，列是数值列
type SummaryArtifact struct {
	Columns []string            `json:"columns"`
	Labels  []string            `json:"labels"`
	Stats   []stats.Description `json:"stats"`
}

func (SummaryArtifact) Type() string { return ARTIFACT_SUMMARY }

// Of 取一列的统计，列不在表里时 ok=false
func (a SummaryArtifact) Of(col string) (stats.Description, bool) {
	for i, c := range a.Columns {
		if c == col {
			return a.Stats[i], true
		}
	}
	return stats.Description{}, false
}

// Table 页面上的表格，数值保留6位小数
func (a SummaryArtifact) Table() [][]string {
	res := make([][]string, len(a.Labels))
	for i, label := range a.Labels {
		row := make([]string, 0, len(a.Columns)+1)
		row = append(row, label)
		for _, d := range a.Stats {
			row = append(row, strconv.FormatFloat(d.Values()[i], 'f', 6, 64))
		}
		res[i] = row
	}
	return res
}

// Text 纯文本表格
func (a SummaryArtifact) Text() string {
	t := table.NewWriter()
	header := table.Row{""}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft}}
	for i, c := range a.Columns {
		header = append(header, c)
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight, AlignHeader: text.AlignCenter})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)
	for _, r := range a.Table() {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)
	return t.Render()
}

// FigureArtifact 一张图，Info 是图上方的提示
type FigureArtifact struct {
	Figure *render.Figure `json:"figure"`
	Info   string         `json:"info,omitempty"`
}

func (FigureArtifact) Type() string { return ARTIFACT_FIGURE }

// WarningArtifact 选择冲突，不出图
type WarningArtifact struct {
	Message string `json:"message"`
}

func (WarningArtifact) Type() string { return ARTIFACT_WARNING }
