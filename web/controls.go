package web

import (
	"iris-eda/dataset"
	"iris-eda/dispatch"
	"iris-eda/rock-share/global/enum"
)

const sidebarLabel = "Select Analysis Type"

type option struct {
	Value    string `json:"value"`
	Selected bool   `json:"-"`
}

// control 模式内的下拉框，选项只来自数值列或固定列表
type control struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []option `json:"options"`
}

type modeInfo struct {
	Slug     string    `json:"slug"`
	Label    string    `json:"label"`
	Header   string    `json:"header"`
	Figure   bool      `json:"figure"`
	Controls []control `json:"controls"`
	Selected bool      `json:"-"`
}

func newControl(name, label string, values []string, selected string) control {
	c := control{Name: name, Label: label, Options: make([]option, len(values))}
	for i, v := range values {
		c.Options[i] = option{Value: v, Selected: v == selected}
	}
	return c
}

func kindValues() []string {
	kinds := enum.Kinds()
	res := make([]string, len(kinds))
	for i, k := range kinds {
		res[i] = string(k)
	}
	return res
}

// controlsOf 当前选择下要显示的控件，Joint 的 X、Y 相同时不显示 Plot Type
func controlsOf(frame *dataset.Frame, sel dispatch.Selection) []control {
	numeric := frame.NumericColumns()
	switch s := sel.(type) {
	case dispatch.Distribution:
		return []control{newControl("feature", "Select Feature", numeric, s.Feature)}
	case dispatch.Joint:
		res := []control{
			newControl("x", "X Axis", numeric, s.X),
			newControl("y", "Y Axis", numeric, s.Y),
		}
		if s.X != s.Y {
			res = append(res, newControl("kind", "Plot Type", kindValues(), string(s.Kind)))
		}
		return res
	case dispatch.Categorical:
		return []control{newControl("feature", "Feature", numeric, s.Feature)}
	default:
		return nil
	}
}

// modeList 侧边栏和 /api/modes，控件取各模式的默认选择
func modeList(frame *dataset.Frame, current enum.Mode) []modeInfo {
	modes := enum.Modes()
	res := make([]modeInfo, len(modes))
	for i, m := range modes {
		info := modeInfo{
			Slug:     string(m),
			Label:    m.Label(),
			Header:   m.Header(),
			Figure:   m.HasFigure(),
			Selected: m == current,
		}
		if sel, err := dispatch.Resolve(frame, dispatch.Params{Mode: string(m)}, false); err == nil {
			info.Controls = controlsOf(frame, sel)
		}
		res[i] = info
	}
	return res
}
