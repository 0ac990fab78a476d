package render

import (
	"iris-eda/rock-share/global/enum"
)

// Spec 与具体绘图库无关的图形描述，由 dispatch 生成
type Spec struct {
	Mode  enum.Mode `json:"mode"`
	Kind  enum.Kind `json:"kind,omitempty"`
	Title string    `json:"title,omitempty"`
	// 分布图的列、联合图的X
	X string `json:"x,omitempty"`
	// 联合图的Y、类别图的数值列
	Y string `json:"y,omitempty"`
	// 矩阵图的全部列
	Columns   []string `json:"columns,omitempty"`
	Hue       string   `json:"hue,omitempty"`
	HueLevels []string `json:"hue_levels,omitempty"`
	// 类别图的X轴
	Category   string   `json:"category,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Info       string   `json:"info,omitempty"`
}

// Figure 一次渲染的结果
type Figure struct {
	Spec   Spec   `json:"spec"`
	PNG    []byte `json:"-"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
