package enum

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Mode 分析模式，侧边栏单选
type Mode string

const (
	MODE_OVERVIEW     Mode = "overview"
	MODE_SUMMARY      Mode = "summary"
	MODE_DISTRIBUTION Mode = "distribution"
	MODE_JOINT        Mode = "joint"
	MODE_PAIR         Mode = "pair"
	MODE_BOXEN        Mode = "boxen"
	MODE_STRIP        Mode = "strip"
	MODE_SWARM        Mode = "swarm"
)

// DefaultMode 选择为空或无法识别时使用第一个模式
const DefaultMode = MODE_OVERVIEW

// modes 侧边栏显示顺序
var modes = []Mode{
	MODE_OVERVIEW,
	MODE_SUMMARY,
	MODE_DISTRIBUTION,
	MODE_JOINT,
	MODE_PAIR,
	MODE_BOXEN,
	MODE_STRIP,
	MODE_SWARM,
}

var modeLabels = map[Mode]string{
	MODE_OVERVIEW:     "Dataset Overview",
	MODE_SUMMARY:      "Statistical Summary",
	MODE_DISTRIBUTION: "Distribution Plot",
	MODE_JOINT:        "Joint Plot",
	MODE_PAIR:         "Pair Plot",
	MODE_BOXEN:        "Boxen Plot",
	MODE_STRIP:        "Strip Plot",
	MODE_SWARM:        "Swarm Plot",
}

var modeHeaders = map[Mode]string{
	MODE_OVERVIEW:     "📄 Dataset Preview",
	MODE_SUMMARY:      "📊 Descriptive Statistics",
	MODE_DISTRIBUTION: "📈 Distribution Plot",
	MODE_JOINT:        "🔗 Joint Plot",
	MODE_PAIR:         "🔀 Pair Plot",
	MODE_BOXEN:        "📦 Boxen Plot",
	MODE_STRIP:        "📌 Strip Plot",
	MODE_SWARM:        "🐝 Swarm Plot",
}

// Modes 返回全部模式的拷贝
func Modes() []Mode {
	return slices.Clone(modes)
}

func (m Mode) Label() string {
	return modeLabels[m]
}

// Header 页面子标题
func (m Mode) Header() string {
	return modeHeaders[m]
}

func (m Mode) Valid() bool {
	return slices.Contains(modes, m)
}

// HasFigure 是否产出图像
func (m Mode) HasFigure() bool {
	return m != MODE_OVERVIEW && m != MODE_SUMMARY
}

// IsCategorical boxen/strip/swarm 三种按类别分组的图
func (m Mode) IsCategorical() bool {
	return m == MODE_BOXEN || m == MODE_STRIP || m == MODE_SWARM
}

// ParseMode 同时接受slug和显示名
func ParseMode(s string) (Mode, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMode, false
	}
	if m := Mode(strings.ToLower(s)); m.Valid() {
		return m, true
	}
	for _, m := range modes {
		if strings.EqualFold(modeLabels[m], s) {
			return m, true
		}
	}
	return DefaultMode, false
}
