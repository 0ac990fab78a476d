package dispatch

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"iris-eda/dataset"
	"iris-eda/rock-share/global/enum"
	"iris-eda/utils"
)

// Selection 一次渲染的选择，每个模式一种类型，只带本模式需要的参数
type Selection interface {
	Mode() enum.Mode
}

type Overview struct{}

type Summary struct{}

type Distribution struct {
	Feature string
}

type Joint struct {
	X    string
	Y    string
	Kind enum.Kind
}

type Pair struct{}

// Categorical boxen/strip/swarm，Plot 是三者之一
type Categorical struct {
	Plot    enum.Mode
	Feature string
}

func (Overview) Mode() enum.Mode     { return enum.MODE_OVERVIEW }
func (Summary) Mode() enum.Mode      { return enum.MODE_SUMMARY }
func (Distribution) Mode() enum.Mode { return enum.MODE_DISTRIBUTION }
func (Joint) Mode() enum.Mode        { return enum.MODE_JOINT }
func (Pair) Mode() enum.Mode         { return enum.MODE_PAIR }
func (c Categorical) Mode() enum.Mode {
	return c.Plot
}

// Params 页面和接口的原始查询参数
type Params struct {
	Mode    string `form:"mode" json:"mode"`
	Feature string `form:"feature" json:"feature"`
	X       string `form:"x" json:"x"`
	Y       string `form:"y" json:"y"`
	Kind    string `form:"kind" json:"kind"`
}

// Resolve 把查询参数转成 Selection，只读取当前模式用到的参数。
// 页面上 strict=false，取值不合法时退回下拉框的默认项；
// 接口上 strict=true，不合法直接报错。
func Resolve(frame *dataset.Frame, p Params, strict bool) (Selection, error) {
	mode, ok := enum.ParseMode(p.Mode)
	if !ok && strict && strings.TrimSpace(p.Mode) != "" {
		return nil, errors.Wrapf(utils.ErrParameter, "unknown mode %q", p.Mode)
	}
	numeric := frame.NumericColumns()

	switch mode {
	case enum.MODE_OVERVIEW:
		return Overview{}, nil
	case enum.MODE_SUMMARY:
		return Summary{}, nil
	case enum.MODE_PAIR:
		return Pair{}, nil
	case enum.MODE_DISTRIBUTION:
		col, err := pick(numeric, p.Feature, 0, strict)
		if err != nil {
			return nil, err
		}
		return Distribution{Feature: col}, nil
	case enum.MODE_JOINT:
		x, err := pick(numeric, p.X, 0, strict)
		if err != nil {
			return nil, err
		}
		y, err := pick(numeric, p.Y, 1, strict)
		if err != nil {
			return nil, err
		}
		kind, ok := enum.ParseKind(p.Kind)
		if !ok && strict && strings.TrimSpace(p.Kind) != "" {
			return nil, errors.Wrapf(utils.ErrParameter, "unknown kind %q", p.Kind)
		}
		return Joint{X: x, Y: y, Kind: kind}, nil
	default:
		col, err := pick(numeric, p.Feature, 0, strict)
		if err != nil {
			return nil, err
		}
		return Categorical{Plot: mode, Feature: col}, nil
	}
}

// pick 从数值列里取一个，空值用第 def 个选项
func pick(options []string, value string, def int, strict bool) (string, error) {
	value = strings.TrimSpace(value)
	if slices.Contains(options, value) {
		return value, nil
	}
	if value != "" && strict {
		return "", errors.Wrapf(utils.ErrColumnNotExist, "numeric column %q", value)
	}
	if len(options) == 0 {
		return "", errors.Wrap(utils.ErrWrongDataType, "no numeric column")
	}
	return options[utils.Min(def, len(options)-1)], nil
}
