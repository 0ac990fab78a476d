package dispatch

import (
	"context"
	"fmt"

	"github.com/orcaman/concurrent-map"
	"github.com/pkg/errors"

	"iris-eda/dataset"
	"iris-eda/render"
	"iris-eda/rock-share/base/config"
	"iris-eda/rock-share/base/logger"
	"iris-eda/rock-share/global/enum"
	"iris-eda/stats"
	"iris-eda/utils"
)

const (
	MetricRows    = "Rows"
	MetricColumns = "Columns"
	MetricMissing = "Missing Values"

	SameColumnWarning = "Please select different features"
)

// Dispatcher 按模式生成产物，除了计数器没有可变状态
type Dispatcher struct {
	frame       *dataset.Frame
	renderer    *render.Renderer
	previewRows int
	counters    cmap.ConcurrentMap // mode -> 渲染次数
}

func NewDispatcher(frame *dataset.Frame, cfg *config.AllConfig) *Dispatcher {
	return &Dispatcher{
		frame:       frame,
		renderer:    render.NewRenderer(frame, cfg.Render),
		previewRows: cfg.Dataset.PreviewRows,
		counters:    cmap.New(),
	}
}

func (d *Dispatcher) Frame() *dataset.Frame {
	return d.frame
}

// Dispatch 每个选择产出且只产出一个产物
func (d *Dispatcher) Dispatch(ctx context.Context, sel Selection) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		artifact Artifact
		err      error
	)
	switch s := sel.(type) {
	case Overview:
		artifact = d.overview()
	case Summary:
		artifact = d.summary()
	case Joint:
		if s.X == s.Y {
			logger.Debugf("joint plot with %s on both axes", s.X)
			artifact = WarningArtifact{Message: SameColumnWarning}
			break
		}
		artifact, err = d.figure(sel)
	default:
		artifact, err = d.figure(sel)
	}
	if err != nil {
		return nil, err
	}
	d.count(sel.Mode())
	return artifact, nil
}

// SpecOf 出图模式对应的图形描述，Overview/Summary 返回 ErrNoFigure
func (d *Dispatcher) SpecOf(sel Selection) (render.Spec, error) {
	levels := d.frame.Levels()
	label := d.frame.LabelColumn()
	switch s := sel.(type) {
	case Distribution:
		return render.Spec{
			Mode:  enum.MODE_DISTRIBUTION,
			Title: fmt.Sprintf("Distribution of %s", s.Feature),
			X:     s.Feature,
		}, nil
	case Joint:
		if s.X == s.Y {
			return render.Spec{}, errors.Wrapf(utils.ErrParameter, "joint plot with %s on both axes", s.X)
		}
		spec := render.Spec{Mode: enum.MODE_JOINT, Kind: s.Kind, X: s.X, Y: s.Y}
		if s.Kind.UsesHue() {
			spec.Hue = label
			spec.HueLevels = levels
		}
		return spec, nil
	case Pair:
		return render.Spec{
			Mode:      enum.MODE_PAIR,
			Columns:   d.frame.NumericColumns(),
			Hue:       label,
			HueLevels: levels,
			Info:      fmt.Sprintf("Color coded by %s", label),
		}, nil
	case Categorical:
		if !s.Plot.IsCategorical() {
			return render.Spec{}, errors.Wrapf(utils.ErrParameter, "mode %s is not categorical", s.Plot)
		}
		return render.Spec{
			Mode:       s.Plot,
			Title:      fmt.Sprintf("%s by %s", s.Feature, utils.Capitalize(label)),
			Y:          s.Feature,
			Category:   label,
			Categories: levels,
		}, nil
	default:
		return render.Spec{}, errors.Wrapf(utils.ErrNoFigure, "mode %s", sel.Mode())
	}
}

// Counters 各模式的渲染次数
func (d *Dispatcher) Counters() map[string]int {
	res := map[string]int{}
	for k, v := range d.counters.Items() {
		if n, ok := v.(int); ok {
			res[k] = n
		}
	}
	return res
}

func (d *Dispatcher) count(mode enum.Mode) {
	d.counters.Upsert(string(mode), 1, func(exist bool, valueInMap interface{}, newValue interface{}) interface{} {
		if !exist {
			return newValue
		}
		return valueInMap.(int) + newValue.(int)
	})
}

func (d *Dispatcher) overview() OverviewArtifact {
	names := d.frame.Names()
	dtypes := d.frame.Dtypes()
	columnTypes := make([]ColumnType, len(names))
	for i := range names {
		columnTypes[i] = ColumnType{Name: names[i], Dtype: dtypes[i]}
	}
	return OverviewArtifact{
		Columns: names,
		Rows:    d.frame.Records(d.previewRows),
		Metrics: []Metric{
			{Label: MetricRows, Value: d.frame.Len()},
			{Label: MetricColumns, Value: d.frame.Ncol()},
			{Label: MetricMissing, Value: d.frame.MissingCount()},
		},
		Dtypes: columnTypes,
	}
}

func (d *Dispatcher) summary() SummaryArtifact {
	cols := d.frame.NumericColumns()
	res := SummaryArtifact{
		Columns: cols,
		Labels:  stats.DescribeLabels,
		Stats:   make([]stats.Description, len(cols)),
	}
	for i, col := range cols {
		res.Stats[i] = stats.Describe(d.frame.GetColumnValuesSorted(col))
	}
	return res
}

func (d *Dispatcher) figure(sel Selection) (Artifact, error) {
	spec, err := d.SpecOf(sel)
	if err != nil {
		return nil, err
	}
	fig, err := d.renderer.Render(spec)
	if err != nil {
		return nil, err
	}
	return FigureArtifact{Figure: fig, Info: spec.Info}, nil
}
