package render

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"iris-eda/stats"
)

// 自定义的 chart.Series，go-chart 自带的系列只有折线和柱状图

var (
	_ chart.Series = (*shapeSeries)(nil)
	_ chart.Series = (*segmentSeries)(nil)
	_ chart.Series = (*swarmSeries)(nil)
)

// shape 数据坐标下的闭合多边形
type shape struct {
	xs    []float64
	ys    []float64
	style chart.Style
}

// shapeSeries 填充多边形：直方图柱子、六边形、置信带、增强箱线图的箱体
type shapeSeries struct {
	name   string
	style  chart.Style
	shapes []shape
}

func (s shapeSeries) GetName() string {
	return s.name
}

func (s shapeSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (s shapeSeries) GetStyle() chart.Style {
	return s.style
}

func (s shapeSeries) Validate() error {
	for i, sh := range s.shapes {
		if len(sh.xs) != len(sh.ys) {
			return fmt.Errorf("shape series %s: shape %d has %d x and %d y", s.name, i, len(sh.xs), len(sh.ys))
		}
	}
	return nil
}

func (s shapeSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	for _, sh := range s.shapes {
		if len(sh.xs) < 3 {
			continue
		}
		style := sh.style.InheritFrom(s.style)
		style.GetFillAndStrokeOptions().WriteDrawingOptionsToRenderer(r)
		r.MoveTo(canvasBox.Left+xrange.Translate(sh.xs[0]), canvasBox.Bottom-yrange.Translate(sh.ys[0]))
		for i := 1; i < len(sh.xs); i++ {
			r.LineTo(canvasBox.Left+xrange.Translate(sh.xs[i]), canvasBox.Bottom-yrange.Translate(sh.ys[i]))
		}
		r.Close()
		switch {
		case style.ShouldDrawFill() && style.ShouldDrawStroke():
			r.FillStroke()
		case style.ShouldDrawFill():
			r.Fill()
		default:
			r.Stroke()
		}
	}
}

// segmentSeries 互不相连的线段，用于等值线和中位数线
type segmentSeries struct {
	name     string
	style    chart.Style
	segments []stats.Segment
}

func (s segmentSeries) GetName() string {
	return s.name
}

func (s segmentSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (s segmentSeries) GetStyle() chart.Style {
	return s.style
}

func (s segmentSeries) Validate() error {
	return nil
}

func (s segmentSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := s.style.InheritFrom(defaults)
	style.GetStrokeOptions().WriteDrawingOptionsToRenderer(r)
	for _, seg := range s.segments {
		r.MoveTo(canvasBox.Left+xrange.Translate(seg.X1), canvasBox.Bottom-yrange.Translate(seg.Y1))
		r.LineTo(canvasBox.Left+xrange.Translate(seg.X2), canvasBox.Bottom-yrange.Translate(seg.Y2))
		r.Stroke()
	}
}

// swarmSeries 蜂群图，偏移量要在像素空间里算，所以放到 Render 时计算
type swarmSeries struct {
	name   string
	style  chart.Style
	groups [][]float64 // 第i组画在 x=i 处
	width  float64     // 每组最多占用的x宽度
}

func (s swarmSeries) GetName() string {
	return s.name
}

func (s swarmSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (s swarmSeries) GetStyle() chart.Style {
	return s.style
}

func (s swarmSeries) Validate() error {
	if s.style.DotWidth <= 0 {
		return fmt.Errorf("swarm series %s: dot width must be positive", s.name)
	}
	return nil
}

func (s swarmSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := s.style.InheritFrom(defaults)
	radius := style.GetDotWidth()
	style.GetDotOptions().WriteDrawingOptionsToRenderer(r)

	// 一组最多可以占用的像素宽度
	halfSpan := math.Abs(float64(xrange.Translate(s.width/2) - xrange.Translate(0)))
	for i, values := range s.groups {
		center := float64(canvasBox.Left + xrange.Translate(float64(i)))
		pixY := make([]float64, len(values))
		for j, v := range values {
			pixY[j] = float64(canvasBox.Bottom - yrange.Translate(v))
		}
		offsets := stats.Beeswarm(pixY, 2*radius)
		for j := range values {
			off := offsets[j]
			// 放不下的点压到边缘
			if halfSpan > 0 && math.Abs(off) > halfSpan {
				off = math.Copysign(halfSpan, off)
			}
			r.Circle(radius, int(center+off), int(pixY[j]))
			r.FillStroke()
		}
	}
}

// rect 轴对齐矩形
func rect(x0, y0, x1, y1 float64, style chart.Style) shape {
	return shape{
		xs:    []float64{x0, x1, x1, x0},
		ys:    []float64{y0, y0, y1, y1},
		style: style,
	}
}

// histShapes 直方图柱子，horizontal 为 true 时柱子横向(用于右侧边缘图)
func histShapes(h stats.Histogram, scale float64, horizontal bool, style chart.Style) []shape {
	res := make([]shape, 0, len(h.Counts))
	for i, c := range h.Counts {
		height := float64(c) * scale
		if horizontal {
			res = append(res, rect(0, h.Edges[i], height, h.Edges[i+1], style))
		} else {
			res = append(res, rect(h.Edges[i], 0, h.Edges[i+1], height, style))
		}
	}
	return res
}

// areaShape 曲线与基线0之间的区域
func areaShape(c stats.Curve, horizontal bool, style chart.Style) shape {
	n := len(c.X)
	xs := make([]float64, 0, n+2)
	ys := make([]float64, 0, n+2)
	for i := 0; i < n; i++ {
		if horizontal {
			xs = append(xs, c.Y[i])
			ys = append(ys, c.X[i])
		} else {
			xs = append(xs, c.X[i])
			ys = append(ys, c.Y[i])
		}
	}
	if n > 0 {
		if horizontal {
			xs = append(xs, 0, 0)
			ys = append(ys, c.X[n-1], c.X[0])
		} else {
			xs = append(xs, c.X[n-1], c.X[0])
			ys = append(ys, 0, 0)
		}
	}
	return shape{xs: xs, ys: ys, style: style}
}

// curveSeries 折线
func curveSeries(name string, c stats.Curve, horizontal bool, color drawing.Color, width float64) chart.ContinuousSeries {
	xs, ys := c.X, c.Y
	if horizontal {
		xs, ys = c.Y, c.X
	}
	return chart.ContinuousSeries{
		Name:    name,
		Style:   chart.Style{StrokeColor: color, StrokeWidth: width},
		XValues: xs,
		YValues: ys,
	}
}

// dotSeries 散点
func dotSeries(name string, xs, ys []float64, color drawing.Color, radius float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotColor:    color,
			DotWidth:    radius,
		},
		XValues: xs,
		YValues: ys,
	}
}
