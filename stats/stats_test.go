package stats

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var sepalLength = []float64{
	5.1, 4.9, 4.7, 4.6, 5.0, 5.4, 4.6, 5.0, 4.4, 4.9, 5.4, 4.8, 4.8, 4.3, 5.8, 5.7, 5.4, 5.1, 5.7, 5.1, 5.4, 5.1, 4.6, 5.1, 4.8,
	5.0, 5.0, 5.2, 5.2, 4.7, 4.8, 5.4, 5.2, 5.5, 4.9, 5.0, 5.5, 4.9, 4.4, 5.1, 5.0, 4.5, 4.4, 5.0, 5.1, 4.8, 5.1, 4.6, 5.3, 5.0,
	7.0, 6.4, 6.9, 5.5, 6.5, 5.7, 6.3, 4.9, 6.6, 5.2, 5.0, 5.9, 6.0, 6.1, 5.6, 6.7, 5.6, 5.8, 6.2, 5.6, 5.9, 6.1, 6.3, 6.1, 6.4,
	6.6, 6.8, 6.7, 6.0, 5.7, 5.5, 5.5, 5.8, 6.0, 5.4, 6.0, 6.7, 6.3, 5.6, 5.5, 5.5, 6.1, 5.8, 5.0, 5.6, 5.7, 5.7, 6.2, 5.1, 5.7,
	6.3, 5.8, 7.1, 6.3, 6.5, 7.6, 4.9, 7.3, 6.7, 7.2, 6.5, 6.4, 6.8, 5.7, 5.8, 6.4, 6.5, 7.7, 7.7, 6.0, 6.9, 5.6, 7.7, 6.3, 6.7,
	7.2, 6.2, 6.1, 6.4, 7.2, 7.4, 7.9, 6.4, 6.3, 6.1, 7.7, 6.3, 6.4, 6.0, 6.9, 6.7, 6.9, 5.8, 6.8, 6.7, 6.7, 6.3, 6.5, 6.2, 5.9,
}

func TestDescribe(t *testing.T) {
	Convey("TestDescribe", t, func() {
		So(len(sepalLength), ShouldEqual, 150)
		d := Describe(sepalLength)
		So(d.Count, ShouldEqual, 150)
		So(d.Mean, ShouldAlmostEqual, 5.843333, 1e-6)
		So(d.Std, ShouldAlmostEqual, 0.828066, 1e-6)
		So(d.Min, ShouldEqual, 4.3)
		So(d.Q25, ShouldAlmostEqual, 5.1, 1e-9)
		So(d.Q50, ShouldAlmostEqual, 5.8, 1e-9)
		So(d.Q75, ShouldAlmostEqual, 6.4, 1e-9)
		So(d.Max, ShouldEqual, 7.9)
		So(len(d.Values()), ShouldEqual, len(DescribeLabels))

		Convey("empty and nan", func() {
			e := Describe([]float64{math.NaN()})
			So(e.Count, ShouldEqual, 0)
			So(math.IsNaN(e.Mean), ShouldBeTrue)

			one := Describe([]float64{2, math.NaN()})
			So(one.Count, ShouldEqual, 1)
			So(one.Mean, ShouldEqual, 2)
			So(math.IsNaN(one.Std), ShouldBeTrue)
		})
	})
}

func TestQuantile(t *testing.T) {
	Convey("TestQuantile", t, func() {
		v := []float64{4, 1, 3, 2}
		So(Quantile(v, 0), ShouldEqual, 1)
		So(Quantile(v, 1), ShouldEqual, 4)
		So(Quantile(v, 0.5), ShouldAlmostEqual, 2.5, 1e-12)
		So(Quantile(v, 0.25), ShouldAlmostEqual, 1.75, 1e-12)
		So(IQR(v), ShouldAlmostEqual, 1.5, 1e-12)
		So(math.IsNaN(Quantile(nil, 0.5)), ShouldBeTrue)
	})
}

func TestMathUtil(t *testing.T) {
	Convey("TestMathUtil", t, func() {
		v := []float64{1, math.NaN(), 3}
		So(Mean(v), ShouldEqual, 2)
		So(Max(v), ShouldEqual, 3)
		So(Min(v), ShouldEqual, 1)
		So(Linspace(0, 1, 5), ShouldResemble, []float64{0, 0.25, 0.5, 0.75, 1})
		So(Linspace(0, 1, 0), ShouldBeNil)
	})
}

func TestCovariance(t *testing.T) {
	Convey("TestCovariance", t, func() {
		a := []float64{1, 2, 3, 4}
		So(Covariance(a, a), ShouldAlmostEqual, Variance(a, Mean(a)), 1e-12)
		So(Covariance(a, []float64{8, 6, 4, 2}), ShouldAlmostEqual, -10.0/3, 1e-12)
		So(math.IsNaN(Covariance([]float64{1}, []float64{2})), ShouldBeTrue)
	})
}

func TestHistogram(t *testing.T) {
	Convey("TestHistogram", t, func() {
		So(AutoBins(sepalLength), ShouldEqual, 9)
		So(FreedmanDiaconisBins(sepalLength), ShouldEqual, 8)
		So(AutoBins([]float64{3, 3, 3}), ShouldEqual, 1)
		So(FreedmanDiaconisBins([]float64{1}), ShouldEqual, 1)

		h := NewHistogram(sepalLength, 9)
		So(len(h.Counts), ShouldEqual, 9)
		So(len(h.Edges), ShouldEqual, 10)
		So(h.Edges[0], ShouldEqual, 4.3)
		So(h.Edges[9], ShouldEqual, 7.9)
		So(h.BinWidth(), ShouldAlmostEqual, 0.4, 1e-9)
		total := 0
		for _, c := range h.Counts {
			total += c
		}
		So(total, ShouldEqual, 150)
		So(h.MaxCount(), ShouldBeGreaterThan, 0)

		Convey("constant column", func() {
			c := NewHistogram([]float64{2, 2}, 1)
			So(c.Counts, ShouldResemble, []int{2})
			So(c.Edges[0], ShouldEqual, 1.5)
		})
	})
}

func TestKDE(t *testing.T) {
	Convey("TestKDE", t, func() {
		So(ScottBandwidth(sepalLength), ShouldAlmostEqual, 0.303981, 1e-6)

		c, err := KDE(sepalLength, 400, 3)
		So(err, ShouldBeNil)
		So(len(c.X), ShouldEqual, 400)
		// 积分约为1
		area := 0.
		for i := 1; i < len(c.X); i++ {
			area += (c.X[i] - c.X[i-1]) * (c.Y[i] + c.Y[i-1]) / 2
		}
		So(area, ShouldAlmostEqual, 1, 1e-2)

		scaled := c.Scale(2)
		So(scaled.Y[10], ShouldAlmostEqual, 2*c.Y[10], 1e-12)

		_, err = KDE([]float64{1, 1, 1}, 10, 3)
		So(err, ShouldNotBeNil)
	})
}

func TestKDE2D(t *testing.T) {
	Convey("TestKDE2D", t, func() {
		ys := make([]float64, len(sepalLength))
		for i, x := range sepalLength {
			ys[i] = x*0.5 + float64(i%7)*0.1
		}
		g, err := KDE2D(sepalLength, ys, 40, 3)
		So(err, ShouldBeNil)
		So(len(g.Z), ShouldEqual, 40)
		So(len(g.Z[0]), ShouldEqual, 40)
		So(Max(g.Z[20]), ShouldBeGreaterThan, 0)

		levels := IsoLevels(g, DefaultIsoProps())
		So(len(levels), ShouldEqual, 10)
		for i := 1; i < len(levels); i++ {
			So(levels[i], ShouldBeGreaterThanOrEqualTo, levels[i-1])
		}
		So(len(Contour(g, levels[0])), ShouldBeGreaterThan, 0)

		_, err = KDE2D([]float64{1, 2}, []float64{1, 2}, 10, 3)
		So(err, ShouldNotBeNil)
		_, err = KDE2D([]float64{1, 2, 3}, []float64{2, 4, 6}, 10, 3)
		So(err, ShouldNotBeNil)
	})
}

func TestContour(t *testing.T) {
	Convey("TestContour", t, func() {
		g := Grid{
			X: []float64{0, 1, 2},
			Y: []float64{0, 1, 2},
			Z: [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		}
		segs := Contour(g, 0.5)
		So(len(segs), ShouldEqual, 4)
		So(Contour(g, 2), ShouldBeEmpty)
	})
}

func TestLinearFit(t *testing.T) {
	Convey("TestLinearFit", t, func() {
		petal := make([]float64, len(sepalLength))
		for i, x := range sepalLength {
			petal[i] = 2*x - 1 + float64(i%3-1)*0.1
		}
		f, err := LinearFit(sepalLength, petal, 50)
		So(err, ShouldBeNil)
		So(f.Slope, ShouldAlmostEqual, 2, 0.05)
		So(f.Predict(0), ShouldAlmostEqual, f.Intercept, 1e-12)
		So(len(f.X), ShouldEqual, 50)
		for i := range f.X {
			So(f.Lower[i], ShouldBeLessThanOrEqualTo, f.Y[i])
			So(f.Upper[i], ShouldBeGreaterThanOrEqualTo, f.Y[i])
		}

		_, err = LinearFit([]float64{1, 1, 1}, []float64{1, 2, 3}, 10)
		So(err, ShouldNotBeNil)
		So(tQuantile975(10), ShouldAlmostEqual, 2.228139, 1e-3)
		So(tQuantile975(148), ShouldAlmostEqual, 1.976122, 1e-4)
	})
}

func TestLetterValue(t *testing.T) {
	Convey("TestLetterValue", t, func() {
		So(TukeyDepth(150), ShouldEqual, 4)
		So(TukeyDepth(50), ShouldEqual, 2)
		So(TukeyDepth(5), ShouldEqual, 1)

		setosa := sepalLength[:50]
		lv := LetterValue(setosa)
		So(lv.Median, ShouldAlmostEqual, 5.0, 1e-9)
		So(len(lv.Boxes), ShouldEqual, 2)
		So(lv.Boxes[0].Lower, ShouldAlmostEqual, 4.8, 1e-9)
		So(lv.Boxes[0].Upper, ShouldAlmostEqual, 5.2, 1e-9)
		So(lv.Boxes[1].Lower, ShouldAlmostEqual, 4.6, 1e-9)
		So(lv.Boxes[1].Upper, ShouldAlmostEqual, 5.4, 1e-9)
		So(len(lv.Outliers), ShouldEqual, 10)

		So(math.IsNaN(LetterValue(nil).Median), ShouldBeTrue)
	})
}

func TestHexbin(t *testing.T) {
	Convey("TestHexbin", t, func() {
		ys := make([]float64, len(sepalLength))
		for i := range ys {
			ys[i] = float64(i % 10)
		}
		h := Hexbin(sepalLength, ys, 10)
		total := 0
		for _, c := range h.Cells {
			So(c.Count, ShouldBeGreaterThan, 0)
			total += c.Count
		}
		So(total, ShouldEqual, 150)
		So(h.MaxCount(), ShouldBeGreaterThan, 1)
		p := h.Polygon(h.Cells[0])
		So(p[2][1]-h.Cells[0].Y, ShouldAlmostEqual, h.Sy/3, 1e-12)

		So(JointGridSize(sepalLength, sepalLength), ShouldEqual, 8)
		So(Hexbin(nil, nil, 10).Cells, ShouldBeEmpty)
	})
}

func TestBeeswarm(t *testing.T) {
	Convey("TestBeeswarm", t, func() {
		vals := []float64{10, 10, 10, 30}
		off := Beeswarm(vals, 4)
		So(off[0], ShouldEqual, 0)
		So(math.Abs(off[1]), ShouldAlmostEqual, 4, 1e-9)
		So(math.Abs(off[2]), ShouldAlmostEqual, 4, 1e-9)
		So(off[1]+off[2], ShouldAlmostEqual, 0, 1e-9)
		So(off[3], ShouldEqual, 0)

		// 任意两点不重叠
		many := Beeswarm(sepalLength[:50], 3)
		for i := range many {
			for j := i + 1; j < len(many); j++ {
				dx := many[i] - many[j]
				dy := (sepalLength[i] - sepalLength[j])
				So(dx*dx+dy*dy, ShouldBeGreaterThanOrEqualTo, 9-1e-3)
			}
		}
	})
}

func TestJitter(t *testing.T) {
	Convey("TestJitter", t, func() {
		a := Jitter(100, 0.1, 7)
		b := Jitter(100, 0.1, 7)
		So(a, ShouldResemble, b)
		for _, x := range a {
			So(math.Abs(x), ShouldBeLessThanOrEqualTo, 0.1)
		}
	})
}
