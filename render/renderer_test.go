package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wcharczuk/go-chart/v2"

	"iris-eda/dataset"
	"iris-eda/rock-share/base/config"
	"iris-eda/rock-share/global/enum"
	"iris-eda/utils"
)

func newTestRenderer() *Renderer {
	frame, err := dataset.Load("iris")
	if err != nil {
		panic(err)
	}
	return NewRenderer(frame, config.Default().Render)
}

var species = []string{"setosa", "versicolor", "virginica"}

func decodeSize(b []byte) (int, int) {
	img, err := png.Decode(bytes.NewReader(b))
	So(err, ShouldBeNil)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderDistribution(t *testing.T) {
	Convey("TestRenderDistribution", t, func() {
		r := newTestRenderer()
		fig, err := r.Render(Spec{Mode: enum.MODE_DISTRIBUTION, X: "sepal_length", Title: "Distribution of sepal_length"})
		So(err, ShouldBeNil)
		w, h := decodeSize(fig.PNG)
		So(w, ShouldEqual, 800)
		So(h, ShouldEqual, 500)
		So(fig.Width, ShouldEqual, w)
		So(fig.Spec.X, ShouldEqual, "sepal_length")
	})
}

func TestRenderJoint(t *testing.T) {
	Convey("TestRenderJoint", t, func() {
		r := newTestRenderer()
		for _, kind := range enum.Kinds() {
			spec := Spec{Mode: enum.MODE_JOINT, Kind: kind, X: "sepal_length", Y: "petal_length"}
			if kind.UsesHue() {
				spec.Hue = "species"
				spec.HueLevels = species
			}
			fig, err := r.Render(spec)
			So(err, ShouldBeNil)
			w, h := decodeSize(fig.PNG)
			So(w, ShouldEqual, 550)
			So(h, ShouldEqual, 550)
		}

		Convey("same column twice", func() {
			_, err := r.Render(Spec{Mode: enum.MODE_JOINT, Kind: enum.KIND_REG, X: "sepal_width", Y: "sepal_width"})
			So(err, ShouldNotBeNil)
			se, ok := utils.AsServiceError(err)
			So(ok, ShouldBeTrue)
			So(se, ShouldEqual, utils.ErrParameter)
		})

		Convey("hue without levels", func() {
			_, err := r.Render(Spec{Mode: enum.MODE_JOINT, Kind: enum.KIND_SCATTER, X: "sepal_length", Y: "petal_length"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRenderPair(t *testing.T) {
	Convey("TestRenderPair", t, func() {
		r := newTestRenderer()
		fig, err := r.Render(Spec{
			Mode:      enum.MODE_PAIR,
			Columns:   []string{"sepal_length", "sepal_width", "petal_length", "petal_width"},
			Hue:       "species",
			HueLevels: species,
		})
		So(err, ShouldBeNil)
		w, h := decodeSize(fig.PNG)
		So(w, ShouldEqual, 4*220+legendWidth)
		So(h, ShouldEqual, 4*220+headerHeight)
	})
}

func TestRenderCategorical(t *testing.T) {
	Convey("TestRenderCategorical", t, func() {
		r := newTestRenderer()
		for _, mode := range []enum.Mode{enum.MODE_BOXEN, enum.MODE_STRIP, enum.MODE_SWARM} {
			fig, err := r.Render(Spec{Mode: mode, Y: "petal_width", Category: "species", Categories: species, Title: "petal_width by Species"})
			So(err, ShouldBeNil)
			w, h := decodeSize(fig.PNG)
			So(w, ShouldEqual, 800)
			So(h, ShouldEqual, 500)
		}

		Convey("deterministic strip", func() {
			spec := Spec{Mode: enum.MODE_STRIP, Y: "sepal_width", Category: "species", Categories: species}
			a, err := r.Render(spec)
			So(err, ShouldBeNil)
			b, err := r.Render(spec)
			So(err, ShouldBeNil)
			So(bytes.Equal(a.PNG, b.PNG), ShouldBeTrue)
		})
	})
}

func TestRenderErrors(t *testing.T) {
	Convey("TestRenderErrors", t, func() {
		r := newTestRenderer()

		_, err := r.Render(Spec{Mode: enum.MODE_OVERVIEW})
		se, ok := utils.AsServiceError(err)
		So(ok, ShouldBeTrue)
		So(se, ShouldEqual, utils.ErrNoFigure)

		_, err = r.Render(Spec{Mode: enum.MODE_DISTRIBUTION, X: "species"})
		se, ok = utils.AsServiceError(err)
		So(ok, ShouldBeTrue)
		So(se, ShouldEqual, utils.ErrColumnNotExist)

		_, err = r.Render(Spec{Mode: enum.MODE_BOXEN, Y: "petal_width", Category: "species", Categories: []string{"setosa", "unknown"}})
		So(err, ShouldNotBeNil)
	})
}

func TestRenderPanel(t *testing.T) {
	Convey("TestRenderPanel", t, func() {
		r := newTestRenderer()
		c := r.newChart(300, 200, bounds{min: 0, max: 1}, bounds{min: 0, max: 1})
		c.Series = []chart.Series{dotSeries("dots", []float64{0.2, 0.8}, []float64{0.3, 0.7}, paletteColor(0), 3)}
		img, err := renderPanel(c)
		So(err, ShouldBeNil)
		So(img.Bounds().Dx(), ShouldEqual, 300)
		So(img.Bounds().Dy(), ShouldEqual, 200)

		// 面板可以直接贴到画布上
		cv := newCanvas(300, 200+headerHeight)
		cv.paste(img, image.Point{Y: headerHeight})
		So(cv.image().Bounds().Dy(), ShouldEqual, 200+headerHeight)
	})
}

func TestBounds(t *testing.T) {
	Convey("TestBounds", t, func() {
		b := boundsOf([]float64{1, 3}, []float64{2})
		So(b.min, ShouldEqual, 1)
		So(b.max, ShouldEqual, 3)
		p := b.padded(0.5)
		So(p.min, ShouldEqual, 0)
		So(p.max, ShouldEqual, 4)
		So(boundsOf(nil), ShouldResemble, bounds{min: 0, max: 1})
		So(countBounds(0).max, ShouldBeGreaterThan, 0)

		ticks := categoryTicks(species)
		So(len(ticks), ShouldEqual, 5)
		So(ticks[1].Label, ShouldEqual, "setosa")
		So(ticks[4].Value, ShouldEqual, 2.5)
	})
}
