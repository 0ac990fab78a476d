package dispatch

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"iris-eda/dataset"
	"iris-eda/rock-share/base/config"
	"iris-eda/rock-share/global/enum"
	"iris-eda/utils"
)

var (
	features = []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}
	species  = []string{"setosa", "versicolor", "virginica"}
)

func newTestDispatcher() *Dispatcher {
	frame, err := dataset.Load("iris")
	if err != nil {
		panic(err)
	}
	return NewDispatcher(frame, config.Default())
}

func TestResolve(t *testing.T) {
	Convey("TestResolve", t, func() {
		d := newTestDispatcher()
		frame := d.Frame()

		Convey("defaults", func() {
			sel, err := Resolve(frame, Params{}, false)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, Overview{})

			sel, err = Resolve(frame, Params{Mode: "joint"}, false)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, Joint{X: "sepal_length", Y: "sepal_width", Kind: enum.KIND_SCATTER})

			sel, err = Resolve(frame, Params{Mode: "Swarm Plot", Feature: "nope"}, false)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, Categorical{Plot: enum.MODE_SWARM, Feature: "sepal_length"})

			sel, err = Resolve(frame, Params{Mode: "whatever"}, false)
			So(err, ShouldBeNil)
			So(sel.Mode(), ShouldEqual, enum.MODE_OVERVIEW)
		})

		Convey("pair ignores stray params", func() {
			sel, err := Resolve(frame, Params{Mode: "pair", Feature: "petal_width", X: "a", Y: "b", Kind: "hex"}, true)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, Pair{})
		})

		Convey("strict", func() {
			_, err := Resolve(frame, Params{Mode: "distribution", Feature: "species"}, true)
			se, ok := utils.AsServiceError(err)
			So(ok, ShouldBeTrue)
			So(se, ShouldEqual, utils.ErrColumnNotExist)

			_, err = Resolve(frame, Params{Mode: "joint", Kind: "violin"}, true)
			se, ok = utils.AsServiceError(err)
			So(ok, ShouldBeTrue)
			So(se, ShouldEqual, utils.ErrParameter)

			_, err = Resolve(frame, Params{Mode: "heatmap"}, true)
			So(err, ShouldNotBeNil)

			sel, err := Resolve(frame, Params{Mode: "distribution", Feature: "petal_width"}, true)
			So(err, ShouldBeNil)
			So(sel, ShouldResemble, Distribution{Feature: "petal_width"})
		})
	})
}

func TestDispatchOverview(t *testing.T) {
	Convey("TestDispatchOverview", t, func() {
		d := newTestDispatcher()
		a, err := d.Dispatch(context.Background(), Overview{})
		So(err, ShouldBeNil)
		ov, ok := a.(OverviewArtifact)
		So(ok, ShouldBeTrue)
		So(ov.Metric(MetricRows), ShouldEqual, 150)
		So(ov.Metric(MetricColumns), ShouldEqual, 5)
		So(ov.Metric(MetricMissing), ShouldEqual, 0)
		So(ov.Metric("nope"), ShouldEqual, -1)
		So(len(ov.Rows), ShouldEqual, 150)
		So(ov.Dtypes[4], ShouldResemble, ColumnType{Name: "species", Dtype: "object"})
		So(ov.Dtypes[0].Dtype, ShouldEqual, "float64")
	})
}

func TestDispatchSummary(t *testing.T) {
	Convey("TestDispatchSummary", t, func() {
		d := newTestDispatcher()
		a, err := d.Dispatch(context.Background(), Summary{})
		So(err, ShouldBeNil)
		sm := a.(SummaryArtifact)
		So(sm.Columns, ShouldResemble, features)
		_, ok := sm.Of("species")
		So(ok, ShouldBeFalse)

		sl, ok := sm.Of("sepal_length")
		So(ok, ShouldBeTrue)
		So(sl.Count, ShouldEqual, 150)
		So(sl.Mean, ShouldAlmostEqual, 5.843333, 1e-6)
		So(sl.Std, ShouldAlmostEqual, 0.828066, 1e-6)
		So(sl.Q25, ShouldAlmostEqual, 5.1, 1e-9)
		So(sl.Q50, ShouldAlmostEqual, 5.8, 1e-9)
		So(sl.Q75, ShouldAlmostEqual, 6.4, 1e-9)

		rows := sm.Table()
		So(len(rows), ShouldEqual, 8)
		So(rows[0], ShouldResemble, []string{"count", "150.000000", "150.000000", "150.000000", "150.000000"})
		So(rows[1][1], ShouldEqual, "5.843333")

		txt := sm.Text()
		So(txt, ShouldContainSubstring, "petal_width")
		So(txt, ShouldContainSubstring, "5.843333")
		So(txt, ShouldNotContainSubstring, "species")
	})
}

func TestDispatchJoint(t *testing.T) {
	Convey("TestDispatchJoint", t, func() {
		d := newTestDispatcher()
		ctx := context.Background()

		Convey("same column on both axes", func() {
			for _, col := range features {
				for _, kind := range enum.Kinds() {
					a, err := d.Dispatch(ctx, Joint{X: col, Y: col, Kind: kind})
					So(err, ShouldBeNil)
					w, ok := a.(WarningArtifact)
					So(ok, ShouldBeTrue)
					So(w.Message, ShouldEqual, SameColumnWarning)
				}
				_, err := d.SpecOf(Joint{X: col, Y: col})
				So(err, ShouldNotBeNil)
			}
		})

		Convey("hue by kind", func() {
			spec, err := d.SpecOf(Joint{X: "sepal_length", Y: "petal_length", Kind: enum.KIND_SCATTER})
			So(err, ShouldBeNil)
			So(spec.Hue, ShouldEqual, "species")
			So(spec.HueLevels, ShouldResemble, species)

			spec, err = d.SpecOf(Joint{X: "sepal_length", Y: "petal_length", Kind: enum.KIND_KDE})
			So(err, ShouldBeNil)
			So(spec.Hue, ShouldEqual, "species")

			spec, err = d.SpecOf(Joint{X: "sepal_length", Y: "petal_length", Kind: enum.KIND_HEX})
			So(err, ShouldBeNil)
			So(spec.Hue, ShouldEqual, "")
			So(spec.HueLevels, ShouldBeEmpty)

			spec, err = d.SpecOf(Joint{X: "sepal_length", Y: "petal_length", Kind: enum.KIND_REG})
			So(err, ShouldBeNil)
			So(spec.Hue, ShouldEqual, "")

			// 只有矩阵图带提示
			for _, kind := range enum.Kinds() {
				spec, err := d.SpecOf(Joint{X: "sepal_width", Y: "petal_width", Kind: kind})
				So(err, ShouldBeNil)
				So(spec.Info, ShouldEqual, "")
			}
		})

		Convey("scatter figure", func() {
			a, err := d.Dispatch(ctx, Joint{X: "sepal_length", Y: "petal_length", Kind: enum.KIND_SCATTER})
			So(err, ShouldBeNil)
			fa, ok := a.(FigureArtifact)
			So(ok, ShouldBeTrue)
			So(fa.Figure.Spec.Hue, ShouldEqual, "species")
			So(len(fa.Figure.PNG), ShouldBeGreaterThan, 0)
		})
	})
}

func TestDispatchPairAndCategorical(t *testing.T) {
	Convey("TestDispatchPairAndCategorical", t, func() {
		d := newTestDispatcher()

		spec, err := d.SpecOf(Pair{})
		So(err, ShouldBeNil)
		So(spec.Columns, ShouldResemble, features)
		So(spec.Hue, ShouldEqual, "species")
		So(spec.Info, ShouldEqual, "Color coded by species")

		for _, mode := range []enum.Mode{enum.MODE_BOXEN, enum.MODE_STRIP, enum.MODE_SWARM} {
			for _, col := range features {
				spec, err := d.SpecOf(Categorical{Plot: mode, Feature: col})
				So(err, ShouldBeNil)
				So(spec.Category, ShouldEqual, "species")
				So(spec.Categories, ShouldResemble, species)
				So(spec.Y, ShouldEqual, col)
				So(spec.Title, ShouldEqual, col+" by Species")
			}
		}

		_, err = d.SpecOf(Categorical{Plot: enum.MODE_PAIR, Feature: "sepal_length"})
		So(err, ShouldNotBeNil)

		_, err = d.SpecOf(Summary{})
		se, ok := utils.AsServiceError(err)
		So(ok, ShouldBeTrue)
		So(se, ShouldEqual, utils.ErrNoFigure)

		a, err := d.Dispatch(context.Background(), Categorical{Plot: enum.MODE_BOXEN, Feature: "petal_width"})
		So(err, ShouldBeNil)
		So(a.Type(), ShouldEqual, ARTIFACT_FIGURE)
	})
}

func TestDispatchCounters(t *testing.T) {
	Convey("TestDispatchCounters", t, func() {
		d := newTestDispatcher()
		ctx := context.Background()
		for i := 0; i < 3; i++ {
			_, err := d.Dispatch(ctx, Overview{})
			So(err, ShouldBeNil)
		}
		_, err := d.Dispatch(ctx, Summary{})
		So(err, ShouldBeNil)
		So(d.Counters(), ShouldResemble, map[string]int{"overview": 3, "summary": 1})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = d.Dispatch(cancelled, Overview{})
		So(err, ShouldEqual, context.Canceled)
		So(d.Counters()["overview"], ShouldEqual, 3)
	})
}
