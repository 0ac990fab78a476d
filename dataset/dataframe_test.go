package dataset

import (
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"iris-eda/utils"
)

func TestLoad(t *testing.T) {
	Convey("TestLoad", t, func() {
		f, err := Load("iris")
		So(err, ShouldBeNil)
		So(f.Name(), ShouldEqual, "iris")
		So(f.Title(), ShouldEqual, "Iris flower data set")
		So(f.Len(), ShouldEqual, 150)
		So(f.Ncol(), ShouldEqual, 5)
		So(f.MissingCount(), ShouldEqual, 0)
		So(f.Names(), ShouldResemble, []string{"sepal_length", "sepal_width", "petal_length", "petal_width", "species"})
		So(f.Dtypes(), ShouldResemble, []string{"float64", "float64", "float64", "float64", "object"})
		So(f.NumericColumns(), ShouldResemble, []string{"sepal_length", "sepal_width", "petal_length", "petal_width"})
		So(f.LabelColumn(), ShouldEqual, "species")
		So(f.Levels(), ShouldResemble, []string{"setosa", "versicolor", "virginica"})
		So(f.IsNumeric("species"), ShouldBeFalse)
		So(f.IsNumeric("petal_width"), ShouldBeTrue)
		So(f.Meta().Column("sepal_length").Unit, ShouldEqual, "cm")

		Convey("memoized", func() {
			again, err := Load(" IRIS ")
			So(err, ShouldBeNil)
			So(again, ShouldPointTo, f)
		})

		Convey("unknown name", func() {
			_, err := Load("titanic")
			So(err, ShouldNotBeNil)
			se, ok := utils.AsServiceError(err)
			So(ok, ShouldBeTrue)
			So(se, ShouldEqual, utils.ErrDatasetNotFound)
			So(Names(), ShouldResemble, []string{"iris"})
		})
	})
}

func TestColumnAccess(t *testing.T) {
	Convey("TestColumnAccess", t, func() {
		f, err := Load("iris")
		So(err, ShouldBeNil)

		v := f.ValuesOf("sepal_length")
		So(len(v), ShouldEqual, 150)
		So(v[0], ShouldEqual, 5.1)
		sum := 0.
		for _, x := range v {
			sum += x
		}
		So(sum, ShouldAlmostEqual, 876.5, 1e-9)
		So(f.LabelOf(0), ShouldEqual, "setosa")
		So(f.LabelOf(149), ShouldEqual, "virginica")

		// 返回的是拷贝
		v[0] = 100
		So(f.ValuesOf("sepal_length")[0], ShouldEqual, 5.1)

		target := make([]float64, 150)
		f.GetAllValuesOf("not_a_column", target)
		So(math.IsNaN(target[3]), ShouldBeTrue)

		sorted := f.GetColumnValuesSorted("petal_width")
		So(sorted[0], ShouldEqual, 0.1)
		So(sorted[149], ShouldEqual, 2.5)
		So(f.GetColumnValuesSorted("species"), ShouldBeNil)

		for _, level := range f.Levels() {
			So(len(f.GroupValuesOf("petal_length", level)), ShouldEqual, 50)
		}
		So(f.GroupValuesOf("petal_length", "setosa")[0], ShouldEqual, 1.4)
		So(f.GroupValuesOf("petal_length", "unknown"), ShouldBeNil)

		rec := f.Records(0)
		So(len(rec), ShouldEqual, 150)
		So(rec[0], ShouldResemble, []string{"5.1", "3.5", "1.4", "0.2", "setosa"})
		So(len(f.Records(10)), ShouldEqual, 10)
	})
}

func TestNewFrame(t *testing.T) {
	Convey("TestNewFrame", t, func() {
		meta := Meta{Name: "toy", LabelColumn: "kind"}

		Convey("missing cells are counted", func() {
			csv := "a,b,kind\n1,NaN,x\nNA,2,y\n3,4,x\n"
			f, err := NewFrame("toy", strings.NewReader(csv), meta)
			So(err, ShouldBeNil)
			So(f.MissingCount(), ShouldEqual, 2)
			So(f.Levels(), ShouldResemble, []string{"x", "y"})
			So(f.Records(1)[0], ShouldResemble, []string{"1", "NaN", "x"})
			So(f.Title(), ShouldEqual, "toy")
		})

		Convey("label column absent", func() {
			_, err := NewFrame("toy", strings.NewReader("a,b\n1,2\n"), meta)
			So(err, ShouldNotBeNil)
		})

		Convey("no numeric column", func() {
			_, err := NewFrame("toy", strings.NewReader("a,kind\nx,y\n"), meta)
			So(err, ShouldNotBeNil)
		})

		Convey("empty table", func() {
			_, err := NewFrame("toy", strings.NewReader("a,kind\n"), meta)
			So(err, ShouldNotBeNil)
		})
	})
}
