package dataset

import (
	"io"
	"math"
	"sort"
	"strconv"

	mapset "github.com/deckarep/golang-set"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/yourbasic/bit"
	"golang.org/x/exp/slices"

	"iris-eda/rock-share/base/logger"
	"iris-eda/rock-share/global/enum"
	"iris-eda/utils"
)

// Frame 只读的表格数据，加载完成后不再修改，可以在多个请求间共享
type Frame struct {
	name string
	meta Meta

	data            [][]float64    // 按行存放数值列，非数值列为NaN
	featureIndexMap map[string]int // 列名 -> 列号
	names           []string       // 原始列顺序
	dtypes          []string
	numeric         []string // 有序，与原始列顺序一致

	text        map[int][]string // 非数值列的原始字符串
	labelColumn string
	labels      []string
	levels      []string // 按首次出现的顺序

	groupValues        map[string]map[string][]float64 // level -> 列 -> 值
	columnValuesSorted map[string][]float64
	missing            *bit.Set // cell id = row*ncol+col
}

// NewFrame 从csv解析，labelColumn必须存在
func NewFrame(name string, r io.Reader, meta Meta) (*Frame, error) {
	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return nil, errors.Wrapf(utils.ErrReadCsv, "%s: %v", name, df.Err)
	}
	if df.Nrow() == 0 || df.Ncol() == 0 {
		return nil, errors.Wrapf(utils.ErrLoadDataset, "%s: empty table", name)
	}

	f := &Frame{
		name:               name,
		meta:               meta,
		featureIndexMap:    make(map[string]int, df.Ncol()),
		names:              df.Names(),
		text:               make(map[int][]string),
		labelColumn:        meta.LabelColumn,
		groupValues:        make(map[string]map[string][]float64),
		columnValuesSorted: make(map[string][]float64),
		missing:            bit.New(),
	}
	if !slices.Contains(f.names, f.labelColumn) {
		return nil, errors.Wrapf(utils.ErrLoadDataset, "%s: label column %q not in %v", name, f.labelColumn, f.names)
	}

	ncol := df.Ncol()
	nrow := df.Nrow()
	f.data = make([][]float64, nrow)
	for i := range f.data {
		f.data[i] = make([]float64, ncol)
	}
	for j, t := range df.Types() {
		col := f.names[j]
		f.featureIndexMap[col] = j
		dtype := enum.FieldTypeToDisplay(string(t))
		f.dtypes = append(f.dtypes, dtype)

		s := df.Col(col)
		for i, isNaN := range s.IsNaN() {
			if isNaN {
				f.missing.Add(i*ncol + j)
			}
		}
		if enum.IsNumericDtype(dtype) && col != f.labelColumn {
			f.numeric = append(f.numeric, col)
			for i, v := range s.Float() {
				f.data[i][j] = v
			}
		} else {
			f.text[j] = s.Records()
			for i := range f.data {
				f.data[i][j] = math.NaN()
			}
		}
	}
	if len(f.numeric) == 0 {
		return nil, errors.Wrapf(utils.ErrWrongDataType, "%s: no numeric column", name)
	}

	f.labels = df.Col(f.labelColumn).Records()
	f.text[f.featureIndexMap[f.labelColumn]] = f.labels
	levelSet := mapset.NewSet()
	for _, l := range f.labels {
		if levelSet.Add(l) {
			f.levels = append(f.levels, l)
		}
	}

	if err := f.loadGroups(df); err != nil {
		return nil, errors.Wrapf(utils.ErrLoadDataset, "%s: %v", name, err)
	}
	for _, col := range f.numeric {
		sorted := f.ValuesOf(col)
		sort.Float64s(sorted)
		f.columnValuesSorted[col] = sorted
	}
	logger.Infof("dataset %s loaded, rows:%d, columns:%d, levels:%v", name, nrow, ncol, f.levels)
	return f, nil
}

// loadGroups 按标签列分组，组内保持原始行序
func (f *Frame) loadGroups(df dataframe.DataFrame) error {
	groups := df.GroupBy(f.labelColumn)
	if groups.Err != nil {
		return groups.Err
	}
	for level, g := range groups.GetGroups() {
		byCol := make(map[string][]float64, len(f.numeric))
		for _, col := range f.numeric {
			s := g.Col(col)
			if s.Err != nil {
				return s.Err
			}
			if s.Type() != series.Float && s.Type() != series.Int {
				return errors.Errorf("column %s lost its type in group %s", col, level)
			}
			byCol[col] = s.Float()
		}
		f.groupValues[level] = byCol
	}
	return nil
}

func (f *Frame) Name() string {
	return f.name
}

// Title 显示名，yml里没有写时用Name
func (f *Frame) Title() string {
	if f.meta.Title != "" {
		return f.meta.Title
	}
	return f.name
}

func (f *Frame) Meta() Meta {
	return f.meta
}

func (f *Frame) Len() int {
	return len(f.data)
}

func (f *Frame) Ncol() int {
	return len(f.names)
}

func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// Dtypes 与Names一一对应
func (f *Frame) Dtypes() []string {
	return slices.Clone(f.dtypes)
}

func (f *Frame) NumericColumns() []string {
	return slices.Clone(f.numeric)
}

// IsNumeric 判断一个属性是不是数值类型的
func (f *Frame) IsNumeric(col string) bool {
	return slices.Contains(f.numeric, col)
}

func (f *Frame) LabelColumn() string {
	return f.labelColumn
}

func (f *Frame) Levels() []string {
	return slices.Clone(f.levels)
}

// MissingCount 所有单元格中的空值个数
func (f *Frame) MissingCount() int {
	return f.missing.Size()
}

func (f *Frame) LabelOf(row int) string {
	return f.labels[row]
}

// GetAllValuesOf 写入target，列不存在时填NaN
func (f *Frame) GetAllValuesOf(feature string, target []float64) {
	col, has := f.featureIndexMap[feature]
	if !has {
		logger.Warnf("feature not exists in dataframe! %v --> %v", feature, f.featureIndexMap)
		for i := range target {
			target[i] = math.NaN()
		}
		return
	}
	for i := 0; i < f.Len() && i < len(target); i++ {
		target[i] = f.data[i][col]
	}
}

// ValuesOf 返回一列的拷贝
func (f *Frame) ValuesOf(feature string) []float64 {
	res := make([]float64, f.Len())
	f.GetAllValuesOf(feature, res)
	return res
}

// GroupValuesOf 某个类别下一列的值，类别或列不存在返回nil
func (f *Frame) GroupValuesOf(feature, level string) []float64 {
	byCol, ok := f.groupValues[level]
	if !ok {
		return nil
	}
	return slices.Clone(byCol[feature])
}

func (f *Frame) GetColumnValuesSorted(feature string) []float64 {
	sorted, exist := f.columnValuesSorted[feature]
	if !exist {
		return nil
	}
	return slices.Clone(sorted)
}

// Records 表格形式，limit<=0 时返回全部行
func (f *Frame) Records(limit int) [][]string {
	n := f.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	numeric := make([]bool, len(f.names))
	for j, col := range f.names {
		numeric[j] = f.IsNumeric(col)
	}
	res := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(f.names))
		for j := range f.names {
			switch {
			case f.missing.Contains(i*len(f.names) + j):
				row[j] = "NaN"
			case numeric[j]:
				row[j] = strconv.FormatFloat(f.data[i][j], 'f', -1, 64)
			default:
				row[j] = f.text[j][i]
			}
		}
		res[i] = row
	}
	return res
}
