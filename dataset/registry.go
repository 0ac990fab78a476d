package dataset

import (
	"bytes"
	"embed"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"iris-eda/utils"
)

//go:embed data/*.csv data/*.yml
var bundled embed.FS

type entry struct {
	once  sync.Once
	frame *Frame
	err   error
}

var registry = map[string]*entry{
	"iris": {},
}

// Names 可以加载的数据集
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// Load 按名字加载，进程内只解析一次，之后返回同一个*Frame
func Load(name string) (*Frame, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(utils.ErrDatasetNotFound, "dataset %q", name)
	}
	e.once.Do(func() {
		e.frame, e.err = read(strings.ToLower(strings.TrimSpace(name)))
	})
	return e.frame, e.err
}

func read(name string) (*Frame, error) {
	metaBytes, err := bundled.ReadFile("data/" + name + ".yml")
	if err != nil {
		return nil, errors.Wrapf(utils.ErrLoadDataset, "%s meta: %v", name, err)
	}
	meta, err := parseMeta(metaBytes)
	if err != nil {
		return nil, errors.Wrapf(utils.ErrLoadDataset, "%s meta: %v", name, err)
	}
	if meta.Name == "" {
		meta.Name = name
	}
	csvBytes, err := bundled.ReadFile("data/" + name + ".csv")
	if err != nil {
		return nil, errors.Wrapf(utils.ErrReadCsv, "%s: %v", name, err)
	}
	return NewFrame(name, bytes.NewReader(csvBytes), meta)
}
