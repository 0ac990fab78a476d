package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"

	"iris-eda/dataset"
	"iris-eda/rock-share/base/config"
	"iris-eda/rock-share/base/logger"
	"iris-eda/rock-share/global/enum"
	"iris-eda/utils"
)

// Renderer 根据 Spec 在服务端画图，只读 Frame，可并发使用
type Renderer struct {
	frame *dataset.Frame
	cfg   config.RenderConfig
}

func NewRenderer(frame *dataset.Frame, cfg config.RenderConfig) *Renderer {
	return &Renderer{frame: frame, cfg: cfg}
}

// Render 返回PNG，模式没有图时返回 ErrNoFigure
func (r *Renderer) Render(spec Spec) (*Figure, error) {
	var (
		img *image.RGBA
		err error
	)
	switch spec.Mode {
	case enum.MODE_DISTRIBUTION:
		img, err = r.distribution(spec)
	case enum.MODE_JOINT:
		img, err = r.joint(spec)
	case enum.MODE_PAIR:
		img, err = r.pair(spec)
	case enum.MODE_BOXEN, enum.MODE_STRIP, enum.MODE_SWARM:
		img, err = r.categorical(spec)
	default:
		return nil, errors.Wrapf(utils.ErrNoFigure, "mode %s", spec.Mode)
	}
	if err != nil {
		if _, ok := utils.AsServiceError(err); ok {
			return nil, err
		}
		logger.Errorf("render %s failed: %v", spec.Mode, err)
		return nil, errors.Wrapf(utils.ErrRender, "%s: %v", spec.Mode, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(utils.ErrRender, "encode: %v", err)
	}
	b := img.Bounds()
	return &Figure{Spec: spec, PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

// numeric 取数值列，列不存在或不是数值列时报错
func (r *Renderer) numeric(col string) ([]float64, error) {
	if !r.frame.IsNumeric(col) {
		return nil, errors.Wrapf(utils.ErrColumnNotExist, "numeric column %q", col)
	}
	return r.frame.ValuesOf(col), nil
}

// groups 按类别取一列，顺序与 levels 一致
func (r *Renderer) groups(col string, levels []string) ([][]float64, error) {
	if !r.frame.IsNumeric(col) {
		return nil, errors.Wrapf(utils.ErrColumnNotExist, "numeric column %q", col)
	}
	res := make([][]float64, len(levels))
	for i, l := range levels {
		res[i] = r.frame.GroupValuesOf(col, l)
		if res[i] == nil {
			return nil, errors.Wrapf(utils.ErrParameter, "level %q of %s", l, r.frame.LabelColumn())
		}
	}
	return res, nil
}
