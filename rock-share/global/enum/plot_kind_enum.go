package enum

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Kind joint plot 的绘图类型
type Kind string

const (
	KIND_SCATTER Kind = "scatter"
	KIND_REG     Kind = "reg"
	KIND_HEX     Kind = "hex"
	KIND_KDE     Kind = "kde"
)

const DefaultKind = KIND_SCATTER

var kinds = []Kind{KIND_SCATTER, KIND_REG, KIND_HEX, KIND_KDE}

// Kinds 下拉框固定选项
func Kinds() []Kind {
	return slices.Clone(kinds)
}

func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// UsesHue scatter 和 kde 按类别着色，reg 和 hex 不着色
func (k Kind) UsesHue() bool {
	return k == KIND_SCATTER || k == KIND_KDE
}

func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultKind, false
	}
	if k := Kind(s); k.Valid() {
		return k, true
	}
	return DefaultKind, false
}
