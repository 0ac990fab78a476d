package dataset

import (
	"gopkg.in/yaml.v3"
)

// Meta 数据集描述信息，来自与csv同名的yml
type Meta struct {
	Name        string       `yaml:"name" json:"name"`
	Title       string       `yaml:"title" json:"title"`
	LabelColumn string       `yaml:"label_column" json:"label_column"`
	Source      string       `yaml:"source" json:"source,omitempty"`
	Columns     []ColumnMeta `yaml:"columns" json:"columns,omitempty"`
}

type ColumnMeta struct {
	Name        string `yaml:"name" json:"name"`
	Unit        string `yaml:"unit" json:"unit,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
}

func parseMeta(b []byte) (Meta, error) {
	var m Meta
	err := yaml.Unmarshal(b, &m)
	return m, err
}

// Column 按列名找描述，找不到返回零值
func (m Meta) Column(name string) ColumnMeta {
	for _, c := range m.Columns {
		if c.Name == name {
			return c
		}
	}
	return ColumnMeta{Name: name}
}
