package enum

import "iris-eda/rock-share/base/logger"

// 列类型的显示名，与pandas dtype保持一致
const (
	DTYPE_FLOAT64 = "float64"
	DTYPE_INT64   = "int64"
	DTYPE_BOOL    = "bool"
	DTYPE_OBJECT  = "object"
)

// FieldTypeToDisplay 把gota的series类型转成显示用的dtype
func FieldTypeToDisplay(s string) string {
	switch s {
	case "float":
		return DTYPE_FLOAT64
	case "int":
		return DTYPE_INT64
	case "bool":
		return DTYPE_BOOL
	case "string":
		return DTYPE_OBJECT
	default:
		logger.Errorf("UNKNOWN enum:%s", s)
		return "UNKNOWN"
	}
}

// IsNumericDtype int和float都算数值列
func IsNumericDtype(dtype string) bool {
	return dtype == DTYPE_FLOAT64 || dtype == DTYPE_INT64
}
