package fetchxml

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// FormatValue converts a condition value to the textual representation used
// in the value attribute of a condition element. Strings pass through
// unchanged, booleans become "true"/"false", numeric types use their
// canonical decimal form, and uuid.UUID values (the common case for
// record-reference conditions) use their canonical GUID form. Any other
// fmt.Stringer is rendered via String, nil becomes the empty string, and
// remaining types fall back to fmt.Sprintf.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case uuid.UUID:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
