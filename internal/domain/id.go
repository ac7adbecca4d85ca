package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IDString normalizes an id value to its canonical string form so numeric
// and string representations of the same id compare equal ("1" == 1).
func IDString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(v)
	}
}

// SameID reports whether two id values refer to the same record under
// loose equality. Two empty ids are never the same record.
func SameID(a, b any) bool {
	as, bs := IDString(a), IDString(b)
	return as != "" && as == bs
}
