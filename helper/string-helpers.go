package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	om "github.com/cevaris/ordered_map"
)

// OrderedMapToTokens converts the supplied ordered map to a CSV of key:value,key:value,...
// All keys and values are expected to be of type string.
func OrderedMapToTokens(m *om.OrderedMap) (string, error) {
	b := strings.Builder{}
	iter := m.IterFunc()
	if iter == nil {
		return "", fmt.Errorf("failed to get iterFunc in OrderedMapToTokens()")
	}
	for kv, ok := iter(); ok; kv, ok = iter() {
		k, kOK := kv.Key.(string)
		v, vOK := kv.Value.(string)
		if !kOK || !vOK {
			return "", fmt.Errorf("ordered map contains a non-string key or value: %v:%v", kv.Key, kv.Value)
		}
		b.WriteString(fmt.Sprintf(",%v:%v", k, v))
	}
	return strings.TrimLeft(b.String(), ","), nil
}

// GetStringFromInterface converts a scalar value to its text form.
// ok is false when input is not a scalar (maps, lists, structs) and retval is then empty.
// nil converts to the empty string with ok set.
func GetStringFromInterface(input interface{}) (retval string, ok bool) {
	switch v := input.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true // use 'f' to avoid an exponent
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool: // True/False, the form existing exports of the tables use.
		if v {
			return "True", true
		}
		return "False", true
	case []byte:
		return string(v), true
	case time.Time:
		return v.Format(time.RFC3339), true
	case fmt.Stringer: // numbers decoded without loss of precision, e.g. json.Number
		return v.String(), true
	default:
		return "", false
	}
}

// GetStringSliceFromInterface converts a list value into a slice of strings.
// Elements that are not scalars become empty strings.
// ok is false when input is not a list.
func GetStringSliceFromInterface(input interface{}) (retval []string, ok bool) {
	switch v := input.(type) {
	case []string:
		return v, true
	case []interface{}:
		retval = make([]string, 0, len(v))
		for _, e := range v {
			s, _ := GetStringFromInterface(e)
			retval = append(retval, s)
		}
		return retval, true
	default:
		return nil, false
	}
}
