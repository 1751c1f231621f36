package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// shape trims a response payload for display: filter and limit apply to
// arrays, and to the data of a page, fields to every object.
type shape struct {
	fields []string
	filter *filter
	limit  int
}

type filter struct {
	field, op, value string
}

var filterOps = map[string]bool{"contains": true, "eq": true, "ne": true, "gt": true, "lt": true}

func parseShape(fieldsStr, filterStr string, limit int) (shape, error) {
	sh := shape{fields: parseFields(fieldsStr), limit: limit}
	if filterStr != "" {
		parts := strings.SplitN(filterStr, ":", 3)
		if len(parts) != 3 || !filterOps[parts[1]] {
			return shape{}, fmt.Errorf("invalid filter %q: want field:op:value with op one of contains, eq, ne, gt, lt", filterStr)
		}
		sh.filter = &filter{field: parts[0], op: parts[1], value: parts[2]}
	}
	return sh, nil
}

func (sh shape) empty() bool {
	return len(sh.fields) == 0 && sh.filter == nil && sh.limit <= 0
}

func (sh shape) apply(resp any) any {
	switch v := resp.(type) {
	case []any:
		return sh.applyArray(v)
	case map[string]any:
		if data, ok := v[pageDataKey].([]any); ok {
			out := make(map[string]any, len(v))
			for k, val := range v {
				out[k] = val
			}
			out[pageDataKey] = sh.applyArray(data)
			return out
		}
		if len(sh.fields) > 0 {
			return pickFields(v, sh.fields)
		}
	}
	return resp
}

// pageDataKey holds the objects of a list response.
const pageDataKey = "data"

func (sh shape) applyArray(arr []any) []any {
	if sh.filter != nil {
		arr = sh.filter.apply(arr)
	}
	if sh.limit > 0 && sh.limit < len(arr) {
		arr = arr[:sh.limit]
	}
	if len(sh.fields) == 0 {
		return arr
	}

	result := make([]any, len(arr))
	for i, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			result[i] = pickFields(obj, sh.fields)
		} else {
			result[i] = item
		}
	}
	return result
}

// parseFields splits a comma-separated fields string.
func parseFields(s string) []string {
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// pickFields extracts only the specified fields from an object.
// Supports dot notation for nested fields (e.g. "stats.opens").
func pickFields(obj map[string]any, fields []string) map[string]any {
	result := make(map[string]any)
	for _, f := range fields {
		key, rest, nested := strings.Cut(f, ".")
		val, ok := obj[key]
		if !ok {
			continue
		}
		if !nested {
			result[key] = val
			continue
		}
		inner, ok := val.(map[string]any)
		if !ok {
			continue
		}
		picked := pickFields(inner, []string{rest})
		if existing, ok := result[key].(map[string]any); ok {
			for k, v := range picked {
				existing[k] = v
			}
		} else {
			result[key] = picked
		}
	}
	return result
}

func (f *filter) apply(arr []any) []any {
	result := make([]any, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fieldVal := getNestedField(obj, f.field)
		if fieldVal == nil {
			continue
		}
		if f.match(fieldVal) {
			result = append(result, item)
		}
	}
	return result
}

// getNestedField retrieves a value using dot notation.
func getNestedField(obj map[string]any, field string) any {
	key, rest, nested := strings.Cut(field, ".")
	val, ok := obj[key]
	if !ok {
		return nil
	}
	if !nested {
		return val
	}
	if inner, ok := val.(map[string]any); ok {
		return getNestedField(inner, rest)
	}
	return nil
}

func (f *filter) match(fieldVal any) bool {
	fieldStr := fmt.Sprintf("%v", fieldVal)

	switch f.op {
	case "contains":
		return strings.Contains(strings.ToLower(fieldStr), strings.ToLower(f.value))
	case "eq":
		return strings.EqualFold(fieldStr, f.value)
	case "ne":
		return !strings.EqualFold(fieldStr, f.value)
	case "gt", "lt":
		fv, err1 := strconv.ParseFloat(fieldStr, 64)
		cv, err2 := strconv.ParseFloat(f.value, 64)
		if err1 != nil || err2 != nil {
			return false
		}
		if f.op == "gt" {
			return fv > cv
		}
		return fv < cv
	}
	return false
}
