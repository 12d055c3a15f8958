package output

import (
	"fmt"
	"reflect"
	"sort"
)

// SortCriteria defines a sort criterion with field name and direction
type SortCriteria struct {
	Field      string // Exported struct field name to sort by
	Descending bool   // If true, sort descending; otherwise ascending
}

// MultiFieldSort stably sorts a slice of structs by multiple criteria.
// The slice parameter must be a pointer to a slice. Candidate ranking runs
// through this so that every ordering in replan output is a total order.
func MultiFieldSort(slice interface{}, criteria []SortCriteria) error {
	sliceVal := reflect.ValueOf(slice)
	if sliceVal.Kind() != reflect.Ptr || sliceVal.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("slice must be a pointer to a slice")
	}
	if len(criteria) == 0 {
		return fmt.Errorf("at least one sort criteria must be provided")
	}

	sliceVal = sliceVal.Elem()
	sort.SliceStable(sliceVal.Interface(), func(i, j int) bool {
		for _, criterion := range criteria {
			iField, err := fieldValue(sliceVal.Index(i), criterion.Field)
			if err != nil {
				return false
			}
			jField, err := fieldValue(sliceVal.Index(j), criterion.Field)
			if err != nil {
				return false
			}

			cmp := compareValues(iField, jField)
			if cmp != 0 {
				if criterion.Descending {
					return cmp > 0
				}
				return cmp < 0
			}
		}
		return false
	})

	return nil
}

// fieldValue gets a field value from a struct using reflection
func fieldValue(val reflect.Value, fieldName string) (interface{}, error) {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("nil pointer encountered")
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("value is not a struct")
	}

	field := val.FieldByName(fieldName)
	if !field.IsValid() {
		return nil, fmt.Errorf("field %s not found", fieldName)
	}

	return field.Interface(), nil
}

// compareValues compares two values and returns -1, 0, or 1
func compareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	aVal := reflect.ValueOf(a)
	bVal := reflect.ValueOf(b)

	switch aVal.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareOrdered(aVal.Int(), bVal.Int())
	case reflect.Float32, reflect.Float64:
		return compareOrdered(aVal.Float(), bVal.Float())
	case reflect.String:
		return compareOrdered(aVal.String(), bVal.String())
	default:
		// Fall back to string representation for other types
		return compareOrdered(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}
}

func compareOrdered[T int64 | float64 | string](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
