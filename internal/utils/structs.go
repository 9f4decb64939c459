package utils

import (
	"fmt"
	"reflect"
)

var ColumnTag = "db"

// StructTagValues returns the column names declared on a struct. Fields of
// embedded structs are flattened the same way pgxscan maps them.
func StructTagValues(input any) []string {

	targetValue := indirectStruct(input)

	result := make([]string, 0, targetValue.NumField())
	walkColumns(targetValue, func(column string, _ reflect.Value) {
		result = append(result, column)
	})

	return result

}

// StructToMap maps column names to field values, flattening embedded structs.
func StructToMap(input any) map[string]any {

	result := make(map[string]any)

	walkColumns(indirectStruct(input), func(column string, value reflect.Value) {
		result[column] = value.Interface()
	})

	return result

}

func indirectStruct(input any) reflect.Value {
	value := reflect.ValueOf(input)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	return value
}

func walkColumns(value reflect.Value, fn func(column string, value reflect.Value)) {
	valueType := value.Type()

	for i := 0; i < value.NumField(); i++ {
		field := valueType.Field(i)

		tagValue := field.Tag.Get(ColumnTag)
		if tagValue == "-" {
			continue
		}

		if field.Anonymous && tagValue == "" {
			embedded := value.Field(i)
			if embedded.Kind() == reflect.Ptr {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				walkColumns(embedded, fn)
			}
			continue
		}

		if field.PkgPath != "" || tagValue == "" {
			continue
		}

		fn(tagValue, value.Field(i))
	}
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)

}
