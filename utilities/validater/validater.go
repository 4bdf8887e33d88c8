// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"log"
	"reflect"
	"regexp"
	"strings"
)

const tagKeyName = "valid"

var (
	awsRegionPattern = regexp.MustCompile(`^[a-z]{2}(-gov|-iso[a-z]?)?-[a-z]+-[0-9]$`)
	arnPattern       = regexp.MustCompile(`^arn:aws[a-z-]*:[a-z0-9-]+:[a-z0-9-]*:[0-9]{12}:.+$`)
)

type validater interface {
	validate(interface{}) (bool, error)
}

type defaultValidater struct {
}

func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

type isNotZeroValueValidater struct {
}

func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		return false, fmt.Errorf("Should NOT be nil")
	}
	kind := typ.Kind()
	switch kind {
	case reflect.String:
		if len(value.(string)) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice, reflect.Map:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

type isOneOfValidater struct {
	acceptedValues []string
}

func (v isOneOfValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be string")
	}
	for _, acceptedValue := range v.acceptedValues {
		if s == acceptedValue {
			return true, nil
		}
	}
	return false, fmt.Errorf("Should be one of %v got '%s'", v.acceptedValues, s)
}

type patternValidater struct {
	name    string
	pattern *regexp.Regexp
}

func (v patternValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be string")
	}
	if !v.pattern.MatchString(s) {
		return false, fmt.Errorf("Should be a valid %s got '%s'", v.name, s)
	}
	return true, nil
}

func getValidater(tagValue string) validater {
	tagValueParts := strings.Split(tagValue, ",")
	tagPrefix := tagValueParts[0]
	switch tagPrefix {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isOneOf":
		return isOneOfValidater{acceptedValues: tagValueParts[1:]}
	case "isAWSRegion":
		return patternValidater{name: "AWS region", pattern: awsRegionPattern}
	case "isARN":
		return patternValidater{name: "ARN", pattern: arnPattern}
	}
	return defaultValidater{}
}

func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if !typeField.IsExported() {
			continue
		}
		tagValue := typeField.Tag.Get(tagKeyName)
		if tagValue == "-" {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with only unexported fields, tag it valid:"-"
		if valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
			continue
		}
		ok, err := getValidater(tagValue).validate(valueField.Interface())
		if !ok {
			errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
		}
	}
	return errs
}

// ValidateStruct check settings structure using the "valid" tags, logs every error found and return a summary error
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errors := getValidationErrors(structure, pedigree)
	if len(errors) > 0 {
		for _, err := range errors {
			log.Println(err)
		}
		return fmt.Errorf("settings validation failed for %s: %d error(s)", pedigree, len(errors))
	}
	return nil
}
