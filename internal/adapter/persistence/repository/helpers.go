package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errEmptyUpdate = errors.New("no updatable fields in payload")

// buildSetExpression turns a partial document into a SET update expression
// with placeholder names and marshalled values. Attributes listed in
// protected (key attributes) are dropped from the merge. Field order is
// sorted so the produced expression is deterministic.
func buildSetExpression(fields map[string]interface{}, protected ...string) (string, map[string]types.AttributeValue, map[string]string, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if containsString(protected, k) {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", nil, nil, errEmptyUpdate
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))
	names := make(map[string]string, len(keys))
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, err
		}
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		parts = append(parts, name+" = "+value)
		names[name] = k
		values[value] = av
	}
	return "SET " + strings.Join(parts, ", "), values, names, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
