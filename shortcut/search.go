package shortcut

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// SearchTerm is a single filter of the upstream search query.
// Key is the camelCase name of the filter, as exposed by the tools.
// Value may be a string, bool, integer or float, or a pointer to one of them.
type SearchTerm struct {
	Key   string
	Value any
}

// keys whose value is a member handle
var identityKeys = map[string]bool{
	"owner":     true,
	"requester": true,
}

// BuildSearchQuery renders the terms as the upstream search query.
// Terms are emitted in the given order, empty values are skipped.
// The "me" value of an identity filter resolves to the mention name of currentUser.
func BuildSearchQuery(terms []SearchTerm, currentUser *Member) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if p := formatTerm(t, currentUser); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func formatTerm(t SearchTerm, currentUser *Member) string {
	value, ok := deref(t.Value)
	if !ok || t.Key == "" {
		return ""
	}

	key := searchKey(t.Key)

	if identityKeys[t.Key] {
		s, ok := value.(string)
		if !ok || s == "" {
			return ""
		}
		if s == "me" {
			if currentUser != nil && currentUser.MentionName != "" {
				s = currentUser.MentionName
			}
		} else {
			s = strings.TrimPrefix(s, "@")
		}
		return key + ":" + s
	}

	switch v := value.(type) {
	case bool:
		if v {
			return key
		}
		return "!" + key
	case string:
		if v == "" {
			return ""
		}
		if strings.Contains(v, " ") {
			return key + `:"` + v + `"`
		}
		return key + ":" + v
	case int:
		return key + ":" + strconv.Itoa(v)
	case int32:
		return key + ":" + strconv.FormatInt(int64(v), 10)
	case int64:
		return key + ":" + strconv.FormatInt(v, 10)
	case float32:
		return key + ":" + strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return key + ":" + strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// deref returns the value behind a pointer, false for nil
func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

// searchKey maps filter name to the upstream query key:
// isArchived => is:archived, hasOwner => has:owner, startDate => start_date.
func searchKey(key string) string {
	for _, prefix := range []string{"is", "has"} {
		rest, ok := strings.CutPrefix(key, prefix)
		if ok && rest != "" && unicode.IsUpper(rune(rest[0])) {
			return prefix + ":" + toSnakeCase(rest)
		}
	}
	return toSnakeCase(key)
}

func toSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
