// ABOUTME: Bracket-notation filter encoding for Folk list endpoints
// ABOUTME: Field names and operators are opaque strings passed through unchanged
package folk

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Filters maps upstream field names to either a literal value
// (filter[field]=value) or an operator condition built with Op
// (filter[field][op]=value). Neither fields nor operators are interpreted
// locally.
type Filters map[string]any

// Op builds an operator condition for a filter field, e.g. Op("like", "Ada").
// Upstream defines the operator vocabulary; new operators need no changes here.
func Op(operator string, value any) map[string]any {
	return map[string]any{operator: value}
}

// GroupFilter matches entities that belong to the given group.
func GroupFilter(groupID string) Filters {
	return Filters{"groups": Op("in", groupID)}
}

// CustomFieldKey names a group-scoped custom field for filtering, using the
// dotted path upstream expects.
func CustomFieldKey(groupID, field string) string {
	return fmt.Sprintf("customFieldValues.%s.%s", groupID, field)
}

func (f Filters) encodeInto(q url.Values) {
	for field, value := range f {
		switch v := value.(type) {
		case map[string]any:
			for op, opValue := range v {
				q.Set(fmt.Sprintf("filter[%s][%s]", field, op), paramString(opValue))
			}
		case Filters:
			for op, opValue := range v {
				q.Set(fmt.Sprintf("filter[%s][%s]", field, op), paramString(opValue))
			}
		default:
			q.Set(fmt.Sprintf("filter[%s]", field), paramString(v))
		}
	}
}

// paramString renders a query parameter value. Scalars format naturally;
// structured values fall back to JSON.
func paramString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// maxPageSize is the largest page the API accepts.
const maxPageSize = 100

// ListOptions control pagination and filtering for list endpoints. Zero
// values are omitted from the query entirely.
type ListOptions struct {
	// Limit is the page size; 0 leaves it to the upstream default.
	Limit int
	// Cursor is the opaque nextLink value from a previous page.
	Cursor string
	// Combinator joins multiple filters: "and" (upstream default) or "or".
	Combinator string
	Filters    Filters
}

func (o ListOptions) query() (url.Values, error) {
	if o.Limit < 0 || o.Limit > maxPageSize {
		return nil, validationf("invalid limit %d: must be between 1 and %d", o.Limit, maxPageSize)
	}
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Cursor != "" {
		q.Set("cursor", o.Cursor)
	}
	if o.Combinator != "" {
		q.Set("combinator", o.Combinator)
	}
	o.Filters.encodeInto(q)
	return q, nil
}
