// ABOUTME: Custom object (deal) endpoints, always scoped to a group
package folk

import (
	"context"
	"fmt"
	"regexp"
)

// DefaultObjectType is the collection name Folk gives deal pipelines.
const DefaultObjectType = "deals"

// Custom object collections are addressed by a short lowercase path segment.
var objectTypePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ListDeals lists the custom objects of one group, deals being the common
// case. An empty objectType means DefaultObjectType. Deprecation notices
// from the endpoint land on the returned page.
func (c *Client) ListDeals(ctx context.Context, groupID, objectType string, opts ListOptions) (*Page[Deal], error) {
	if err := ValidateID(groupID, "group_id"); err != nil {
		return nil, err
	}
	if objectType == "" {
		objectType = DefaultObjectType
	}
	if !objectTypePattern.MatchString(objectType) {
		return nil, validationf("invalid object_type %q: expected a short lowercase collection name like %q", objectType, DefaultObjectType)
	}
	return listPage[Deal](ctx, c, fmt.Sprintf("/groups/%s/%s", groupID, objectType), opts)
}
