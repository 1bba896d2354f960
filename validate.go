package godrawing

import (
	"fmt"
	"strings"
)

// Validate checks the sheet's shape tree for structural issues and returns
// an error describing all problems found, or nil if the tree is valid.
func (s *Sheet) Validate() error {
	var errs []string

	if s.colorScheme != nil && s.colorScheme.Len() > maxSchemeColors {
		errs = append(errs, "color scheme has too many entries")
	}

	seen := make(map[*BaseShape]bool)
	for i, shape := range s.shapes {
		prefix := fmt.Sprintf("shape %d", i+1)
		errs = append(errs, validateShape(shape, nil, prefix, seen)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// validateShape checks one shape and recurses into group children. The seen
// set guards the walk: a shape reached twice means two containers hold it, or
// a group reached through its own subtree, so the walk stops there instead of
// recursing into a cycle.
func validateShape(sh Shape, parent *GroupShape, prefix string, seen map[*BaseShape]bool) []string {
	var errs []string
	if sh == nil {
		return []string{prefix + ": shape is nil"}
	}

	b := sh.base()
	if seen[b] {
		return []string{prefix + ": shape appears more than once in the tree"}
	}
	seen[b] = true
	if b.width < 0 {
		errs = append(errs, prefix+": width is negative")
	}
	if b.height < 0 {
		errs = append(errs, prefix+": height is negative")
	}
	if b.parent != parent {
		errs = append(errs, prefix+": parent link does not match containing group")
	}
	if parent != nil && b.flags&FlagChild == 0 {
		errs = append(errs, prefix+": grouped shape is missing the child flag")
	}
	if b.properties == nil {
		errs = append(errs, prefix+": property set is nil")
	}

	if g, ok := sh.(*GroupShape); ok {
		if g.GetShapeCount() > 0 {
			if g.GetAnchor().isDegenerate() {
				errs = append(errs, prefix+": group client anchor has zero extent")
			}
			if g.GetCoordinates().isDegenerate() {
				errs = append(errs, prefix+": group child coordinate space has zero extent")
			}
		}
		for k, child := range g.shapes {
			childPrefix := fmt.Sprintf("%s: child %d", prefix, k+1)
			errs = append(errs, validateShape(child, g, childPrefix, seen)...)
		}
	}
	return errs
}
