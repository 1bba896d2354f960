package godrawing

import "sort"

// PropertyID identifies a styling or transform property in a shape's
// PropertySet. The numbering follows the drawing-layer property catalog, so
// records realized by a file codec can be carried over without translation.
type PropertyID uint16

// Transform properties.
const (
	PropTransformRotation PropertyID = 4
)

// Fill properties.
const (
	PropFillType          PropertyID = 384
	PropFillColor         PropertyID = 385
	PropFillOpacity       PropertyID = 386
	PropFillBackColor     PropertyID = 387
	PropFillNoFillHitTest PropertyID = 447
)

// Line properties.
const (
	PropLineColor          PropertyID = 448
	PropLineOpacity        PropertyID = 449
	PropLineBackColor      PropertyID = 450
	PropLineWidth          PropertyID = 459
	PropLineMiterLimit     PropertyID = 460
	PropLineStyle          PropertyID = 461
	PropLineDashing        PropertyID = 462
	PropLineStartArrowhead PropertyID = 464
	PropLineEndArrowhead   PropertyID = 465
	PropLineNoLineDrawDash PropertyID = 511
)

// Shadow properties.
const (
	PropShadowColor   PropertyID = 513
	PropShadowOpacity PropertyID = 516
	PropShadowOffsetX PropertyID = 517
	PropShadowOffsetY PropertyID = 518
)

// Property is a single entry in a PropertySet. It is either a simple 32-bit
// value or an opaque variable-length payload; the store does not interpret
// complex payloads.
type Property struct {
	Value   int32  // simple value, meaningful only when Complex is nil
	Complex []byte // complex payload, nil for simple properties
}

// IsComplex reports whether the property carries a complex payload.
func (p Property) IsComplex() bool {
	return p.Complex != nil
}

// PropertySet is a sparse record of properties attached to one shape.
// Absent ids are a normal state; the style accessors supply defaults.
type PropertySet struct {
	props map[PropertyID]Property
}

// NewPropertySet creates an empty property set.
func NewPropertySet() *PropertySet {
	return &PropertySet{
		props: make(map[PropertyID]Property),
	}
}

// Get returns the property stored under id.
func (ps *PropertySet) Get(id PropertyID) (Property, bool) {
	p, ok := ps.props[id]
	return p, ok
}

// GetSimple returns the simple value stored under id. It reports false when
// the id is absent or holds a complex payload.
func (ps *PropertySet) GetSimple(id PropertyID) (int32, bool) {
	p, ok := ps.props[id]
	if !ok || p.IsComplex() {
		return 0, false
	}
	return p.Value, true
}

// SetSimple stores a simple value under id, replacing any prior value of
// either variant. The store performs no range validation.
func (ps *PropertySet) SetSimple(id PropertyID, value int32) {
	ps.props[id] = Property{Value: value}
}

// SetComplex stores a complex payload under id, replacing any prior value of
// either variant.
func (ps *PropertySet) SetComplex(id PropertyID, data []byte) {
	if data == nil {
		// keep the complex variant observable for empty payloads
		data = []byte{}
	}
	ps.props[id] = Property{Complex: data}
}

// Len returns the number of stored properties.
func (ps *PropertySet) Len() int {
	return len(ps.props)
}

// IDs returns the stored property ids in ascending order.
func (ps *PropertySet) IDs() []PropertyID {
	ids := make([]PropertyID, 0, len(ps.props))
	for id := range ps.props {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
