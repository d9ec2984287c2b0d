package moye

import "fmt"

// Upcast reinterprets L's memory as if built from elements factor times
// larger (e.g. recasting four int8 elements as one int32): every stride
// that is itself a multiple of factor shrinks by factor, since it already
// counted whole multiples of the new, larger element. The one mode whose
// stride does not divide factor — the innermost, unit-stride mode in a
// compact layout — instead shrinks in shape, folding factor contiguous
// old elements into one step of the new element. A zero-stride
// (broadcast) mode is unaffected either way.
func Upcast(L Layout, factor Int) (Layout, error) {
	return mapLeaves(L, func(m mode) (mode, error) {
		if m.stride.Value() == 0 {
			return m, nil
		}
		if m.stride.Value()%factor.Value() == 0 {
			d, err := ShapeDiv(m.stride, factor)
			if err != nil {
				return mode{}, err
			}
			return mode{shape: m.shape, stride: d}, nil
		}
		s, err := ShapeDiv(m.shape, factor)
		if err != nil {
			return mode{}, fmt.Errorf("%w: mode %s:%s by factor %s", ErrRecast, m.shape, m.stride, factor)
		}
		return mode{shape: s, stride: m.stride}, nil
	})
}

// Downcast reinterprets L's memory as if built from elements factor times
// smaller (e.g. recasting one int32 element as four int8), the inverse of
// [Upcast]: every nonzero stride grows by factor, except the unit-stride
// mode, which instead grows in shape by factor to make room for the
// factor new, smaller elements that now fit where one used to.
func Downcast(L Layout, factor Int) (Layout, error) {
	return mapLeaves(L, func(m mode) (mode, error) {
		if m.stride.Value() == 0 {
			return m, nil
		}
		if m.stride.Value() == 1 {
			return mode{shape: MulInt(m.shape, factor), stride: m.stride}, nil
		}
		return mode{shape: m.shape, stride: MulInt(m.stride, factor)}, nil
	})
}

// Recast reinterprets L, built from elements oldBits wide, as a layout
// over elements newBits wide. Widening (newBits > oldBits) upcasts by
// newBits/oldBits; narrowing downcasts by oldBits/newBits. Recast reports
// ErrRecast if neither width is a whole multiple of the other.
func Recast(L Layout, oldBits, newBits int64) (Layout, error) {
	switch {
	case newBits == oldBits:
		return L, nil
	case newBits > oldBits:
		if newBits%oldBits != 0 {
			return Layout{}, fmt.Errorf("%w: %d is not a multiple of %d", ErrRecast, newBits, oldBits)
		}
		return Upcast(L, StaticInt(newBits/oldBits))
	default:
		if oldBits%newBits != 0 {
			return Layout{}, fmt.Errorf("%w: %d is not a multiple of %d", ErrRecast, oldBits, newBits)
		}
		return Downcast(L, StaticInt(oldBits/newBits))
	}
}

// mapLeaves rebuilds L with f applied independently to every flattened
// leaf mode, preserving L's original tree shape.
func mapLeaves(L Layout, f func(mode) (mode, error)) (Layout, error) {
	shapeLeaves := L.shape.Flatten()
	strideLeaves := L.stride.Flatten()
	outShape := make([]IntTuple, len(shapeLeaves))
	outStride := make([]IntTuple, len(shapeLeaves))
	for i := range shapeLeaves {
		m, err := f(mode{shape: shapeLeaves[i], stride: strideLeaves[i]})
		if err != nil {
			return Layout{}, err
		}
		outShape[i] = Leaf(m.shape)
		outStride[i] = Leaf(m.stride)
	}
	return Layout{
		shape:  reshapeLike(L.shape, outShape),
		stride: reshapeLike(L.stride, outStride),
	}, nil
}
