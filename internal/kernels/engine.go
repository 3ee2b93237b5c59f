package kernels

import "github.com/cwbudde/fft3v/internal/tables"

// Engine is the generic complex transform for any power-of-two size >= 16.
// It walks the preorder schedule leaf by leaf: on arriving at a leaf, the
// radix-4 passes of every ancestor that starts at that row are run first
// (top level down), then the leaf's bottom blocks are transformed and
// their bit-reversal swaps applied while still in cache.
type Engine struct {
	tab *tables.Radix4
}

// NewEngine wraps shared tables; the engine itself holds no state.
func NewEngine(tab *tables.Radix4) *Engine {
	return &Engine{tab: tab}
}

func (e *Engine) Forward(v View)   { e.forward(v, false) }
func (e *Engine) ForwardZP(v View) { e.forward(v, true) }
func (e *Engine) Inverse(v View)   { e.inverse(v, false) }
func (e *Engine) InverseZP(v View) { e.inverse(v, true) }

// firstLevel returns the highest schedule level whose block starts at
// leaf q: every level for q == 0, one more level per trailing zero base-4
// digit of q otherwise.
func firstLevel(q, levels int) int {
	if q == 0 {
		return 0
	}

	l := levels - 1
	for l > 0 && q%4 == 0 {
		q /= 4
		l--
	}

	return l
}

func (e *Engine) forward(v View, zp bool) {
	t := e.tab
	levels := t.Levels()

	for q := range t.Size / t.Leaf {
		base := q * t.Leaf

		if levels > 0 {
			for l := firstLevel(q, levels); t.Schedule[l].Span != 0; l++ {
				st := t.Schedule[l]
				if zp && l == 0 {
					radix4ForwardZP(v, base, st.Span, t.Twiddles[st.Offset:])
				} else {
					radix4Forward(v, base, st.Span, t.Twiddles[st.Offset:])
				}
			}
		}

		// With no radix-4 level the bottom block is the whole transform
		// and has to honour the zero upper half itself.
		bottomZP := zp && levels == 0

		for b := base; b < base+t.Leaf; b += t.Bottom {
			if t.Bottom == 32 {
				r2 := t.Twiddles[t.Radix2Offset:]
				if bottomZP {
					radix2ForwardZP(v, b, r2)
				} else {
					radix2Forward(v, b, r2)
				}

				bottom16(v, b, forward16Rev)
				bottom16(v, b+16, forward16Rev)
			} else if bottomZP {
				bottom16(v, b, forward16RevZP)
			} else {
				bottom16(v, b, forward16Rev)
			}

			e.swap(v, b)
		}
	}
}

func (e *Engine) inverse(v View, zp bool) {
	t := e.tab
	levels := t.Levels()

	k := inverse16Rev
	if zp {
		// Outputs below Size/2 all come from even rows of the bottom
		// blocks, which is exactly what the ZP bottom kernel computes.
		k = inverse16RevZP
	}

	for q := range t.Size / t.Leaf {
		base := q * t.Leaf

		if levels > 0 {
			for l := firstLevel(q, levels); t.Schedule[l].Span != 0; l++ {
				st := t.Schedule[l]
				radix4Inverse(v, base, st.Span, t.Twiddles[st.Offset:])
			}
		}

		for b := base; b < base+t.Leaf; b += t.Bottom {
			if t.Bottom == 32 {
				radix2Inverse(v, b, t.Twiddles[t.Radix2Offset:])
				bottom16(v, b, k)
				bottom16(v, b+16, k)
			} else {
				bottom16(v, b, k)
			}

			e.swap(v, b)
		}
	}
}

// swap applies the bit-reversal exchanges owned by the bottom block at
// row b. Each exchange is done by the later row of its pair, whose
// partner is already final.
func (e *Engine) swap(v View, b int) {
	d, s := v.Data, v.Stride
	swaps := e.tab.Swaps[b : b+e.tab.Bottom]

	for l, off := range swaps {
		if off >= 0 {
			continue
		}

		i := v.Base + (b+l)*s
		j := i + off*s

		for c := range v.Count {
			d[i+c], d[j+c] = d[j+c], d[i+c]
		}
	}
}

// bottom16 runs a 16-row kernel on rows [row, row+16) of every column.
func bottom16(v View, row int, k func(d []complex128, o, s int)) {
	o := v.Base + row*v.Stride
	for c := range v.Count {
		k(v.Data, o+c, v.Stride)
	}
}
