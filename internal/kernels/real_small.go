package kernels

// Unrolled unpack and repack steps for real sizes 2, 4, 8 and 16 with
// the eighth and sixteenth roots folded in as constants. See unpackRoots
// and repackRoots for the general form.

func unpack2(d []complex128, o, s int) {
	z0 := d[o]
	d[o] = complex(real(z0)+imag(z0), 0)
	d[o+s] = complex(real(z0)-imag(z0), 0)
}

func unpack4(d []complex128, o, s int) {
	z0, z1 := d[o], d[o+s]
	d[o] = complex(real(z0)+imag(z0), 0)
	d[o+s] = complex(real(z1), -imag(z1))
	d[o+2*s] = complex(real(z0)-imag(z0), 0)
}

func unpack8(d []complex128, o, s int) {
	z0, z1, z2, z3 := d[o], d[o+s], d[o+2*s], d[o+3*s]

	e1 := complex(0.5*(real(z1)+real(z3)), 0.5*(imag(z1)-imag(z3)))
	h1r := 0.5 * (imag(z1) + imag(z3))
	h1i := 0.5 * (real(z3) - real(z1))
	p1 := complex((h1r+h1i)*sqrtHalf, (h1i-h1r)*sqrtHalf)

	d[o] = complex(real(z0)+imag(z0), 0)
	d[o+s] = e1 + p1
	d[o+2*s] = complex(real(z2), -imag(z2))
	d[o+3*s] = complex(real(e1)-real(p1), imag(p1)-imag(e1))
	d[o+4*s] = complex(real(z0)-imag(z0), 0)
}

func unpack16(d []complex128, o, s int) {
	z0, z1, z2, z3 := d[o], d[o+s], d[o+2*s], d[o+3*s]
	z4, z5, z6, z7 := d[o+4*s], d[o+5*s], d[o+6*s], d[o+7*s]

	e1 := complex(0.5*(real(z1)+real(z7)), 0.5*(imag(z1)-imag(z7)))
	p1 := complex(0.5*(imag(z1)+imag(z7)), 0.5*(real(z7)-real(z1))) * complex(cos16, -sin16)

	e2 := complex(0.5*(real(z2)+real(z6)), 0.5*(imag(z2)-imag(z6)))
	h2r := 0.5 * (imag(z2) + imag(z6))
	h2i := 0.5 * (real(z6) - real(z2))
	p2 := complex((h2r+h2i)*sqrtHalf, (h2i-h2r)*sqrtHalf)

	e3 := complex(0.5*(real(z3)+real(z5)), 0.5*(imag(z3)-imag(z5)))
	p3 := complex(0.5*(imag(z3)+imag(z5)), 0.5*(real(z5)-real(z3))) * complex(sin16, -cos16)

	d[o] = complex(real(z0)+imag(z0), 0)
	d[o+s] = e1 + p1
	d[o+2*s] = e2 + p2
	d[o+3*s] = e3 + p3
	d[o+4*s] = complex(real(z4), -imag(z4))
	d[o+5*s] = complex(real(e3)-real(p3), imag(p3)-imag(e3))
	d[o+6*s] = complex(real(e2)-real(p2), imag(p2)-imag(e2))
	d[o+7*s] = complex(real(e1)-real(p1), imag(p1)-imag(e1))
	d[o+8*s] = complex(real(z0)-imag(z0), 0)
}

func repack2(src []complex128, so, ss int, dst []complex128, do, ds int) {
	x0, x1 := real(src[so]), real(src[so+ss])
	dst[do] = complex(x0+x1, x0-x1)
}

func repack4(src []complex128, so, ss int, dst []complex128, do, ds int) {
	x0, x1, x2 := src[so], src[so+ss], src[so+2*ss]
	dst[do] = complex(real(x0)+real(x2), real(x0)-real(x2))
	dst[do+ds] = complex(2*real(x1), -2*imag(x1))
}

func repack8(src []complex128, so, ss int, dst []complex128, do, ds int) {
	x0, x1, x2, x3, x4 := src[so], src[so+ss], src[so+2*ss], src[so+3*ss], src[so+4*ss]

	f1 := complex(real(x1)+real(x3), imag(x1)-imag(x3))
	g1r := real(x1) - real(x3)
	g1i := imag(x1) + imag(x3)
	g1 := complex((g1r-g1i)*sqrtHalf, (g1r+g1i)*sqrtHalf)

	dst[do] = complex(real(x0)+real(x4), real(x0)-real(x4))
	dst[do+ds] = complex(real(f1)-imag(g1), imag(f1)+real(g1))
	dst[do+2*ds] = complex(2*real(x2), -2*imag(x2))
	dst[do+3*ds] = complex(real(f1)+imag(g1), real(g1)-imag(f1))
}

func repack16(src []complex128, so, ss int, dst []complex128, do, ds int) {
	x0, x1, x2, x3 := src[so], src[so+ss], src[so+2*ss], src[so+3*ss]
	x4, x5, x6, x7 := src[so+4*ss], src[so+5*ss], src[so+6*ss], src[so+7*ss]
	x8 := src[so+8*ss]

	f1 := complex(real(x1)+real(x7), imag(x1)-imag(x7))
	g1 := complex(real(x1)-real(x7), imag(x1)+imag(x7)) * complex(cos16, sin16)

	f2 := complex(real(x2)+real(x6), imag(x2)-imag(x6))
	g2r := real(x2) - real(x6)
	g2i := imag(x2) + imag(x6)
	g2 := complex((g2r-g2i)*sqrtHalf, (g2r+g2i)*sqrtHalf)

	f3 := complex(real(x3)+real(x5), imag(x3)-imag(x5))
	g3 := complex(real(x3)-real(x5), imag(x3)+imag(x5)) * complex(sin16, cos16)

	dst[do] = complex(real(x0)+real(x8), real(x0)-real(x8))
	dst[do+ds] = complex(real(f1)-imag(g1), imag(f1)+real(g1))
	dst[do+2*ds] = complex(real(f2)-imag(g2), imag(f2)+real(g2))
	dst[do+3*ds] = complex(real(f3)-imag(g3), imag(f3)+real(g3))
	dst[do+4*ds] = complex(2*real(x4), -2*imag(x4))
	dst[do+5*ds] = complex(real(f3)+imag(g3), real(g3)-imag(f3))
	dst[do+6*ds] = complex(real(f2)+imag(g2), real(g2)-imag(f2))
	dst[do+7*ds] = complex(real(f1)+imag(g1), real(g1)-imag(f1))
}
