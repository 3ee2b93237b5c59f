package kernels

// forward4 is the 4-point forward butterfly on d[o], d[o+s], d[o+2s], d[o+3s].
func forward4(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	t1 := x0 + x2
	t2 := x0 - x2
	t3 := x1 + x3
	t4 := x1 - x3
	t5 := complex(imag(t4), -real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	d[o] = t6
	d[o+s] = t8
	d[o+2*s] = t7
	d[o+3*s] = t9
}

// inverse4 is the 4-point inverse (unnormalized) butterfly.
func inverse4(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	t1 := x0 + x2
	t2 := x0 - x2
	t3 := x1 + x3
	t4 := x1 - x3
	t5 := complex(-imag(t4), real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	d[o] = t6
	d[o+s] = t8
	d[o+2*s] = t7
	d[o+3*s] = t9
}

// forward4ZP assumes rows 2 and 3 are zero and never reads them.
func forward4ZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	t1 := complex(imag(x1), -real(x1))
	t2 := x0 + x1
	t3 := x0 - x1
	t4 := x0 + t1
	t5 := x0 - t1
	d[o] = t2
	d[o+s] = t4
	d[o+2*s] = t3
	d[o+3*s] = t5
}

// inverse4ZP computes only output rows 0 and 1.
func inverse4ZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	t1 := x0 + x2
	t2 := x0 - x2
	t3 := x1 + x3
	t4 := x1 - x3
	t5 := complex(-imag(t4), real(t4))
	t6 := t1 + t3
	t7 := t2 + t5
	d[o] = t6
	d[o+s] = t7
}

// forward8 computes an 8-point forward transform: a radix-2 split with
// eighth-root twiddles followed by two radix-4 butterflies, with the
// bit-reversed outputs stored straight to their natural rows.
func forward8(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	t1 := x0 + x4
	t2 := x0 - x4
	t3 := x1 + x5
	t4 := x1 - x5
	t5 := complex((real(t4) + imag(t4))*sqrtHalf, (imag(t4) - real(t4))*sqrtHalf)
	t6 := x2 + x6
	t7 := x2 - x6
	t8 := complex(imag(t7), -real(t7))
	t9 := x3 + x7
	t10 := x3 - x7
	t11 := complex((imag(t10) - real(t10))*sqrtHalf, -(real(t10) + imag(t10))*sqrtHalf)
	t12 := t1 + t6
	t13 := t1 - t6
	t14 := t3 + t9
	t15 := t3 - t9
	t16 := complex(imag(t15), -real(t15))
	t17 := t12 + t14
	t18 := t12 - t14
	t19 := t13 + t16
	t20 := t13 - t16
	t21 := t2 + t8
	t22 := t2 - t8
	t23 := t5 + t11
	t24 := t5 - t11
	t25 := complex(imag(t24), -real(t24))
	t26 := t21 + t23
	t27 := t21 - t23
	t28 := t22 + t25
	t29 := t22 - t25
	d[o] = t17
	d[o+s] = t26
	d[o+2*s] = t19
	d[o+3*s] = t28
	d[o+4*s] = t18
	d[o+5*s] = t27
	d[o+6*s] = t20
	d[o+7*s] = t29
}

// inverse8 mirrors forward8 with conjugated roots.
func inverse8(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	t1 := x0 + x4
	t2 := x0 - x4
	t3 := x1 + x5
	t4 := x1 - x5
	t5 := complex((real(t4) - imag(t4))*sqrtHalf, (real(t4) + imag(t4))*sqrtHalf)
	t6 := x2 + x6
	t7 := x2 - x6
	t8 := complex(-imag(t7), real(t7))
	t9 := x3 + x7
	t10 := x3 - x7
	t11 := complex(-(real(t10) + imag(t10))*sqrtHalf, (real(t10) - imag(t10))*sqrtHalf)
	t12 := t1 + t6
	t13 := t1 - t6
	t14 := t3 + t9
	t15 := t3 - t9
	t16 := complex(-imag(t15), real(t15))
	t17 := t12 + t14
	t18 := t12 - t14
	t19 := t13 + t16
	t20 := t13 - t16
	t21 := t2 + t8
	t22 := t2 - t8
	t23 := t5 + t11
	t24 := t5 - t11
	t25 := complex(-imag(t24), real(t24))
	t26 := t21 + t23
	t27 := t21 - t23
	t28 := t22 + t25
	t29 := t22 - t25
	d[o] = t17
	d[o+s] = t26
	d[o+2*s] = t19
	d[o+3*s] = t28
	d[o+4*s] = t18
	d[o+5*s] = t27
	d[o+6*s] = t20
	d[o+7*s] = t29
}

// forward8ZP treats rows 4..7 as zero.
func forward8ZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	t1 := complex((real(x1) + imag(x1))*sqrtHalf, (imag(x1) - real(x1))*sqrtHalf)
	t2 := complex(imag(x2), -real(x2))
	t3 := complex((imag(x3) - real(x3))*sqrtHalf, -(real(x3) + imag(x3))*sqrtHalf)
	t4 := x0 + x2
	t5 := x0 - x2
	t6 := x1 + x3
	t7 := x1 - x3
	t8 := complex(imag(t7), -real(t7))
	t9 := t4 + t6
	t10 := t4 - t6
	t11 := t5 + t8
	t12 := t5 - t8
	t13 := x0 + t2
	t14 := x0 - t2
	t15 := t1 + t3
	t16 := t1 - t3
	t17 := complex(imag(t16), -real(t16))
	t18 := t13 + t15
	t19 := t13 - t15
	t20 := t14 + t17
	t21 := t14 - t17
	d[o] = t9
	d[o+s] = t18
	d[o+2*s] = t11
	d[o+3*s] = t20
	d[o+4*s] = t10
	d[o+5*s] = t19
	d[o+6*s] = t12
	d[o+7*s] = t21
}

// inverse8ZP writes rows 0..3 only.
func inverse8ZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	t1 := x0 + x4
	t2 := x0 - x4
	t3 := x1 + x5
	t4 := x1 - x5
	t5 := complex((real(t4) - imag(t4))*sqrtHalf, (real(t4) + imag(t4))*sqrtHalf)
	t6 := x2 + x6
	t7 := x2 - x6
	t8 := complex(-imag(t7), real(t7))
	t9 := x3 + x7
	t10 := x3 - x7
	t11 := complex(-(real(t10) + imag(t10))*sqrtHalf, (real(t10) - imag(t10))*sqrtHalf)
	t12 := t1 + t6
	t13 := t1 - t6
	t14 := t3 + t9
	t15 := t3 - t9
	t16 := complex(-imag(t15), real(t15))
	t17 := t12 + t14
	t18 := t13 + t16
	t19 := t2 + t8
	t20 := t2 - t8
	t21 := t5 + t11
	t22 := t5 - t11
	t23 := complex(-imag(t22), real(t22))
	t24 := t19 + t21
	t25 := t20 + t23
	d[o] = t17
	d[o+s] = t24
	d[o+2*s] = t18
	d[o+3*s] = t25
}
