package kernels

// forward16 computes a 16-point forward transform in natural order. The
// network is one radix-4 level with sixteenth-root twiddles followed by
// four radix-4 butterflies.
func forward16(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	x8 := d[o+8*s]
	x9 := d[o+9*s]
	x10 := d[o+10*s]
	x11 := d[o+11*s]
	x12 := d[o+12*s]
	x13 := d[o+13*s]
	x14 := d[o+14*s]
	x15 := d[o+15*s]
	t1 := x0 + x8
	t2 := x0 - x8
	t3 := x4 + x12
	t4 := x4 - x12
	t5 := complex(imag(t4), -real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	t10 := x1 + x9
	t11 := x1 - x9
	t12 := x5 + x13
	t13 := x5 - x13
	t14 := complex(imag(t13), -real(t13))
	t15 := t10 + t12
	t16 := t10 - t12
	t17 := t11 + t14
	t18 := t11 - t14
	t19 := complex((real(t16) + imag(t16))*sqrtHalf, (imag(t16) - real(t16))*sqrtHalf)
	t20 := t17 * complex(cos16, -sin16)
	t21 := t18 * complex(sin16, -cos16)
	t22 := x2 + x10
	t23 := x2 - x10
	t24 := x6 + x14
	t25 := x6 - x14
	t26 := complex(imag(t25), -real(t25))
	t27 := t22 + t24
	t28 := t22 - t24
	t29 := t23 + t26
	t30 := t23 - t26
	t31 := complex(imag(t28), -real(t28))
	t32 := complex((real(t29) + imag(t29))*sqrtHalf, (imag(t29) - real(t29))*sqrtHalf)
	t33 := complex((imag(t30) - real(t30))*sqrtHalf, -(real(t30) + imag(t30))*sqrtHalf)
	t34 := x3 + x11
	t35 := x3 - x11
	t36 := x7 + x15
	t37 := x7 - x15
	t38 := complex(imag(t37), -real(t37))
	t39 := t34 + t36
	t40 := t34 - t36
	t41 := t35 + t38
	t42 := t35 - t38
	t43 := complex((imag(t40) - real(t40))*sqrtHalf, -(real(t40) + imag(t40))*sqrtHalf)
	t44 := t41 * complex(sin16, -cos16)
	t45 := t42 * complex(-cos16, sin16)
	t46 := t6 + t27
	t47 := t6 - t27
	t48 := t15 + t39
	t49 := t15 - t39
	t50 := complex(imag(t49), -real(t49))
	t51 := t46 + t48
	t52 := t46 - t48
	t53 := t47 + t50
	t54 := t47 - t50
	t55 := t7 + t31
	t56 := t7 - t31
	t57 := t19 + t43
	t58 := t19 - t43
	t59 := complex(imag(t58), -real(t58))
	t60 := t55 + t57
	t61 := t55 - t57
	t62 := t56 + t59
	t63 := t56 - t59
	t64 := t8 + t32
	t65 := t8 - t32
	t66 := t20 + t44
	t67 := t20 - t44
	t68 := complex(imag(t67), -real(t67))
	t69 := t64 + t66
	t70 := t64 - t66
	t71 := t65 + t68
	t72 := t65 - t68
	t73 := t9 + t33
	t74 := t9 - t33
	t75 := t21 + t45
	t76 := t21 - t45
	t77 := complex(imag(t76), -real(t76))
	t78 := t73 + t75
	t79 := t73 - t75
	t80 := t74 + t77
	t81 := t74 - t77
	d[o] = t51
	d[o+8*s] = t52
	d[o+4*s] = t53
	d[o+12*s] = t54
	d[o+2*s] = t60
	d[o+10*s] = t61
	d[o+6*s] = t62
	d[o+14*s] = t63
	d[o+s] = t69
	d[o+9*s] = t70
	d[o+5*s] = t71
	d[o+13*s] = t72
	d[o+3*s] = t78
	d[o+11*s] = t79
	d[o+7*s] = t80
	d[o+15*s] = t81
}

// inverse16 is the conjugate-root counterpart of forward16.
func inverse16(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	x8 := d[o+8*s]
	x9 := d[o+9*s]
	x10 := d[o+10*s]
	x11 := d[o+11*s]
	x12 := d[o+12*s]
	x13 := d[o+13*s]
	x14 := d[o+14*s]
	x15 := d[o+15*s]
	t1 := x0 + x8
	t2 := x0 - x8
	t3 := x4 + x12
	t4 := x4 - x12
	t5 := complex(-imag(t4), real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	t10 := x1 + x9
	t11 := x1 - x9
	t12 := x5 + x13
	t13 := x5 - x13
	t14 := complex(-imag(t13), real(t13))
	t15 := t10 + t12
	t16 := t10 - t12
	t17 := t11 + t14
	t18 := t11 - t14
	t19 := complex((real(t16) - imag(t16))*sqrtHalf, (real(t16) + imag(t16))*sqrtHalf)
	t20 := t17 * complex(cos16, sin16)
	t21 := t18 * complex(sin16, cos16)
	t22 := x2 + x10
	t23 := x2 - x10
	t24 := x6 + x14
	t25 := x6 - x14
	t26 := complex(-imag(t25), real(t25))
	t27 := t22 + t24
	t28 := t22 - t24
	t29 := t23 + t26
	t30 := t23 - t26
	t31 := complex(-imag(t28), real(t28))
	t32 := complex((real(t29) - imag(t29))*sqrtHalf, (real(t29) + imag(t29))*sqrtHalf)
	t33 := complex(-(real(t30) + imag(t30))*sqrtHalf, (real(t30) - imag(t30))*sqrtHalf)
	t34 := x3 + x11
	t35 := x3 - x11
	t36 := x7 + x15
	t37 := x7 - x15
	t38 := complex(-imag(t37), real(t37))
	t39 := t34 + t36
	t40 := t34 - t36
	t41 := t35 + t38
	t42 := t35 - t38
	t43 := complex(-(real(t40) + imag(t40))*sqrtHalf, (real(t40) - imag(t40))*sqrtHalf)
	t44 := t41 * complex(sin16, cos16)
	t45 := t42 * complex(-cos16, -sin16)
	t46 := t6 + t27
	t47 := t6 - t27
	t48 := t15 + t39
	t49 := t15 - t39
	t50 := complex(-imag(t49), real(t49))
	t51 := t46 + t48
	t52 := t46 - t48
	t53 := t47 + t50
	t54 := t47 - t50
	t55 := t7 + t31
	t56 := t7 - t31
	t57 := t19 + t43
	t58 := t19 - t43
	t59 := complex(-imag(t58), real(t58))
	t60 := t55 + t57
	t61 := t55 - t57
	t62 := t56 + t59
	t63 := t56 - t59
	t64 := t8 + t32
	t65 := t8 - t32
	t66 := t20 + t44
	t67 := t20 - t44
	t68 := complex(-imag(t67), real(t67))
	t69 := t64 + t66
	t70 := t64 - t66
	t71 := t65 + t68
	t72 := t65 - t68
	t73 := t9 + t33
	t74 := t9 - t33
	t75 := t21 + t45
	t76 := t21 - t45
	t77 := complex(-imag(t76), real(t76))
	t78 := t73 + t75
	t79 := t73 - t75
	t80 := t74 + t77
	t81 := t74 - t77
	d[o] = t51
	d[o+8*s] = t52
	d[o+4*s] = t53
	d[o+12*s] = t54
	d[o+2*s] = t60
	d[o+10*s] = t61
	d[o+6*s] = t62
	d[o+14*s] = t63
	d[o+s] = t69
	d[o+9*s] = t70
	d[o+5*s] = t71
	d[o+13*s] = t72
	d[o+3*s] = t78
	d[o+11*s] = t79
	d[o+7*s] = t80
	d[o+15*s] = t81
}

// forward16ZP treats rows 8..15 as zero.
func forward16ZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	t1 := complex(imag(x4), -real(x4))
	t2 := x0 + x4
	t3 := x0 - x4
	t4 := x0 + t1
	t5 := x0 - t1
	t6 := complex(imag(x5), -real(x5))
	t7 := x1 + x5
	t8 := x1 - x5
	t9 := x1 + t6
	t10 := x1 - t6
	t11 := complex((real(t8) + imag(t8))*sqrtHalf, (imag(t8) - real(t8))*sqrtHalf)
	t12 := t9 * complex(cos16, -sin16)
	t13 := t10 * complex(sin16, -cos16)
	t14 := complex(imag(x6), -real(x6))
	t15 := x2 + x6
	t16 := x2 - x6
	t17 := x2 + t14
	t18 := x2 - t14
	t19 := complex(imag(t16), -real(t16))
	t20 := complex((real(t17) + imag(t17))*sqrtHalf, (imag(t17) - real(t17))*sqrtHalf)
	t21 := complex((imag(t18) - real(t18))*sqrtHalf, -(real(t18) + imag(t18))*sqrtHalf)
	t22 := complex(imag(x7), -real(x7))
	t23 := x3 + x7
	t24 := x3 - x7
	t25 := x3 + t22
	t26 := x3 - t22
	t27 := complex((imag(t24) - real(t24))*sqrtHalf, -(real(t24) + imag(t24))*sqrtHalf)
	t28 := t25 * complex(sin16, -cos16)
	t29 := t26 * complex(-cos16, sin16)
	t30 := t2 + t15
	t31 := t2 - t15
	t32 := t7 + t23
	t33 := t7 - t23
	t34 := complex(imag(t33), -real(t33))
	t35 := t30 + t32
	t36 := t30 - t32
	t37 := t31 + t34
	t38 := t31 - t34
	t39 := t3 + t19
	t40 := t3 - t19
	t41 := t11 + t27
	t42 := t11 - t27
	t43 := complex(imag(t42), -real(t42))
	t44 := t39 + t41
	t45 := t39 - t41
	t46 := t40 + t43
	t47 := t40 - t43
	t48 := t4 + t20
	t49 := t4 - t20
	t50 := t12 + t28
	t51 := t12 - t28
	t52 := complex(imag(t51), -real(t51))
	t53 := t48 + t50
	t54 := t48 - t50
	t55 := t49 + t52
	t56 := t49 - t52
	t57 := t5 + t21
	t58 := t5 - t21
	t59 := t13 + t29
	t60 := t13 - t29
	t61 := complex(imag(t60), -real(t60))
	t62 := t57 + t59
	t63 := t57 - t59
	t64 := t58 + t61
	t65 := t58 - t61
	d[o] = t35
	d[o+8*s] = t36
	d[o+4*s] = t37
	d[o+12*s] = t38
	d[o+2*s] = t44
	d[o+10*s] = t45
	d[o+6*s] = t46
	d[o+14*s] = t47
	d[o+s] = t53
	d[o+9*s] = t54
	d[o+5*s] = t55
	d[o+13*s] = t56
	d[o+3*s] = t62
	d[o+11*s] = t63
	d[o+7*s] = t64
	d[o+15*s] = t65
}

// inverse16ZP writes rows 0..7 only.
func inverse16ZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	x8 := d[o+8*s]
	x9 := d[o+9*s]
	x10 := d[o+10*s]
	x11 := d[o+11*s]
	x12 := d[o+12*s]
	x13 := d[o+13*s]
	x14 := d[o+14*s]
	x15 := d[o+15*s]
	t1 := x0 + x8
	t2 := x0 - x8
	t3 := x4 + x12
	t4 := x4 - x12
	t5 := complex(-imag(t4), real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	t10 := x1 + x9
	t11 := x1 - x9
	t12 := x5 + x13
	t13 := x5 - x13
	t14 := complex(-imag(t13), real(t13))
	t15 := t10 + t12
	t16 := t10 - t12
	t17 := t11 + t14
	t18 := t11 - t14
	t19 := complex((real(t16) - imag(t16))*sqrtHalf, (real(t16) + imag(t16))*sqrtHalf)
	t20 := t17 * complex(cos16, sin16)
	t21 := t18 * complex(sin16, cos16)
	t22 := x2 + x10
	t23 := x2 - x10
	t24 := x6 + x14
	t25 := x6 - x14
	t26 := complex(-imag(t25), real(t25))
	t27 := t22 + t24
	t28 := t22 - t24
	t29 := t23 + t26
	t30 := t23 - t26
	t31 := complex(-imag(t28), real(t28))
	t32 := complex((real(t29) - imag(t29))*sqrtHalf, (real(t29) + imag(t29))*sqrtHalf)
	t33 := complex(-(real(t30) + imag(t30))*sqrtHalf, (real(t30) - imag(t30))*sqrtHalf)
	t34 := x3 + x11
	t35 := x3 - x11
	t36 := x7 + x15
	t37 := x7 - x15
	t38 := complex(-imag(t37), real(t37))
	t39 := t34 + t36
	t40 := t34 - t36
	t41 := t35 + t38
	t42 := t35 - t38
	t43 := complex(-(real(t40) + imag(t40))*sqrtHalf, (real(t40) - imag(t40))*sqrtHalf)
	t44 := t41 * complex(sin16, cos16)
	t45 := t42 * complex(-cos16, -sin16)
	t46 := t6 + t27
	t47 := t6 - t27
	t48 := t15 + t39
	t49 := t15 - t39
	t50 := complex(-imag(t49), real(t49))
	t51 := t46 + t48
	t52 := t47 + t50
	t53 := t7 + t31
	t54 := t7 - t31
	t55 := t19 + t43
	t56 := t19 - t43
	t57 := complex(-imag(t56), real(t56))
	t58 := t53 + t55
	t59 := t54 + t57
	t60 := t8 + t32
	t61 := t8 - t32
	t62 := t20 + t44
	t63 := t20 - t44
	t64 := complex(-imag(t63), real(t63))
	t65 := t60 + t62
	t66 := t61 + t64
	t67 := t9 + t33
	t68 := t9 - t33
	t69 := t21 + t45
	t70 := t21 - t45
	t71 := complex(-imag(t70), real(t70))
	t72 := t67 + t69
	t73 := t68 + t71
	d[o] = t51
	d[o+4*s] = t52
	d[o+2*s] = t58
	d[o+6*s] = t59
	d[o+s] = t65
	d[o+5*s] = t66
	d[o+3*s] = t72
	d[o+7*s] = t73
}

// forward16Rev is the bottom kernel of the larger transforms: the same
// network as forward16, but output k is left in row bitrev4(k) so the
// caller's bit-reversal swaps finish the permutation.
func forward16Rev(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	x8 := d[o+8*s]
	x9 := d[o+9*s]
	x10 := d[o+10*s]
	x11 := d[o+11*s]
	x12 := d[o+12*s]
	x13 := d[o+13*s]
	x14 := d[o+14*s]
	x15 := d[o+15*s]
	t1 := x0 + x8
	t2 := x0 - x8
	t3 := x4 + x12
	t4 := x4 - x12
	t5 := complex(imag(t4), -real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	t10 := x1 + x9
	t11 := x1 - x9
	t12 := x5 + x13
	t13 := x5 - x13
	t14 := complex(imag(t13), -real(t13))
	t15 := t10 + t12
	t16 := t10 - t12
	t17 := t11 + t14
	t18 := t11 - t14
	t19 := complex((real(t16) + imag(t16))*sqrtHalf, (imag(t16) - real(t16))*sqrtHalf)
	t20 := t17 * complex(cos16, -sin16)
	t21 := t18 * complex(sin16, -cos16)
	t22 := x2 + x10
	t23 := x2 - x10
	t24 := x6 + x14
	t25 := x6 - x14
	t26 := complex(imag(t25), -real(t25))
	t27 := t22 + t24
	t28 := t22 - t24
	t29 := t23 + t26
	t30 := t23 - t26
	t31 := complex(imag(t28), -real(t28))
	t32 := complex((real(t29) + imag(t29))*sqrtHalf, (imag(t29) - real(t29))*sqrtHalf)
	t33 := complex((imag(t30) - real(t30))*sqrtHalf, -(real(t30) + imag(t30))*sqrtHalf)
	t34 := x3 + x11
	t35 := x3 - x11
	t36 := x7 + x15
	t37 := x7 - x15
	t38 := complex(imag(t37), -real(t37))
	t39 := t34 + t36
	t40 := t34 - t36
	t41 := t35 + t38
	t42 := t35 - t38
	t43 := complex((imag(t40) - real(t40))*sqrtHalf, -(real(t40) + imag(t40))*sqrtHalf)
	t44 := t41 * complex(sin16, -cos16)
	t45 := t42 * complex(-cos16, sin16)
	t46 := t6 + t27
	t47 := t6 - t27
	t48 := t15 + t39
	t49 := t15 - t39
	t50 := complex(imag(t49), -real(t49))
	t51 := t46 + t48
	t52 := t46 - t48
	t53 := t47 + t50
	t54 := t47 - t50
	t55 := t7 + t31
	t56 := t7 - t31
	t57 := t19 + t43
	t58 := t19 - t43
	t59 := complex(imag(t58), -real(t58))
	t60 := t55 + t57
	t61 := t55 - t57
	t62 := t56 + t59
	t63 := t56 - t59
	t64 := t8 + t32
	t65 := t8 - t32
	t66 := t20 + t44
	t67 := t20 - t44
	t68 := complex(imag(t67), -real(t67))
	t69 := t64 + t66
	t70 := t64 - t66
	t71 := t65 + t68
	t72 := t65 - t68
	t73 := t9 + t33
	t74 := t9 - t33
	t75 := t21 + t45
	t76 := t21 - t45
	t77 := complex(imag(t76), -real(t76))
	t78 := t73 + t75
	t79 := t73 - t75
	t80 := t74 + t77
	t81 := t74 - t77
	d[o] = t51
	d[o+s] = t52
	d[o+2*s] = t53
	d[o+3*s] = t54
	d[o+4*s] = t60
	d[o+5*s] = t61
	d[o+6*s] = t62
	d[o+7*s] = t63
	d[o+8*s] = t69
	d[o+9*s] = t70
	d[o+10*s] = t71
	d[o+11*s] = t72
	d[o+12*s] = t78
	d[o+13*s] = t79
	d[o+14*s] = t80
	d[o+15*s] = t81
}

// inverse16Rev is the inverse counterpart of forward16Rev.
func inverse16Rev(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	x8 := d[o+8*s]
	x9 := d[o+9*s]
	x10 := d[o+10*s]
	x11 := d[o+11*s]
	x12 := d[o+12*s]
	x13 := d[o+13*s]
	x14 := d[o+14*s]
	x15 := d[o+15*s]
	t1 := x0 + x8
	t2 := x0 - x8
	t3 := x4 + x12
	t4 := x4 - x12
	t5 := complex(-imag(t4), real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	t10 := x1 + x9
	t11 := x1 - x9
	t12 := x5 + x13
	t13 := x5 - x13
	t14 := complex(-imag(t13), real(t13))
	t15 := t10 + t12
	t16 := t10 - t12
	t17 := t11 + t14
	t18 := t11 - t14
	t19 := complex((real(t16) - imag(t16))*sqrtHalf, (real(t16) + imag(t16))*sqrtHalf)
	t20 := t17 * complex(cos16, sin16)
	t21 := t18 * complex(sin16, cos16)
	t22 := x2 + x10
	t23 := x2 - x10
	t24 := x6 + x14
	t25 := x6 - x14
	t26 := complex(-imag(t25), real(t25))
	t27 := t22 + t24
	t28 := t22 - t24
	t29 := t23 + t26
	t30 := t23 - t26
	t31 := complex(-imag(t28), real(t28))
	t32 := complex((real(t29) - imag(t29))*sqrtHalf, (real(t29) + imag(t29))*sqrtHalf)
	t33 := complex(-(real(t30) + imag(t30))*sqrtHalf, (real(t30) - imag(t30))*sqrtHalf)
	t34 := x3 + x11
	t35 := x3 - x11
	t36 := x7 + x15
	t37 := x7 - x15
	t38 := complex(-imag(t37), real(t37))
	t39 := t34 + t36
	t40 := t34 - t36
	t41 := t35 + t38
	t42 := t35 - t38
	t43 := complex(-(real(t40) + imag(t40))*sqrtHalf, (real(t40) - imag(t40))*sqrtHalf)
	t44 := t41 * complex(sin16, cos16)
	t45 := t42 * complex(-cos16, -sin16)
	t46 := t6 + t27
	t47 := t6 - t27
	t48 := t15 + t39
	t49 := t15 - t39
	t50 := complex(-imag(t49), real(t49))
	t51 := t46 + t48
	t52 := t46 - t48
	t53 := t47 + t50
	t54 := t47 - t50
	t55 := t7 + t31
	t56 := t7 - t31
	t57 := t19 + t43
	t58 := t19 - t43
	t59 := complex(-imag(t58), real(t58))
	t60 := t55 + t57
	t61 := t55 - t57
	t62 := t56 + t59
	t63 := t56 - t59
	t64 := t8 + t32
	t65 := t8 - t32
	t66 := t20 + t44
	t67 := t20 - t44
	t68 := complex(-imag(t67), real(t67))
	t69 := t64 + t66
	t70 := t64 - t66
	t71 := t65 + t68
	t72 := t65 - t68
	t73 := t9 + t33
	t74 := t9 - t33
	t75 := t21 + t45
	t76 := t21 - t45
	t77 := complex(-imag(t76), real(t76))
	t78 := t73 + t75
	t79 := t73 - t75
	t80 := t74 + t77
	t81 := t74 - t77
	d[o] = t51
	d[o+s] = t52
	d[o+2*s] = t53
	d[o+3*s] = t54
	d[o+4*s] = t60
	d[o+5*s] = t61
	d[o+6*s] = t62
	d[o+7*s] = t63
	d[o+8*s] = t69
	d[o+9*s] = t70
	d[o+10*s] = t71
	d[o+11*s] = t72
	d[o+12*s] = t78
	d[o+13*s] = t79
	d[o+14*s] = t80
	d[o+15*s] = t81
}

// forward16RevZP treats rows 8..15 as zero.
func forward16RevZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	t1 := complex(imag(x4), -real(x4))
	t2 := x0 + x4
	t3 := x0 - x4
	t4 := x0 + t1
	t5 := x0 - t1
	t6 := complex(imag(x5), -real(x5))
	t7 := x1 + x5
	t8 := x1 - x5
	t9 := x1 + t6
	t10 := x1 - t6
	t11 := complex((real(t8) + imag(t8))*sqrtHalf, (imag(t8) - real(t8))*sqrtHalf)
	t12 := t9 * complex(cos16, -sin16)
	t13 := t10 * complex(sin16, -cos16)
	t14 := complex(imag(x6), -real(x6))
	t15 := x2 + x6
	t16 := x2 - x6
	t17 := x2 + t14
	t18 := x2 - t14
	t19 := complex(imag(t16), -real(t16))
	t20 := complex((real(t17) + imag(t17))*sqrtHalf, (imag(t17) - real(t17))*sqrtHalf)
	t21 := complex((imag(t18) - real(t18))*sqrtHalf, -(real(t18) + imag(t18))*sqrtHalf)
	t22 := complex(imag(x7), -real(x7))
	t23 := x3 + x7
	t24 := x3 - x7
	t25 := x3 + t22
	t26 := x3 - t22
	t27 := complex((imag(t24) - real(t24))*sqrtHalf, -(real(t24) + imag(t24))*sqrtHalf)
	t28 := t25 * complex(sin16, -cos16)
	t29 := t26 * complex(-cos16, sin16)
	t30 := t2 + t15
	t31 := t2 - t15
	t32 := t7 + t23
	t33 := t7 - t23
	t34 := complex(imag(t33), -real(t33))
	t35 := t30 + t32
	t36 := t30 - t32
	t37 := t31 + t34
	t38 := t31 - t34
	t39 := t3 + t19
	t40 := t3 - t19
	t41 := t11 + t27
	t42 := t11 - t27
	t43 := complex(imag(t42), -real(t42))
	t44 := t39 + t41
	t45 := t39 - t41
	t46 := t40 + t43
	t47 := t40 - t43
	t48 := t4 + t20
	t49 := t4 - t20
	t50 := t12 + t28
	t51 := t12 - t28
	t52 := complex(imag(t51), -real(t51))
	t53 := t48 + t50
	t54 := t48 - t50
	t55 := t49 + t52
	t56 := t49 - t52
	t57 := t5 + t21
	t58 := t5 - t21
	t59 := t13 + t29
	t60 := t13 - t29
	t61 := complex(imag(t60), -real(t60))
	t62 := t57 + t59
	t63 := t57 - t59
	t64 := t58 + t61
	t65 := t58 - t61
	d[o] = t35
	d[o+s] = t36
	d[o+2*s] = t37
	d[o+3*s] = t38
	d[o+4*s] = t44
	d[o+5*s] = t45
	d[o+6*s] = t46
	d[o+7*s] = t47
	d[o+8*s] = t53
	d[o+9*s] = t54
	d[o+10*s] = t55
	d[o+11*s] = t56
	d[o+12*s] = t62
	d[o+13*s] = t63
	d[o+14*s] = t64
	d[o+15*s] = t65
}

// inverse16RevZP computes only outputs 0..7, which land in the even rows;
// odd rows keep intermediate values.
func inverse16RevZP(d []complex128, o, s int) {
	x0 := d[o]
	x1 := d[o+s]
	x2 := d[o+2*s]
	x3 := d[o+3*s]
	x4 := d[o+4*s]
	x5 := d[o+5*s]
	x6 := d[o+6*s]
	x7 := d[o+7*s]
	x8 := d[o+8*s]
	x9 := d[o+9*s]
	x10 := d[o+10*s]
	x11 := d[o+11*s]
	x12 := d[o+12*s]
	x13 := d[o+13*s]
	x14 := d[o+14*s]
	x15 := d[o+15*s]
	t1 := x0 + x8
	t2 := x0 - x8
	t3 := x4 + x12
	t4 := x4 - x12
	t5 := complex(-imag(t4), real(t4))
	t6 := t1 + t3
	t7 := t1 - t3
	t8 := t2 + t5
	t9 := t2 - t5
	t10 := x1 + x9
	t11 := x1 - x9
	t12 := x5 + x13
	t13 := x5 - x13
	t14 := complex(-imag(t13), real(t13))
	t15 := t10 + t12
	t16 := t10 - t12
	t17 := t11 + t14
	t18 := t11 - t14
	t19 := complex((real(t16) - imag(t16))*sqrtHalf, (real(t16) + imag(t16))*sqrtHalf)
	t20 := t17 * complex(cos16, sin16)
	t21 := t18 * complex(sin16, cos16)
	t22 := x2 + x10
	t23 := x2 - x10
	t24 := x6 + x14
	t25 := x6 - x14
	t26 := complex(-imag(t25), real(t25))
	t27 := t22 + t24
	t28 := t22 - t24
	t29 := t23 + t26
	t30 := t23 - t26
	t31 := complex(-imag(t28), real(t28))
	t32 := complex((real(t29) - imag(t29))*sqrtHalf, (real(t29) + imag(t29))*sqrtHalf)
	t33 := complex(-(real(t30) + imag(t30))*sqrtHalf, (real(t30) - imag(t30))*sqrtHalf)
	t34 := x3 + x11
	t35 := x3 - x11
	t36 := x7 + x15
	t37 := x7 - x15
	t38 := complex(-imag(t37), real(t37))
	t39 := t34 + t36
	t40 := t34 - t36
	t41 := t35 + t38
	t42 := t35 - t38
	t43 := complex(-(real(t40) + imag(t40))*sqrtHalf, (real(t40) - imag(t40))*sqrtHalf)
	t44 := t41 * complex(sin16, cos16)
	t45 := t42 * complex(-cos16, -sin16)
	t46 := t6 + t27
	t47 := t6 - t27
	t48 := t15 + t39
	t49 := t15 - t39
	t50 := complex(-imag(t49), real(t49))
	t51 := t46 + t48
	t52 := t47 + t50
	t53 := t7 + t31
	t54 := t7 - t31
	t55 := t19 + t43
	t56 := t19 - t43
	t57 := complex(-imag(t56), real(t56))
	t58 := t53 + t55
	t59 := t54 + t57
	t60 := t8 + t32
	t61 := t8 - t32
	t62 := t20 + t44
	t63 := t20 - t44
	t64 := complex(-imag(t63), real(t63))
	t65 := t60 + t62
	t66 := t61 + t64
	t67 := t9 + t33
	t68 := t9 - t33
	t69 := t21 + t45
	t70 := t21 - t45
	t71 := complex(-imag(t70), real(t70))
	t72 := t67 + t69
	t73 := t68 + t71
	d[o] = t51
	d[o+2*s] = t52
	d[o+4*s] = t58
	d[o+6*s] = t59
	d[o+8*s] = t65
	d[o+10*s] = t66
	d[o+12*s] = t72
	d[o+14*s] = t73
}
