package fft3v

// Scale multiplies every element of data by factor in place. Pair it
// with Scaling() to normalize an inverse transform.
func Scale(data []float64, factor float64) {
	if factor == 1 {
		return
	}

	for i := range data {
		data[i] *= factor
	}
}
