package fftypes

// View is a block of complex columns inside a flat buffer: element j of
// column c lives at Data[Base+j*Stride+c].
type View struct {
	Data   []complex128
	Base   int
	Stride int
	Count  int
}

// Index returns the position of row j, column c.
func (v View) Index(j, c int) int {
	return v.Base + j*v.Stride + c
}

// Columns returns the sub-view of n columns starting at column c.
func (v View) Columns(c, n int) View {
	return View{Data: v.Data, Base: v.Base + c, Stride: v.Stride, Count: n}
}

// ColumnKernel transforms every column of a view in place. Kernels are
// resolved once at configuration time and perform no runtime checks; the
// caller guarantees the view fits inside Data.
type ColumnKernel func(v View)
