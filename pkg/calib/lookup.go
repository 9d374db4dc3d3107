package calib

// TableSize covers every 16-bit DN value.
const TableSize = 1 << 16

// A LookupTable holds a precomputed value for every possible DN.
type LookupTable []float64

func newTable(f func(dn float64) float64) LookupTable {
	t := make(LookupTable, TableSize)
	for dn := 0; dn < TableSize; dn++ {
		t[dn] = f(float64(dn))
	}
	return t
}

// NewRadianceTable tabulates Radiance(dn).
func NewRadianceTable(t Transform) LookupTable {
	return newTable(t.Radiance)
}

// NewReflectanceTable tabulates the composed DN->reflectance function,
// so a lookup skips the radiance stage entirely.
func NewReflectanceTable(t Transform) LookupTable {
	return newTable(t.ReflectanceOfDN)
}

// ApplyLine maps a row of DNs through the table into dst; dst must be at least as long as row.
func (lt LookupTable)ApplyLine(dst []float64, row []uint16) {
	for i, dn := range row {
		dst[i] = lt[dn]
	}
}

// ApplyLine evaluates the radiance formula directly over a row of DNs.
func (t Transform)ApplyLine(dst []float64, row []uint16) {
	for i, dn := range row {
		dst[i] = t.Radiance(float64(dn))
	}
}

// ReflectLine derives reflectance from an already computed radiance row.
func (t Transform)ReflectLine(dst, radiance []float64) {
	for i, rad := range radiance {
		dst[i] = t.Reflectance(rad)
	}
}
