package sim

// Overlaps reports whether the inclusive address ranges of a and b intersect.
func Overlaps(a, b *Request) bool {
	aFirst, aLast := a.Range()
	bFirst, bLast := b.Range()
	return aFirst <= bLast && bFirst <= aLast
}
