package zipkit

// Unzip2 separates a sequence of pairs back into the two underlying value slices.
// On a failing sequence it returns the values collected so far along with the error.
func Unzip2[A, B any](i SeqE[Pair[A, B]]) ([]A, []B, error) {
	var (
		as []A
		bs []B
	)
	for p, err := range i {
		if err != nil {
			return as, bs, err
		}
		as = append(as, p.A)
		bs = append(bs, p.B)
	}
	return as, bs, nil
}
