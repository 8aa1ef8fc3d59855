package util

// Check panics on a non-nil error. Used for failures that indicate a bug or an
// unusable environment rather than something the caller can recover from.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}
