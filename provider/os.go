package provider

import "os"

// osOpen is a thin seam over os.Open so openMmap's error path reads the
// same way as the rest of this file (one error per step, wrapped with
// errors.E at the call site).
func osOpen(path string) (*os.File, error) {
	return os.Open(path)
}

func pageSize() int {
	return os.Getpagesize()
}
