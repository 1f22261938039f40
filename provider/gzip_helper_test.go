package provider

import (
	"os"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

func writeGzip(t *testing.T, path, contents string) {
	t.Helper()
	f, err := os.Create(path)
	expect.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(contents))
	expect.NoError(t, err)
	expect.NoError(t, gz.Close())
}
