package convert

import (
	"io"
	"io/fs"
)

// SetOpen replaces the function ConvertFile reads the input with.
func SetOpen(c *Converter, open func(name string) (io.ReadCloser, error)) {
	c.open = open
}

// SetWrite replaces the function ConvertFile writes the result with.
func SetWrite(c *Converter, write func(path string, data []byte, perm fs.FileMode) error) {
	c.write = write
}
