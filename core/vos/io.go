package vos

import (
	"io"
	"os"
)

// VIOAdapter bundles arbitrary reader/writers into a VIO.
type VIOAdapter struct {
	IStdin  io.Reader
	IStdout io.Writer
	IStderr io.Writer
}

// NewVIOAdapter creates a VIO from the given streams. Nil streams behave
// like /dev/null: reads fail closed and writes are discarded.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdin:  readerOrDevNull(stdin),
		IStdout: writerOrDevNull(stdout),
		IStderr: writerOrDevNull(stderr),
	}
}

// NewNullIO creates a /dev/null style VIO.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil, nil)
}

var _ VIO = (*VIOAdapter)(nil)

func (v *VIOAdapter) Stdin() io.Reader {
	return v.IStdin
}

func (v *VIOAdapter) Stdout() io.Writer {
	return v.IStdout
}

func (v *VIOAdapter) Stderr() io.Writer {
	return v.IStderr
}

func readerOrDevNull(r io.Reader) io.Reader {
	if r == nil {
		return &devNull{}
	}
	return r
}

func writerOrDevNull(w io.Writer) io.Writer {
	if w == nil {
		return &devNull{}
	}
	return w
}

// devNull implements io.Reader and io.Writer, always closed for reads
// and discarding writes.
type devNull struct{}

var _ io.Reader = (*devNull)(nil)
var _ io.Writer = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}
