package programs

import "fmt"

type FileError struct {
	Path string
	Err  error
}

func (f *FileError) Error() string {
	return fmt.Sprintf("read source file %s: %v", f.Path, f.Err)
}

func (f *FileError) Unwrap() error {
	return f.Err
}
