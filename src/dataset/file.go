package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Write emits one integer per line.
func Write(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range values {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write dataset")
		}
	}
	return errors.Wrap(bw.Flush(), "flush dataset")
}

// Save writes values to path, creating the parent directory when needed.
func Save(path string, values []int) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return Write(f, values)
}

// Read parses whitespace separated integers until EOF. Any token that is not
// an integer fails the whole read.
func Read(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var values []int
	for pos := 1; sc.Scan(); pos++ {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "token %d %q", pos, sc.Text())
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read dataset")
	}
	return values, nil
}

// Load reads a dataset file. An empty file yields an empty, non-nil slice.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file %s", path)
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if values == nil {
		values = []int{}
	}
	return values, nil
}
