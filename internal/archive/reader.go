package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when the configured text encoding is not recognised.
var ErrUnknownEncoding = errors.New("unknown text encoding")

const byteOrderMark = "\ufeff"

// Reader loads whole archives as text. Undecodable input never fails a read.
type Reader struct {
	enc  encoding.Encoding
	name string
}

// NewReader creates a reader for the named encoding (WHATWG labels such as
// "utf-8", "windows-1250" or "iso-8859-2"). An empty name means UTF-8.
func NewReader(encodingName string) (*Reader, error) {
	if encodingName == "" {
		encodingName = "utf-8"
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encodingName)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(encodingName)
	}

	return &Reader{enc: enc, name: name}, nil
}

// Encoding returns the canonical name of the reader's encoding.
func (r *Reader) Encoding() string {
	return r.name
}

// ReadAll reads the file at path, decompressing .gz and .zst files, and
// decodes it to a string.
func (r *Reader) ReadAll(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, closeFn, err := decompressor(path, f)
	if err != nil {
		return "", fmt.Errorf("decompressing %s: %w", path, err)
	}
	defer closeFn()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return r.Decode(data), nil
}

// Decode converts raw bytes to text. Invalid UTF-8 sequences are dropped and
// a leading byte order mark is removed.
func (r *Reader) Decode(data []byte) string {
	var text string

	if r.enc == unicode.UTF8 {
		text = strings.ToValidUTF8(string(data), "")
	} else {
		decoded, _, err := transform.Bytes(r.enc.NewDecoder(), data)
		if err != nil {
			decoded = data
		}

		text = strings.ToValidUTF8(string(decoded), "")
	}

	return strings.TrimPrefix(text, byteOrderMark)
}

func decompressor(path string, f io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}

		return zr, func() { _ = zr.Close() }, nil
	case strings.HasSuffix(strings.ToLower(path), ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, err
		}

		return zr, zr.Close, nil
	default:
		return f, func() {}, nil
	}
}
