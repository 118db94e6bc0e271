package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/hupe1980/matgo/codec"
	"github.com/hupe1980/matgo/internal/mem"
	"github.com/hupe1980/matgo/storage"
)

// Version is the current snapshot format version.
const Version = 1

// magic identifies a matgo snapshot file.
var magic = [4]byte{'M', 'G', 'S', '1'}

// Manifest describes a persisted storage buffer. It is encoded with the
// codec named in the snapshot header.
type Manifest struct {
	Version     int    `json:"version"`
	Scalar      string `json:"scalar"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Compression string `json:"compression"`
}

// Options configures snapshot writing.
type Options struct {
	// Codec encodes the manifest. Defaults to codec.Default.
	Codec codec.Codec
	// Compression selects the payload compression. Defaults to zstd.
	Compression Compression
}

// Option mutates Options.
type Option func(*Options)

// WithCodec sets the manifest codec. Nil selects codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		if c == nil {
			c = codec.Default
		}
		o.Codec = c
	}
}

// WithCompression sets the payload compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

func applyOptions(optFns []Option) Options {
	o := Options{
		Codec:       codec.Default,
		Compression: CompressionZSTD,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Save writes the current contents of s (rows*cols elements) to w as a
// self-describing snapshot.
func Save[T storage.Scalar](w io.Writer, s storage.Storage[T], optFns ...Option) error {
	o := applyOptions(optFns)

	rows, cols := s.Rows(), s.Cols()
	size := rows * cols
	data := s.Data()
	if size > len(data) {
		return fmt.Errorf("storage reports %dx%d but holds only %d elements", rows, cols, len(data))
	}

	m := Manifest{
		Version:     Version,
		Scalar:      scalarName[T](),
		Rows:        rows,
		Cols:        cols,
		Compression: o.Compression.String(),
	}
	manifestBytes, err := o.Codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	name := o.Codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec name %q too long", name)
	}

	header := make([]byte, 0, len(magic)+1+len(name)+4+len(manifestBytes))
	header = append(header, magic[:]...)
	header = append(header, byte(len(name)))
	header = append(header, name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(manifestBytes)))
	header = append(header, manifestBytes...)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	block, err := compressBlock(mem.AsBytes(data[:size]), o.Compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}
	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// Load reads a snapshot from r into s, resizing it to the persisted
// dimensions. The snapshot's shape must be compatible with the storage:
// loading into a too-small fixed or bounded storage, or across a fixed
// dimension mismatch, fails with ErrIncompatibleStorage before the storage
// is touched.
func Load[T storage.Scalar](r io.Reader, s storage.Storage[T], optFns ...Option) error {
	m, payload, err := read(r)
	if err != nil {
		return err
	}

	if want := scalarName[T](); m.Scalar != want {
		return &ErrScalarMismatch{Expected: want, Actual: m.Scalar}
	}

	// The manifest is untrusted input: reject dimensions the storage
	// contract reserves for programmer errors before they reach it.
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrCorruptSnapshot, m.Rows, m.Cols)
	}
	size := m.Rows * m.Cols
	if m.Rows != 0 && (size/m.Rows != m.Cols || size > math.MaxInt/mem.SizeOf[T]()) {
		return fmt.Errorf("%w: dimensions %dx%d overflow", ErrCorruptSnapshot, m.Rows, m.Cols)
	}
	if wantBytes := size * mem.SizeOf[T](); len(payload) != wantBytes {
		return fmt.Errorf("%w: payload holds %d bytes, manifest implies %d", ErrCorruptSnapshot, len(payload), wantBytes)
	}

	if err := checkFits(s.Spec(), m.Rows, m.Cols); err != nil {
		return err
	}

	s.Resize(size, m.Rows, m.Cols)
	copy(mem.AsBytes(s.Data()[:size]), payload)
	return nil
}

// checkFits verifies the persisted shape against the storage's declaration:
// every fixed dimension must match and a fixed capacity must hold the
// element count.
func checkFits(spec storage.Spec, rows, cols int) error {
	if (spec.Rows != storage.Dynamic && rows != spec.Rows) ||
		(spec.Cols != storage.Dynamic && cols != spec.Cols) {
		return fmt.Errorf("%w: snapshot is %dx%d, storage fixes %s x %s",
			ErrIncompatibleStorage, rows, cols, dimString(spec.Rows), dimString(spec.Cols))
	}
	if spec.Size != storage.Dynamic && rows*cols > spec.Size {
		return fmt.Errorf("%w: snapshot holds %d elements, storage capacity is %d",
			ErrIncompatibleStorage, rows*cols, spec.Size)
	}
	return nil
}

func dimString(d int) string {
	if d == storage.Dynamic {
		return "dynamic"
	}
	return strconv.Itoa(d)
}

// ReadManifest reads only the manifest of a snapshot, without decoding the
// payload.
func ReadManifest(r io.Reader) (Manifest, error) {
	m, _, err := readHeader(r)
	return m, err
}

func read(r io.Reader) (Manifest, []byte, error) {
	m, compression, err := readHeader(r)
	if err != nil {
		return Manifest{}, nil, err
	}

	blob, err := io.ReadAll(r)
	if err != nil {
		return Manifest{}, nil, fmt.Errorf("read payload: %w", err)
	}
	payload, err := decompressBlock(blob, compression)
	if err != nil {
		return Manifest{}, nil, err
	}
	return m, payload, nil
}

func readHeader(r io.Reader) (Manifest, Compression, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return Manifest{}, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if gotMagic != magic {
		return Manifest{}, 0, fmt.Errorf("%w: bad magic %q", ErrCorruptSnapshot, gotMagic)
	}

	var nameLen [1]byte
	if _, err := io.ReadFull(r, nameLen[:]); err != nil {
		return Manifest{}, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	nameBytes := make([]byte, nameLen[0])
	if _, err := io.ReadFull(r, nameBytes); err != nil {
		return Manifest{}, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	c, ok := codec.ByName(string(nameBytes))
	if !ok {
		return Manifest{}, 0, fmt.Errorf("%w: %q", ErrUnknownCodec, nameBytes)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return Manifest{}, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	manifestBytes := make([]byte, binary.LittleEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, manifestBytes); err != nil {
		return Manifest{}, 0, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	var m Manifest
	if err := c.Unmarshal(manifestBytes, &m); err != nil {
		return Manifest{}, 0, fmt.Errorf("%w: decode manifest: %w", ErrCorruptSnapshot, err)
	}
	if m.Version != Version {
		return Manifest{}, 0, fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, m.Version)
	}

	compression, ok := ParseCompression(m.Compression)
	if !ok {
		return Manifest{}, 0, fmt.Errorf("%w: unknown compression %q", ErrCorruptSnapshot, m.Compression)
	}
	return m, compression, nil
}

// scalarName returns the stable manifest name of the element type.
func scalarName[T storage.Scalar]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
