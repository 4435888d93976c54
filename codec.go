package numtree

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
)

// Wire format
//
// A stream is a CBOR array
//
//	[ "numtree", version, tree ]
//
// where a tree is either null (the empty tree) or an array
//
//	[ value, left, right ]
//
// and a value is an array [ kind, payload ]. The payload is a CBOR integer for
// signed kinds and an unsigned integer otherwise; floats are transported by
// their IEEE 754 bit pattern.
const (
	formatMagic   = "numtree"
	formatVersion = 1
)

// maxDepth limits the nesting of nodes accepted by Decode.
const maxDepth = 1 << 16

// Encode writes t to w in the numtree wire format. Output is buffered and
// flushed before Encode returns.
func (t *Tree) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := encodeStream(cbg.NewCborWriter(bw), t); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeStream(cw *cbg.CborWriter, t *Tree) error {
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 3); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajTextString, uint64(len(formatMagic))); err != nil {
		return err
	}
	if _, err := io.WriteString(cw, formatMagic); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, formatVersion); err != nil {
		return err
	}
	return encodeTree(cw, t)
}

func encodeTree(cw *cbg.CborWriter, t *Tree) error {
	if t.IsEmpty() {
		_, err := cw.Write(cbg.CborNull)
		return err
	}
	assert(kindOf(t.value) != kindInvalid, "numtree: node carries a non-numeric value")
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 3); err != nil {
		return err
	}
	if err := encodeValue(cw, t.value); err != nil {
		return err
	}
	if err := encodeTree(cw, t.left); err != nil {
		return err
	}
	return encodeTree(cw, t.right)
}

func encodeValue(cw *cbg.CborWriter, v Number) error {
	k := kindOf(v)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 2); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(k)); err != nil {
		return err
	}
	b := bits(v)
	if k.signed() && int64(b) < 0 {
		return cw.WriteMajorTypeHeader(cbg.MajNegativeInt, uint64(-int64(b)-1))
	}
	return cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, b)
}

// faultReader remembers the first read error of its source which is not
// caused by the stream simply ending.
type faultReader struct {
	r     io.Reader
	fault error
}

func (fr *faultReader) Read(p []byte) (int, error) {
	n, err := fr.r.Read(p)
	if err != nil && err != io.EOF && fr.fault == nil {
		fr.fault = err
	}
	return n, err
}

// Decode reads a tree in the numtree wire format from r.
//
// A stream which is not a well-formed tree yields an error matching
// ErrPersistence and either ErrMalformedStream or ErrIncompatibleFormat.
// Read errors of r itself are returned unchanged. Input is read through a
// buffer, so Decode may consume bytes of r beyond a malformed tree.
func Decode(r io.Reader) (*Tree, error) {
	fr := &faultReader{r: r}
	t, err := decodeStream(cbg.NewCborReader(bufio.NewReader(fr)))
	if fr.fault != nil {
		return nil, fr.fault
	}
	if err != nil {
		if errors.Is(err, ErrIncompatibleFormat) {
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		return nil, persistenceFailure(ErrMalformedStream, "%v", err)
	}
	return t, nil
}

func decodeStream(cr *cbg.CborReader) (*Tree, error) {
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return nil, err
	}
	if maj != cbg.MajArray || extra != 3 {
		return nil, fmt.Errorf("%w: not a numtree stream", ErrIncompatibleFormat)
	}
	magic, err := cbg.ReadString(cr)
	if err != nil || magic != formatMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrIncompatibleFormat)
	}
	maj, version, err := cr.ReadHeader()
	if err != nil {
		return nil, err
	}
	if maj != cbg.MajUnsignedInt || version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrIncompatibleFormat, version)
	}
	t, err := decodeTree(cr, 0)
	if err != nil {
		return nil, err
	}
	if _, err := cr.ReadByte(); err != io.EOF {
		return nil, errors.New("trailing data after tree")
	}
	if t == nil {
		return Empty(), nil
	}
	return t, nil
}

// decodeTree returns nil for an encoded empty tree.
func decodeTree(cr *cbg.CborReader, depth int) (*Tree, error) {
	b, err := cr.ReadByte()
	if err != nil {
		return nil, err
	}
	if b == cbg.CborNull[0] {
		return nil, nil
	}
	if err := cr.UnreadByte(); err != nil {
		return nil, err
	}
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return nil, err
	}
	if maj != cbg.MajArray || extra != 3 {
		return nil, fmt.Errorf("expected tree node, have major type %d", maj)
	}
	if depth >= maxDepth {
		return nil, fmt.Errorf("nesting too deep, exceeds %d levels", maxDepth)
	}
	v, err := decodeValue(cr)
	if err != nil {
		return nil, err
	}
	t := &Tree{value: v}
	if t.left, err = decodeTree(cr, depth+1); err != nil {
		return nil, err
	}
	if t.right, err = decodeTree(cr, depth+1); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeValue(cr *cbg.CborReader) (Number, error) {
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return nil, err
	}
	if maj != cbg.MajArray || extra != 2 {
		return nil, fmt.Errorf("expected value, have major type %d", maj)
	}
	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return nil, err
	}
	if maj != cbg.MajUnsignedInt || extra == uint64(kindInvalid) || extra >= uint64(kindCount) {
		return nil, fmt.Errorf("invalid value kind %d", extra)
	}
	k := kind(extra)
	maj, payload, err := cr.ReadHeader()
	if err != nil {
		return nil, err
	}
	switch maj {
	case cbg.MajUnsignedInt:
		if k.signed() && int64(payload) < 0 {
			return nil, errors.New("integer overflow")
		}
	case cbg.MajNegativeInt:
		if !k.signed() || int64(payload) < 0 {
			return nil, errors.New("integer overflow")
		}
		payload = uint64(-1 - int64(payload))
	default:
		return nil, fmt.Errorf("expected number payload, have major type %d", maj)
	}
	v, err := fromBits(k, payload)
	if err != nil {
		return nil, err
	}
	if bits(v) != payload {
		return nil, fmt.Errorf("payload out of range for value kind %d", k)
	}
	return v, nil
}
