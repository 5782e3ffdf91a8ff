package decoder

import "github.com/neopack-go/neopack/wire"

type mapReadState uint8

const (
	mapReadAwaitingKey mapReadState = iota
	mapReadAwaitingValue
)

// MapReader is a bounded sub-reader over a Map's entries, produced by
// Reader.Map.
//
// A partial Next call — key decoded successfully but the value not yet
// available — must leave the reader retry-safe: state and pendingKey
// remember that the key for the current entry was already consumed, so a
// retried Next resumes at the value instead of misreading the value's tag
// byte as a key.
type MapReader struct {
	r          *Reader
	remaining  int
	state      mapReadState
	pendingKey string
}

// Map consumes tag 0x21 and the u16 pair count at the cursor and returns a
// MapReader bounded to that many entries.
func (r *Reader) Map() (*MapReader, error) {
	if err := r.need(1); err != nil {
		return nil, err
	}

	got := wire.Tag(r.buf[r.pos])
	if got != wire.TagMap {
		return nil, wire.TypeMismatch(wire.TagMap, got)
	}

	if err := r.need(3); err != nil {
		return nil, err
	}

	count := wire.ReadU16LenPrefix(r.buf[r.pos+1 : r.pos+3])
	r.pos += 3

	return &MapReader{r: r, remaining: count}, nil
}

// Remaining returns the number of entries not yet produced by Next.
func (mr *MapReader) Remaining() int { return mr.remaining }

// Next returns the next (key, value) pair. ok is false once every entry
// has been produced. Per I3, an entry not headed by the String tag is
// Malformed, not TypeMismatch — it's a structural violation of the
// container, not a caller asking for the wrong scalar type. The decoder
// does not deduplicate keys; duplicates, if present, are surfaced as-is.
//
// As with ListReader.Next, a container-shaped value must be fully
// traversed or skipped before the next call.
func (mr *MapReader) Next() (key string, value Value, ok bool, err error) {
	if mr.remaining == 0 {
		return "", Value{}, false, nil
	}

	if mr.state == mapReadAwaitingKey {
		if err := mr.r.need(1); err != nil {
			return "", Value{}, false, err
		}

		if wire.Tag(mr.r.buf[mr.r.pos]) != wire.TagString {
			return "", Value{}, false, wire.Malformed("map entry not headed by String tag, got 0x%02x", mr.r.buf[mr.r.pos])
		}

		k, err := mr.r.String()
		if err != nil {
			return "", Value{}, false, err
		}

		mr.pendingKey = k
		mr.state = mapReadAwaitingValue
	}

	v, err := mr.r.Value()
	if err != nil {
		return "", Value{}, false, err
	}

	mr.remaining--
	mr.state = mapReadAwaitingKey

	return mr.pendingKey, v, true, nil
}
