package decoder

import (
	"unicode/utf8"

	"github.com/neopack-go/neopack/wire"
)

// measureValue computes the byte length of exactly one encoded value
// starting at pos in buf, without mutating any reader state. It recurses
// into List and Map to measure their elements, and computes Array's length
// directly from stride*count. Every Pending it returns carries the exact
// shortfall for the specific read that couldn't complete, matching the
// contract of every other read in this package.
func measureValue(buf []byte, pos int) (int, error) {
	if pos >= len(buf) {
		return 0, wire.Pending(1)
	}

	tag := wire.Tag(buf[pos])

	switch {
	case tag.IsScalar():
		size, _ := tag.Size()
		total := 1 + size

		if pos+total > len(buf) {
			return 0, wire.Pending(pos + total - len(buf))
		}

		return total, nil

	case tag.IsBlob():
		if pos+3 > len(buf) {
			return 0, wire.Pending(pos + 3 - len(buf))
		}

		length := wire.ReadU16LenPrefix(buf[pos+1 : pos+3])
		total := 3 + length

		if pos+total > len(buf) {
			return 0, wire.Pending(pos + total - len(buf))
		}

		if tag == wire.TagString && !utf8.Valid(buf[pos+3:pos+total]) {
			return 0, wire.InvalidUTF8()
		}

		return total, nil

	case tag == wire.TagList:
		return measureList(buf, pos)

	case tag == wire.TagMap:
		return measureMap(buf, pos)

	case tag == wire.TagArray:
		return measureArray(buf, pos)

	default:
		return 0, wire.InvalidTag(buf[pos])
	}
}

func measureList(buf []byte, pos int) (int, error) {
	if pos+3 > len(buf) {
		return 0, wire.Pending(pos + 3 - len(buf))
	}

	count := wire.ReadU16LenPrefix(buf[pos+1 : pos+3])
	cursor := pos + 3

	for i := 0; i < count; i++ {
		n, err := measureValue(buf, cursor)
		if err != nil {
			return 0, err
		}

		cursor += n
	}

	return cursor - pos, nil
}

func measureMap(buf []byte, pos int) (int, error) {
	if pos+3 > len(buf) {
		return 0, wire.Pending(pos + 3 - len(buf))
	}

	count := wire.ReadU16LenPrefix(buf[pos+1 : pos+3])
	cursor := pos + 3

	for i := 0; i < count; i++ {
		if cursor >= len(buf) {
			return 0, wire.Pending(1)
		}

		if wire.Tag(buf[cursor]) != wire.TagString {
			return 0, wire.Malformed("map entry not headed by String tag, got 0x%02x", buf[cursor])
		}

		keyLen, err := measureValue(buf, cursor)
		if err != nil {
			return 0, err
		}

		cursor += keyLen

		valLen, err := measureValue(buf, cursor)
		if err != nil {
			return 0, err
		}

		cursor += valLen
	}

	return cursor - pos, nil
}

func measureArray(buf []byte, pos int) (int, error) {
	if pos+6 > len(buf) {
		return 0, wire.Pending(pos + 6 - len(buf))
	}

	stride := wire.ReadU16LenPrefix(buf[pos+2 : pos+4])
	count := wire.ReadU16LenPrefix(buf[pos+4 : pos+6])

	if stride == 0 {
		return 0, wire.Malformed("array stride must be at least 1, got 0")
	}

	total := int64(stride) * int64(count)
	if total > wire.MaxSize {
		return 0, wire.Malformed("array stride*count overflow: %d*%d=%d exceeds %d", stride, count, total, wire.MaxSize)
	}

	full := 6 + int(total)
	if pos+full > len(buf) {
		return 0, wire.Pending(pos + full - len(buf))
	}

	return full, nil
}
