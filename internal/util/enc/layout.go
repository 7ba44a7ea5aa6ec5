package enc

// layout describes how a family of encodings regroups bits. A group of raw bytes (8*raw bits) is always
// exactly as wide as a group of encoded symbols (width*encoded bits).
type layout struct {
	width   uint // bits per symbol
	raw     int  // bytes per group
	encoded int  // symbols per group

	// significant[k] is the number of symbols which carry data when a group holds only k bytes. The
	// remaining symbols of the group are padding.
	significant []int
}

var (
	layout64 = &layout{width: 6, raw: 3, encoded: 4, significant: []int{0, 2, 3, 4}}
	layout32 = &layout{width: 5, raw: 5, encoded: 8, significant: []int{0, 2, 4, 5, 7, 8}}
	layout16 = &layout{width: 4, raw: 1, encoded: 2, significant: []int{0, 2}}
)

func (l *layout) encodedLen(n int) int {
	return (n + l.raw - 1) / l.raw * l.encoded
}

func (l *layout) decodedLen(n int) int {
	return n / l.encoded * l.raw
}

// bytesFor is the inverse of the significant table: it returns the number of bytes held in a group of n
// symbols, or -1 if no group can end up with n symbols.
func (l *layout) bytesFor(n int) int {
	for k := 1; k < len(l.significant); k++ {
		if l.significant[k] == n {
			return k
		}
	}
	return -1
}

// maxPadding is the longest run of padding a valid text can end with.
func (l *layout) maxPadding() int {
	return l.encoded - l.significant[1]
}

// pack encodes src into dst. dst must be encodedLen(len(src)) long.
func (l *layout) pack(a *Alphabet, dst, src []byte) {
	mask := uint64(1)<<l.width - 1

	for len(src) > 0 {
		k := l.raw
		if len(src) < k {
			k = len(src)
		}

		// Missing bytes of a short group are treated as zeros
		var v uint64
		for i := 0; i < l.raw; i++ {
			v <<= 8
			if i < k {
				v |= uint64(src[i])
			}
		}

		n := l.significant[k]
		for j := 0; j < l.encoded; j++ {
			if j < n {
				shift := l.width * uint(l.encoded-1-j)
				dst[j] = a.symbols[(v>>shift)&mask]
			} else {
				dst[j] = Padding
			}
		}

		src = src[k:]
		dst = dst[l.encoded:]
	}
}

// unpack decodes src, which must already be stripped of padding, into dst. It returns the number of bytes
// written. On an invalid symbol it returns the offset of the symbol in src and ok=false.
func (l *layout) unpack(a *Alphabet, dst []byte, src string) (n int, offset int, ok bool) {
	for si := 0; si < len(src); si += l.encoded {
		symbols := l.encoded
		if rem := len(src) - si; rem < symbols {
			symbols = rem
		}
		k := l.bytesFor(symbols)
		if k < 0 {
			// Can't happen on validated input: the padding run determines the last group size
			return n, si + symbols, false
		}

		var v uint64
		for j := 0; j < l.encoded; j++ {
			v <<= l.width
			if j < symbols {
				c := a.inverse[src[si+j]]
				if c == invalidSymbol {
					return n, si + j, false
				}
				v |= uint64(c)
			}
		}

		for i := 0; i < k; i++ {
			dst[n] = byte(v >> (8 * uint(l.raw-1-i)))
			n++
		}
	}
	return n, 0, true
}
