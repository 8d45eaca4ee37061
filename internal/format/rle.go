// Copyright (c) 2025 The vintageview authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package format

// The four RLE variants used by the legacy formats share almost the same
// shape but disagree on what the control byte means. They are kept as four
// separate functions on purpose: folding them into one parameterised decoder
// would bury exactly the boundary cases that differ between them.
//
// All four are total: they never fail on malformed input. Decoding stops when
// the requested number of output bytes has been produced or the input runs
// out, and any shortfall is padded with zeros.

// rleBuf collects codec output, capped at a fixed size.
type rleBuf struct {
	out  []byte
	want int
}

func newRLEBuf(want int) *rleBuf {
	return &rleBuf{out: make([]byte, 0, want), want: want}
}

func (b *rleBuf) full() bool {
	return len(b.out) >= b.want
}

// repeat emits n copies of v, clamped to the remaining capacity.
func (b *rleBuf) repeat(v byte, n int) {
	if left := b.want - len(b.out); n > left {
		n = left
	}
	for i := 0; i < n; i++ {
		b.out = append(b.out, v)
	}
}

// literal emits p verbatim, clamped to the remaining capacity.
func (b *rleBuf) literal(p []byte) {
	if left := b.want - len(b.out); len(p) > left {
		p = p[:left]
	}
	b.out = append(b.out, p...)
}

// padded returns the collected output, zero-filled up to the requested size.
func (b *rleBuf) padded() []byte {
	for len(b.out) < b.want {
		b.out = append(b.out, 0)
	}
	return b.out
}

// unpackBits decodes Apple PackBits data to exactly want bytes.
// Flag 0x00..0x7F copies flag+1 literal bytes, 0x81..0xFF repeats the next
// byte 257-flag times, and 0x80 is a no-op.
func unpackBits(src []byte, want int) []byte {
	b := newRLEBuf(want)
	for i := 0; i < len(src) && !b.full(); {
		flag := src[i]
		i++
		switch {
		case flag == 0x80:
			// no-op
		case flag < 0x80:
			n := int(flag) + 1
			if i+n > len(src) {
				n = len(src) - i
			}
			b.literal(src[i : i+n])
			i += n
		default:
			if i >= len(src) {
				break
			}
			b.repeat(src[i], 257-int(flag))
			i++
		}
	}
	return b.padded()
}

// pcxRLE decodes ZSoft PCX run-length data to exactly want bytes.
// A control byte with the top two bits set carries a run length in its low
// six bits (zero-length runs still consume the value byte); anything else is
// a literal. Runs may cross scanline boundaries, so callers decode the whole
// payload at once and slice per scanline.
func pcxRLE(src []byte, want int) []byte {
	b := newRLEBuf(want)
	for i := 0; i < len(src) && !b.full(); {
		v := src[i]
		i++
		if v&0xC0 == 0xC0 {
			if i >= len(src) {
				break
			}
			b.repeat(src[i], int(v&0x3F))
			i++
		} else {
			b.repeat(v, 1)
		}
	}
	return b.padded()
}

// picRLE decodes PICtor run-length data to exactly want bytes.
// Unlike PCX there is no bit mask: a byte >= 0xC0 starts a run of length
// byte-0xC0 of the following value, anything below is a literal.
func picRLE(src []byte, want int) []byte {
	b := newRLEBuf(want)
	for i := 0; i < len(src) && !b.full(); {
		v := src[i]
		i++
		if v >= 0xC0 {
			if i >= len(src) {
				break
			}
			b.repeat(src[i], int(v)-0xC0)
			i++
		} else {
			b.repeat(v, 1)
		}
	}
	return b.padded()
}

// aolRLE decodes AOL Art run-length data to exactly want bytes.
// A control byte above 128 repeats the next byte control-128 times, a byte
// in 1..128 copies that many literal bytes, and zero is padding.
func aolRLE(src []byte, want int) []byte {
	b := newRLEBuf(want)
	for i := 0; i < len(src) && !b.full(); {
		ctl := src[i]
		i++
		switch {
		case ctl == 0:
			// padding
		case ctl > 128:
			if i >= len(src) {
				break
			}
			b.repeat(src[i], int(ctl)-128)
			i++
		default:
			n := int(ctl)
			if i+n > len(src) {
				n = len(src) - i
			}
			b.literal(src[i : i+n])
			i += n
		}
	}
	return b.padded()
}
