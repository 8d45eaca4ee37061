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

import "errors"

var (
	// ErrInvalidFormat is returned when no variant signature matched and no
	// fallback produced plausible dimensions.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrTruncated is returned when the file is shorter than the minimum
	// header length for the chosen variant.
	ErrTruncated = errors.New("truncated file")

	// ErrUnsupported is returned when the header is valid but declares a
	// combination the decoder does not implement.
	ErrUnsupported = errors.New("unsupported variant")

	// ErrDelegated is returned when a delegated third-party decoder rejected
	// the input.
	ErrDelegated = errors.New("delegated decoder rejected input")
)
