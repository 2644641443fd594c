/*
 *
 *  * Licensed to the Apache Software Foundation (ASF) under one or more
 *  * contributor license agreements.  See the NOTICE file distributed with
 *  * this work for additional information regarding copyright ownership.
 *  * The ASF licenses this file to You under the Apache License, Version 2.0
 *  * (the "License"); you may not use this file except in compliance with
 *  * the License.  You may obtain a copy of the License at
 *  *
 *  *     http://www.apache.org/licenses/LICENSE-2.0
 *  *
 *  * Unless required by applicable law or agreed to in writing, software
 *  * distributed under the License is distributed on an "AS IS" BASIS,
 *  * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  * See the License for the specific language governing permissions and
 *  * limitations under the License.
 *
 */

package utils

import (
	"bytes"
	"io"

	"github.com/pingcap/errors"
)

var bufStepSize = 1024

// ErrLineTooLong is returned by ReadLine when a line exceeds its size limit.
var ErrLineTooLong = errors.New("LineTooLong")

type Reader struct {
	reader        io.Reader
	Buffer        []byte
	ReadPosition  int
	WritePosition int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: reader, Buffer: make([]byte, bufStepSize)}
}

func (r *Reader) requestSpace(reqSize int) {
	ccap := cap(r.Buffer)
	if r.WritePosition+reqSize > ccap {
		newbuff := make([]byte, max(ccap*2, ccap+reqSize+bufStepSize))
		copy(newbuff, r.Buffer[:r.WritePosition])
		r.Buffer = newbuff
	}
}

// compact moves unread bytes to the front of the buffer.
func (r *Reader) compact() {
	if r.IsEnd() || r.ReadPosition == 0 {
		return
	}
	n := copy(r.Buffer, r.Buffer[r.ReadPosition:r.WritePosition])
	r.ReadPosition = 0
	r.WritePosition = n
}

func (r *Reader) ReadSome(min int) error {
	r.requestSpace(min)
	nr, err := io.ReadAtLeast(r.reader, r.Buffer[r.WritePosition:], min)
	r.WritePosition += nr
	if err != nil {
		return err
	}
	return nil
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator. A
// final line without terminator is returned before io.EOF. maxSize <= 0
// disables the length check; a longer line is skipped and reported as
// ErrLineTooLong. The returned slice aliases the buffer and is
// only valid until the next call.
func (r *Reader) ReadLine(maxSize int) ([]byte, error) {
	r.compact()
	scanned := r.ReadPosition
	for {
		if i := bytes.IndexByte(r.Buffer[scanned:r.WritePosition], '\n'); i >= 0 {
			end := scanned + i
			line := trimCR(r.Buffer[r.ReadPosition:end])
			r.ReadPosition = end + 1
			if maxSize > 0 && len(line) > maxSize {
				return nil, ErrLineTooLong
			}
			return line, nil
		}
		scanned = r.WritePosition
		if maxSize > 0 && r.WritePosition-r.ReadPosition > maxSize+1 {
			return nil, r.skipLine()
		}

		if err := r.ReadSome(1); err != nil {
			if err == io.EOF && !r.IsEnd() {
				line := trimCR(r.Buffer[r.ReadPosition:r.WritePosition])
				r.ReadPosition = r.WritePosition
				if maxSize > 0 && len(line) > maxSize {
					return nil, ErrLineTooLong
				}
				return line, nil
			}
			return nil, err
		}
	}
}

// skipLine discards input up to and including the next newline, so the
// read after an ErrLineTooLong starts on the following line.
func (r *Reader) skipLine() error {
	for {
		if i := bytes.IndexByte(r.Buffer[r.ReadPosition:r.WritePosition], '\n'); i >= 0 {
			r.ReadPosition += i + 1
			return ErrLineTooLong
		}
		r.Reset()
		if err := r.ReadSome(1); err != nil {
			if err == io.EOF {
				return ErrLineTooLong
			}
			return err
		}
	}
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

func (r *Reader) IsEnd() (ret bool) {
	ret = false

	if r.ReadPosition >= r.WritePosition {
		ret = true
		r.Reset()
	}

	return
}

func (r *Reader) Reset() {
	r.WritePosition = 0
	r.ReadPosition = 0
}
