package itype

import (
	"bufio"
	"io"

	"github.com/IceFireDB/itype/utils"
	"github.com/pingcap/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// DefaultMaxLineSize is the longest wire line a Decoder accepts by default.
const DefaultMaxLineSize = 128000

// DecoderStats counts what a Decoder has read so far.
type DecoderStats struct {
	Lines         int64
	Values        int64
	ParseFailures int64
}

// Decoder reads one itype value per newline-terminated line.
type Decoder struct {
	r           *utils.Reader
	parser      Parser
	maxLineSize int
	err         error

	lines    atomic.Int64
	values   atomic.Int64
	failures atomic.Int64
}

type DecoderOption func(*Decoder)

// WithMaxDepth sets the list nesting limit of the decoder's parser.
func WithMaxDepth(depth int) DecoderOption {
	return func(d *Decoder) {
		d.parser.MaxDepth = depth
	}
}

// WithMaxLineSize sets the longest accepted line; n <= 0 removes the limit.
func WithMaxLineSize(n int) DecoderOption {
	return func(d *Decoder) {
		d.maxLineSize = n
	}
}

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:           utils.NewReader(r),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReadLine returns the next line without its terminator, or io.EOF. A line
// over the size limit is skipped and reported as ErrLineTooLong; reading may
// continue with the next line.
func (d *Decoder) ReadLine() (string, error) {
	line, err := d.r.ReadLine(d.maxLineSize)
	if err != nil {
		if err == utils.ErrLineTooLong {
			return "", errors.Annotatef(ErrLineTooLong, "line %d", d.lines.Inc())
		}
		return "", err
	}
	d.lines.Inc()
	return string(line), nil
}

// DecodeWire reads the next line and parses it. A line that does not parse
// yields Empty with a nil error; only read failures are returned as errors.
func (d *Decoder) DecodeWire() (WireValue, error) {
	line, err := d.ReadLine()
	if err != nil {
		return nil, err
	}

	v, _ := d.parser.Parse(line)
	if empty, ok := v.(Empty); ok {
		d.failures.Inc()
		logrus.WithFields(logrus.Fields{
			"line":   d.lines.Load(),
			"reason": empty.Reason,
		}).Debug("itype parse failure")
	} else {
		d.values.Inc()
	}
	return v, nil
}

// Decode reads the next line and returns its canonical value.
func (d *Decoder) Decode() (Value, error) {
	v, err := d.DecodeWire()
	if err != nil {
		return nil, err
	}
	return Flatten(v), nil
}

// Values decodes lines in the background until end of input or a read
// failure, which is then reported by Err. The channel is closed when done.
func (d *Decoder) Values() <-chan Value {
	values := make(chan Value)
	utils.GoWithRecover(func() {
		defer close(values)
		for {
			v, err := d.Decode()
			if err != nil {
				if err != io.EOF {
					d.err = err
				}
				return
			}
			values <- v
		}
	}, nil)
	return values
}

// Err returns the read failure that ended Values, if any. It is only
// meaningful once the Values channel is closed.
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) Stats() DecoderStats {
	return DecoderStats{
		Lines:         d.lines.Load(),
		Values:        d.values.Load(),
		ParseFailures: d.failures.Load(),
	}
}

// Encoder writes one itype value per line.
type Encoder struct {
	w *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode converts x with ValueOf and writes it as one line.
func (e *Encoder) Encode(x interface{}) error {
	v, err := ValueOf(x)
	if err != nil {
		return err
	}
	return e.EncodeValue(v)
}

func (e *Encoder) EncodeValue(v Value) error {
	if err := checkValue(v); err != nil {
		return err
	}
	if _, err := e.w.WriteString(Serialize(v)); err != nil {
		return err
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return err
	}
	return e.w.Flush()
}
