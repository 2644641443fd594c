package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IceFireDB/itype/pkg/config"
	"github.com/IceFireDB/itype/pkg/itype"
	"github.com/davecgh/go-spew/spew"
	"github.com/pingcap/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var encodeCommand = cli.Command{
	Name:      "encode",
	Usage:     "encode arguments, or a JSON document, as one itype line",
	ArgsUsage: "[ARG...]",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "json,j",
			Usage: "read a JSON document from the arguments or stdin",
		},
		cli.BoolFlag{
			Name:  "list",
			Usage: "encode the arguments as a list even when there is only one",
		},
	},
	Action: cmdEncode,
}

var decodeCommand = cli.Command{
	Name:      "decode",
	Usage:     "decode itype lines",
	ArgsUsage: "[FILE|-]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "format,f",
			Usage: "json, text or spew (overrides output.format)",
		},
	},
	Action: cmdDecode,
}

var dumpCommand = cli.Command{
	Name:      "dump",
	Usage:     "print the parse tree of each itype line",
	ArgsUsage: "[FILE|-]",
	Action:    cmdDump,
}

var checkCommand = cli.Command{
	Name:      "check",
	Usage:     "report itype lines that do not parse",
	ArgsUsage: "[FILE|-]",
	Action:    cmdCheck,
}

func loadedConfig() (*config.Config, error) {
	conf := config.Get()
	if conf == nil {
		return nil, config.ErrConfigNotInit
	}
	return conf, nil
}

func openInput(c *cli.Context) (io.ReadCloser, error) {
	name := c.Args().First()
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return f, nil
}

func newDecoder(r io.Reader, conf *config.Config) *itype.Decoder {
	return itype.NewDecoder(r,
		itype.WithMaxDepth(conf.Codec.MaxDepth),
		itype.WithMaxLineSize(conf.Codec.MaxLineSize),
	)
}

func cmdEncode(c *cli.Context) error {
	args := []string(c.Args())

	var (
		v   itype.Value
		err error
	)
	switch {
	case c.Bool("json"):
		var data []byte
		if len(args) > 0 {
			data = []byte(strings.Join(args, " "))
		} else if data, err = io.ReadAll(os.Stdin); err != nil {
			return errors.Trace(err)
		}
		if v, err = itype.ValueFromJSON(data); err != nil {
			return err
		}
	case c.Bool("list") || len(args) > 1:
		v = itype.List{}
		if len(args) > 0 {
			if v, err = itype.ValueOf(args); err != nil {
				return err
			}
		}
	case len(args) == 1:
		v = itype.Text(args[0])
	default:
		return cli.ShowCommandHelp(c, c.Command.Name)
	}

	return itype.NewEncoder(c.App.Writer).EncodeValue(v)
}

func cmdDecode(c *cli.Context) error {
	conf, err := loadedConfig()
	if err != nil {
		return err
	}
	format := strings.ToLower(c.String("format"))
	if format == "" {
		format = conf.Output.Format
	}
	if !config.ValidFormat(format) {
		return errors.Annotatef(config.ErrInvalidFormat, "%q", format)
	}

	in, err := openInput(c)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := newDecoder(in, conf)
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := render(c.App.Writer, v, format); err != nil {
			return err
		}
	}

	st := dec.Stats()
	logrus.WithFields(logrus.Fields{
		"lines":    st.Lines,
		"values":   st.Values,
		"failures": st.ParseFailures,
	}).Debug("decode finished")
	return nil
}

func cmdDump(c *cli.Context) error {
	conf, err := loadedConfig()
	if err != nil {
		return err
	}
	in, err := openInput(c)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := newDecoder(in, conf)
	parser := itype.Parser{MaxDepth: conf.Codec.MaxDepth}
	for n := 1; ; n++ {
		line, err := dec.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		wire, consumed := parser.Parse(line)
		fmt.Fprintf(c.App.Writer, "line %d: %s, consumed %d of %d\n", n, wire.Kind(), consumed, len(line))
		spew.Fdump(c.App.Writer, wire)
	}
}

func cmdCheck(c *cli.Context) error {
	conf, err := loadedConfig()
	if err != nil {
		return err
	}
	in, err := openInput(c)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := newDecoder(in, conf)
	for {
		wire, err := dec.DecodeWire()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if empty, ok := wire.(itype.Empty); ok {
			logrus.WithFields(logrus.Fields{
				"line":   dec.Stats().Lines,
				"reason": empty.Reason,
			}).Warn("invalid itype line")
		}
	}

	st := dec.Stats()
	fmt.Fprintf(c.App.Writer, "%d lines, %d values, %d invalid\n", st.Lines, st.Values, st.ParseFailures)
	if st.ParseFailures > 0 {
		return cli.NewExitError(fmt.Sprintf("%d invalid line(s)", st.ParseFailures), 1)
	}
	return nil
}
