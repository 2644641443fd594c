package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/IceFireDB/itype/pkg/config"
	"github.com/IceFireDB/itype/pkg/itype"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var exceptionColor = color.New(color.FgRed, color.Bold)

func render(w io.Writer, v itype.Value, format string) error {
	switch format {
	case config.FormatSpew:
		spew.Fdump(w, v)
		return nil
	case config.FormatText:
		writeText(w, v, 0)
		return nil
	}

	data, err := itype.ToJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// writeText prints one item per line, nested lists indented inside braces.
func writeText(w io.Writer, v itype.Value, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := v.(type) {
	case itype.Text:
		fmt.Fprintf(w, "%s%s\n", pad, string(v))
	case itype.List:
		if len(v) == 0 {
			fmt.Fprintf(w, "%s{}\n", pad)
			return
		}
		fmt.Fprintf(w, "%s{\n", pad)
		for _, item := range v {
			writeText(w, item, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", pad)
	case *itype.Exception:
		fmt.Fprintf(w, "%s%s\n", pad, exceptionColor.Sprintf("[%s] %s", v.Code, v.Message))
	}
}
