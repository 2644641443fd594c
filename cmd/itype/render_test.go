package main

import (
	"bytes"
	"testing"

	"github.com/IceFireDB/itype/pkg/config"
	"github.com/IceFireDB/itype/pkg/itype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	writeText(&buf, itype.List{
		itype.Text("a"),
		itype.List{},
		itype.List{itype.Text("b")},
		&itype.Exception{Code: "E", Message: "m"},
	}, 0)
	assert.Equal(t, "{\n  a\n  {}\n  {\n    b\n  }\n  [E] m\n}\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, itype.List{itype.Text("a")}, config.FormatJSON))
	assert.Equal(t, "[\"a\"]\n", buf.String())
}
