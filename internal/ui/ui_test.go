package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func useMono(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() {
		disableColor = false
		SetTheme("classic")
	})
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("does-not-exist")
	require.Equal(t, "classic", Current().Name)
	SetTheme("NEON")
	require.Equal(t, "neon", Current().Name)
	SetTheme("classic")
}

func TestTableRendersHeaderAndRecords(t *testing.T) {
	useMono(t)
	out := Table([]string{"Variants", "Price"}, [][]string{{"small | blue", "$345.30"}, {"Total", ""}}, true)
	require.Contains(t, out, "Variants")
	require.Contains(t, out, "small | blue")
	require.Contains(t, out, "$345.30")
	require.Contains(t, out, "Total")
	require.True(t, strings.HasPrefix(out, "+"))
}

func TestRadio(t *testing.T) {
	useMono(t)
	require.Equal(t, "  (x) blue", Radio("blue", true, false))
	require.Equal(t, "> ( ) red", Radio("red", false, true))
}

func TestOKAndFailWriters(t *testing.T) {
	useMono(t)
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })

	OK("saved")
	Fail("broken")
	Panel([]string{"one", "two"})

	require.Contains(t, out.String(), "x saved")
	require.Contains(t, out.String(), "one")
	require.Contains(t, errOut.String(), "! broken")
}
