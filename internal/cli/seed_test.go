package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadStations_ConCabecera(t *testing.T) {
	in := "nombre,tipo,linea\nTORNO 1,MECANIZADO,L1\n\nINSPECCION FINAL, CALIDAD\n"
	got, err := readStations(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "TORNO 1", got[0].Name)
	assert.Equal(t, "L1", got[0].Line)
	assert.Equal(t, "CALIDAD", got[1].Type)
	assert.Empty(t, got[1].Line)
}

func TestReadStations_Latin1(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().String("INSPECCIÓN,CALIDAD\n")
	require.NoError(t, err)

	got, err := readStations(bytes.NewBufferString(enc), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INSPECCIÓN", got[0].Name)
}

func TestReadStations_SinTipo(t *testing.T) {
	_, err := readStations(strings.NewReader("PRENSA\n"), false)
	assert.Error(t, err)
}
