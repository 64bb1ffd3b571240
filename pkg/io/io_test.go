package io

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gridpark/pkg/layout"
)

func parseAll(t *testing.T, codes ...string) []*layout.Layout {
	t.Helper()
	out := make([]*layout.Layout, len(codes))
	for i, c := range codes {
		l, err := layout.ParseFlat(c)
		require.NoError(t, err, c)
		out[i] = l
	}
	return out
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf, CSVOptions{})
	require.NoError(t, err)
	for _, l := range parseAll(t, "GPG_GPG_GPG", "T") {
		require.NoError(t, cw.Write(l))
	}
	assert.Equal(t, 2, cw.Rows())
	require.NoError(t, cw.Close())
	require.NoError(t, cw.Close())

	recs := readCSV(t, buf.Bytes())
	require.Len(t, recs, 3)
	assert.Equal(t, CSVHeader(false), recs[0])
	assert.Equal(t, []string{"🌱⬜🌱\n🌱⬜🌱\n🌱⬜🌱", "1200", "750", "330", "90", "-48"}, recs[1])
	assert.Equal(t, []string{"🌲", "1000", "400", "150", "25", "-30"}, recs[2])
}

func TestCSVWriterScores(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf, CSVOptions{Scores: true})
	require.NoError(t, err)
	require.NoError(t, cw.Write(parseAll(t, "GPG_GPG_GPG")[0]))
	require.NoError(t, cw.Close())

	recs := readCSV(t, buf.Bytes())
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"greenery", "accessibility"}, recs[0][6:])
	assert.Equal(t, []string{"20", "14"}, recs[1][6:])
}

func TestCSVWriterCompressed(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf, CSVOptions{Compress: true})
	require.NoError(t, err)
	for _, l := range parseAll(t, "GG_GG", "GG_GT", "TT_TT") {
		require.NoError(t, cw.Write(l))
	}
	require.NoError(t, cw.Close())

	zr, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer zr.Close()
	plain, err := zr.DecodeAll(buf.Bytes(), nil)
	require.NoError(t, err)

	recs := readCSV(t, plain)
	require.Len(t, recs, 4)
	assert.Equal(t, "🌲🌲\n🌲🌲", recs[3][0])
}

func TestCSVWriterClosed(t *testing.T) {
	cw, err := NewCSVWriter(&bytes.Buffer{}, CSVOptions{})
	require.NoError(t, err)
	require.NoError(t, cw.Close())
	assert.Error(t, cw.Write(parseAll(t, "G")[0]))
}

type designProblem struct {
	F               []string `yaml:"F"`
	R               []string `yaml:"R"`
	Implementations map[string]struct {
		FMax []string `yaml:"f_max"`
		RMin []string `yaml:"r_min"`
	} `yaml:"implementations"`
}

func encodeYAML(t *testing.T, doc *yaml.Node) (string, designProblem) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(doc, &buf))
	var dp designProblem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &dp))
	return buf.String(), dp
}

func TestCostDocument(t *testing.T) {
	text, dp := encodeYAML(t, CostDocument(parseAll(t, "GPG_GPG_GPG", "BT_GG")))

	assert.Equal(t, []string{"`layout"}, dp.F)
	assert.Equal(t, []string{"Nat", "Nat", "Nat", "$", "Nat", "Int"}, dp.R)
	require.Len(t, dp.Implementations, 2)

	impl := dp.Implementations["GPG_GPG_GPG"]
	assert.Equal(t, []string{"`layout: GPG_GPG_GPG"}, impl.FMax)
	assert.Equal(t, []string{"0 Nat", "3 Nat", "0 Nat", "750 $", "330 Nat", "-138 Int"}, impl.RMin)

	impl = dp.Implementations["BT_GG"]
	assert.Equal(t, []string{"1 Nat", "0 Nat", "1 Nat", "700 $", "290 Nat", "-111 Int"}, impl.RMin)

	assert.Less(t, strings.Index(text, "GPG_GPG_GPG:"), strings.Index(text, "BT_GG:"), "insertion order kept")
	assert.True(t, strings.HasPrefix(text, "F:"), "F comes first")
}

func TestQualityDocument(t *testing.T) {
	_, dp := encodeYAML(t, QualityDocument(parseAll(t, "GPG_GPG_GPG", "BP_GG")))

	assert.Equal(t, []string{"dimensionless", "dimensionless"}, dp.F)
	assert.Equal(t, []string{"`layout"}, dp.R)

	impl := dp.Implementations["GPG_GPG_GPG"]
	assert.Equal(t, []string{"14 dimensionless", "20 dimensionless"}, impl.FMax)
	assert.Equal(t, []string{"`layout: GPG_GPG_GPG"}, impl.RMin)

	impl = dp.Implementations["BP_GG"]
	assert.Equal(t, []string{"5 dimensionless", "6 dimensionless"}, impl.FMax)
}

func TestWritePoset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePoset(&buf, parseAll(t, "GG_GG", "GG_GT", "GG_TT")))
	assert.Equal(t, "poset {\n\tGG_GG <= GG_GT <= GG_TT\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePoset(&buf, parseAll(t, "P")))
	assert.Equal(t, "poset {\n\tP\n}\n", buf.String())
}

func TestPosetDOT(t *testing.T) {
	dot := PosetDOT(parseAll(t, "GG_GG", "GG_GT", "GG_TT"))
	assert.True(t, strings.HasPrefix(dot, "digraph poset {"))
	assert.Contains(t, dot, `"GG_GG" -> "GG_GT";`)
	assert.Contains(t, dot, `"GG_GT" -> "GG_TT";`)
	assert.Equal(t, 2, strings.Count(dot, "->"))
}

func TestRenderPosetSVG(t *testing.T) {
	svg, err := RenderPosetSVG(context.Background(), PosetDOT(parseAll(t, "G", "T")))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	in := map[string]any{"run_id": "abc", "layouts": 16}
	require.NoError(t, ExportJSON(in, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"layouts\": 16")

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "abc", out["run_id"])

	assert.Error(t, ExportJSON(in, filepath.Join(t.TempDir(), "missing", "x.json")))
}
