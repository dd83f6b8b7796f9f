package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tacfg/internal/dom"
	"tacfg/internal/domfront"
	"tacfg/internal/ir"
	"tacfg/internal/irparser"
	"tacfg/internal/liveness"
	"tacfg/internal/loopnest"
	"tacfg/internal/lvn"
	"tacfg/internal/render"
)

// readGolden loads a golden file from testdata/, failing the test if it's
// missing — a missing golden file means the fixture drifted, not that the
// check should be skipped.
func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return string(data)
}

func parseTestdata(t *testing.T, name string) *ir.CFG {
	t.Helper()
	path := filepath.Join("..", "..", "testdata", name)
	source, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := irparser.ParseString(path, string(source))
	require.NoError(t, err)
	return cfg
}

func TestScenarioADominatorsAndLoops(t *testing.T) {
	cfg := parseTestdata(t, "scenario_a_straight_line.ir")
	tree := dom.BuildCHK(cfg)
	require.Equal(t, readGolden(t, "scenario_a_straight_line.dominators.out"), render.Dominators(cfg, tree))

	fronts := domfront.Compute(cfg, tree)
	defer fronts.Free()
	require.Equal(t, readGolden(t, "scenario_a_straight_line.dom_fronts.out"), render.DomFronts(cfg, tree, fronts))

	info := loopnest.Discover(cfg, tree)
	require.Equal(t, readGolden(t, "scenario_a_straight_line.nat_loops.out"), render.NatLoops(info))
}

func TestScenarioBDominatorsAndLoops(t *testing.T) {
	cfg := parseTestdata(t, "scenario_b_diamond.ir")
	tree := dom.BuildCHK(cfg)
	require.Equal(t, readGolden(t, "scenario_b_diamond.dominators.out"), render.Dominators(cfg, tree))

	fronts := domfront.Compute(cfg, tree)
	defer fronts.Free()
	require.Equal(t, readGolden(t, "scenario_b_diamond.dom_fronts.out"), render.DomFronts(cfg, tree, fronts))

	info := loopnest.Discover(cfg, tree)
	require.Equal(t, readGolden(t, "scenario_b_diamond.nat_loops.out"), render.NatLoops(info))
}

func TestScenarioCDominatorsAndLoops(t *testing.T) {
	cfg := parseTestdata(t, "scenario_c_simple_loop.ir")
	tree := dom.BuildCHK(cfg)
	require.Equal(t, readGolden(t, "scenario_c_simple_loop.dominators.out"), render.Dominators(cfg, tree))

	fronts := domfront.Compute(cfg, tree)
	defer fronts.Free()
	require.Equal(t, readGolden(t, "scenario_c_simple_loop.dom_fronts.out"), render.DomFronts(cfg, tree, fronts))

	info := loopnest.Discover(cfg, tree)
	require.Equal(t, readGolden(t, "scenario_c_simple_loop.nat_loops.out"), render.NatLoops(info))

	require.NoError(t, loopnest.VerifySCCConsistency(cfg, info))
}

func TestScenarioDLiveOut(t *testing.T) {
	cfg := parseTestdata(t, "scenario_d_liveness.ir")
	init := liveness.ComputeInitial(cfg, cfg.MaxRegister)
	defer init.Free()

	text, result := render.LiveOut(cfg, init)
	defer result.Free()
	require.Equal(t, readGolden(t, "scenario_d_liveness.liveout.out"), text)
}

func TestScenarioELVN(t *testing.T) {
	cfg := parseTestdata(t, "scenario_e_lvn.ir")
	lvn.Apply(cfg)
	require.Equal(t, readGolden(t, "scenario_e_lvn.apply_lvn.out"), ir.Print(cfg))
}
