package spawn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const planYAML = `
plans:
  - name: kudzu-day1
    enemy: kudzu
    stages: [8]
    waves: [[2, 2, 4]]
    wave_gap: 15
    enemy_delay: 2
    first_wave_time: 5
  - enemy: knotwood
    stages: [3]
    waves: [[3]]
    wave_gap: 10
    enemy_delay: 1.5
    first_wave_time: 0
`

func TestParsePlans(t *testing.T) {
	pf, err := ParsePlans([]byte(planYAML))
	require.NoError(t, err)
	require.Len(t, pf.Plans, 2)

	p, err := pf.Find("kudzu-day1")
	require.NoError(t, err)
	require.Equal(t, "kudzu", p.Enemy)
	require.Equal(t, [][]int{{2, 2, 4}}, p.Waves)

	p, err = pf.Find("knotwood")
	require.NoError(t, err)
	require.InDelta(t, 1.5, p.EnemyDelay, 1e-9)

	events, err := Events(p)
	require.NoError(t, err)
	require.Equal(t, "knotwood0-0.00, knotwood0-1.50, knotwood0-3.00", Format(events))
}

func TestPlanFile_Find_missing(t *testing.T) {
	pf, err := ParsePlans([]byte(planYAML))
	require.NoError(t, err)

	_, err = pf.Find("bear")
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestParsePlans_invalid(t *testing.T) {
	_, err := ParsePlans([]byte("plans: {not: [a list"))
	require.Error(t, err)
}

func TestLoadPlans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0o600))

	pf, err := LoadPlans(path)
	require.NoError(t, err)
	require.Len(t, pf.Plans, 2)

	_, err = LoadPlans(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
