package spawn

// Plan holds every input the generator needs for one enemy type.
// It is also the shape of a plan file entry and of the HTTP request body.
type Plan struct {
	Name          string  `yaml:"name" json:"name,omitempty"`
	Enemy         string  `yaml:"enemy" json:"enemy"`
	Stages        []int   `yaml:"stages" json:"stages"`
	Waves         [][]int `yaml:"waves" json:"waves"`
	WaveGap       float64 `yaml:"wave_gap" json:"wave_gap"`
	EnemyDelay    float64 `yaml:"enemy_delay" json:"enemy_delay"`
	FirstWaveTime float64 `yaml:"first_wave_time" json:"first_wave_time"`
}

// Event is a single timed spawn instruction.
type Event struct {
	Enemy    string  `json:"enemy"`
	Stage    int     `json:"stage"`
	Wave     int     `json:"wave"`
	Position int     `json:"position"`
	Time     float64 `json:"time"`
}

// StageSummary aggregates the events of one stage.
// LastSpawn is what the game waits on before a stage may end.
type StageSummary struct {
	Stage      int     `json:"stage"`
	Enemies    int     `json:"enemies"`
	FirstSpawn float64 `json:"first_spawn"`
	LastSpawn  float64 `json:"last_spawn"`
}

// ExamplePlan is the kudzu schedule used by the level designers.
func ExamplePlan() Plan {
	return Plan{
		Name:          "kudzu",
		Enemy:         "kudzu",
		Stages:        []int{8, 12, 16, 24},
		Waves:         [][]int{{2, 2, 4}, {3, 3, 3, 3}, {4, 4, 4, 4}, {4, 4, 4, 4, 4, 4}},
		WaveGap:       15,
		EnemyDelay:    2,
		FirstWaveTime: 5,
	}
}
