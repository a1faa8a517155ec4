package config

type Local struct {
	LogLevel       int    `yaml:"loglevel" envconfig:"SPAWNSCHEMA_LOGLEVEL"`
	StatsDir       string `yaml:"stats_dir" envconfig:"SPAWNSCHEMA_STATS_DIR"`
	SpawnSetDir    string `yaml:"spawn_set_dir" envconfig:"SPAWNSCHEMA_SPAWN_SET_DIR"`
	ItemMapping    string `yaml:"item_mapping" envconfig:"SPAWNSCHEMA_ITEM_MAPPING"`
	Output         string `yaml:"output" envconfig:"SPAWNSCHEMA_OUTPUT"`
	RelationsStore string `yaml:"relations_store" envconfig:"SPAWNSCHEMA_RELATIONS_STORE"`
	// Workers > 1 converts species concurrently.
	Workers int `yaml:"workers" envconfig:"SPAWNSCHEMA_WORKERS"`
}

func (x *Local) Init() {
	x.LogLevel = 0
	x.StatsDir = "."
	x.SpawnSetDir = "."
	x.ItemMapping = "item_mapping.json"
	x.Output = "spawn_probabilities.json"
	x.RelationsStore = "spawn_relations.db"
	x.Workers = 1
}
