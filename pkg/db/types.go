package db

type DBConfig struct {
	URI                  string
	DBName               string
	Timeout              int
	MaxPoolSize          uint64
	IdleConnTimeout      int
	CandidateCollections []string
}

type DBConfigYaml struct {
	ConnectionStr        string   `json:"connection_str" yaml:"connection_str"`
	Username             string   `json:"username" yaml:"username"`
	Password             string   `json:"password" yaml:"password"`
	ConnectionPrefix     string   `json:"connection_prefix" yaml:"connection_prefix"`
	Timeout              int      `json:"timeout" yaml:"timeout"`
	IdleConnTimeout      int      `json:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxPoolSize          int      `json:"max_pool_size" yaml:"max_pool_size"`
	DBName               string   `json:"db_name" yaml:"db_name"`
	CandidateCollections []string `json:"candidate_collections" yaml:"candidate_collections"`
}
