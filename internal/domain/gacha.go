package domain

// GachaPool is the closed set of pull categories
type GachaPool string

const (
	PoolPlant  GachaPool = "plant"
	PoolAnimal GachaPool = "animal"
)

// PullType selects how many independent draws a pull resolves
type PullType string

const (
	PullSingle PullType = "single"
	PullMulti  PullType = "multi"
)

// Draw counts per pull type
const (
	SinglePullCount = 1
	MultiPullCount  = 10
)
