package domain

type Stage struct {
	ID       int64
	Name     string
	Sequence int
	Fold     bool
}
