package model

// Revenue is one labeled period of the reference revenue series.
type Revenue struct {
	Month   string `db:"month" json:"month"`
	Revenue int64  `db:"revenue" json:"revenue"`
}
