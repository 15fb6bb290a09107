package responses

type Health struct {
	OK  bool   `json:"ok"`
	App string `json:"app"`
	Now int64  `json:"now"`
}
