package dto

type CreateRatingReq struct {
	Stars int    `json:"stars"`
	Text  string `json:"text"`
}
