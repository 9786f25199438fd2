package dto

type CreateTweetReq struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

type CreateCommentReq struct {
	Content string `json:"content"`
}
