package dto

type CreateAnnouncementReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
	Image   string `json:"image"`
}
