package notify

type BaseResponse struct {
	Code    int      `json:"code"`
	Msg     string   `json:"msg"`
	Details []string `json:"details"`
}

type PushNotifyRequest struct {
	Key     string `json:"key"`
	Event   string `json:"event"`
	OwnerID int64  `json:"owner_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Links   string `json:"links"`
}
