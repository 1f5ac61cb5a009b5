package model

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	UserID int64 `json:"user_id,string" form:"user_id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}
