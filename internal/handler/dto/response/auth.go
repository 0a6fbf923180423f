package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}
