package models

// ResponseMessage is the generic success-flag payload used for both
// business failures and not-found results. It is deliberately served
// with HTTP 200 in most places, matching the API this backend
// replaces.
type ResponseMessage struct {
	Success int    `json:"success"`
	Message string `json:"message"`
}

// PostResponse acknowledges a created or updated post.
type PostResponse struct {
	Success int    `json:"success"`
	ID      string `json:"id"`
}

// LoginResponse carries the session token issued on login.
type LoginResponse struct {
	Success int    `json:"success"`
	Token   string `json:"token"`
}

// UploadResponse is the wangEditor-compatible upload payload; url and
// href are always identical.
type UploadResponse struct {
	Errno int       `json:"errno"`
	Data  ImageData `json:"data"`
}

type ImageData struct {
	URL  string `json:"url"`
	Href string `json:"href"`
}
