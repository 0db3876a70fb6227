package http

import "calendarhub/pkg/session"

type sessionResp struct {
	User *session.User `json:"user"`
}

type logoutResp struct {
	Success bool `json:"success"`
}
