package adminusers

import "turnify/frontend/shared/nav"

type UserView struct {
	ID          int64
	Username    string
	Role        string
	CompanyName string
}

type PageData struct {
	Nav          nav.TopNavData
	Users        []UserView
	Status       string
	ErrorMessage string
}
