package http

import (
	"net/http"

	"turnify/frontend/admin"
	adminusers "turnify/frontend/adminUsers"
	"turnify/frontend/approvalcheck"
	"turnify/frontend/landing"
	"turnify/frontend/login"
	"turnify/frontend/openra"
	"turnify/frontend/returndetails"
	"turnify/frontend/returnslist"
	"turnify/frontend/selection"
	"turnify/infrastructure/rbac"

	"github.com/go-chi/chi/v5"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.SessionCache, s.UserCache))
	s.router.Post("/logout", login.LogoutHandler(s.DB, s.SessionCache, s.Flows))
}

// RegisterPortalRoutes registers the partner-facing return flow.
func (s *Server) RegisterPortalRoutes(r chi.Router) chi.Router {
	s.Rbac.Add(rbac.RolePartner, "PORTAL_LANDING_VIEW", http.MethodGet, "/portal")
	r.Get("/", landing.LandingPageQueryHandler(s.Flows, s.Registry))

	s.Rbac.Add(rbac.RolePartner, "ORDERS_LIST_VIEW", http.MethodGet, "/portal/orders")
	r.Get("/orders", selection.ItemSelectionPageQueryHandler(s.DB, s.Flows))
	s.Rbac.Add(rbac.RolePartner, "ORDERS_SELECT_ITEM", http.MethodPost, "/portal/orders/select")
	r.Post("/orders/select", selection.SelectItemCommandHandler(s.DB, s.Flows))
	s.Rbac.Add(rbac.RolePartner, "ORDERS_DESELECT_ITEM", http.MethodPost, "/portal/orders/deselect")
	r.Post("/orders/deselect", selection.DeselectItemCommandHandler(s.Flows))
	s.Rbac.Add(rbac.RolePartner, "ORDERS_SELECT_ALL", http.MethodPost, "/portal/orders/select-all")
	r.Post("/orders/select-all", selection.SelectAllCommandHandler(s.DB, s.Flows))
	s.Rbac.Add(rbac.RolePartner, "ORDERS_CLEAR_ALL", http.MethodPost, "/portal/orders/clear-all")
	r.Post("/orders/clear-all", selection.ClearOrderCommandHandler(s.Flows))
	s.Rbac.Add(rbac.RolePartner, "ORDERS_UPDATE_LINE", http.MethodPost, "/portal/orders/update")
	r.Post("/orders/update", selection.UpdateLineCommandHandler(s.Flows))
	s.Rbac.Add(rbac.RolePartner, "ORDERS_CONTINUE", http.MethodPost, "/portal/orders/continue")
	r.Post("/orders/continue", selection.ContinueCommandHandler(s.Flows))

	s.Rbac.Add(rbac.RolePartner, "OPEN_RA_VIEW", http.MethodGet, "/portal/open-ra")
	r.Get("/open-ra", openra.OpenRAPageQueryHandler(s.Flows))
	s.Rbac.Add(rbac.RolePartner, "OPEN_RA_SUBMIT", http.MethodPost, "/portal/open-ra")
	r.Post("/open-ra", openra.SubmitOpenRACommandHandler(s.Flows))

	s.Rbac.Add(rbac.RolePartner, "RETURN_DETAILS_VIEW", http.MethodGet, "/portal/return/details")
	r.Get("/return/details", returndetails.ReturnDetailsPageQueryHandler(s.Flows))
	s.Rbac.Add(rbac.RolePartner, "RETURN_SUBMIT", http.MethodPost, "/portal/return/submit")
	r.Post("/return/submit", returndetails.SubmitReturnCommandHandler(s.Flows, s.Engine, s.Registry, s.DB, s.Audit, s.ApprovalDelay))
	s.Rbac.Add(rbac.RolePartner, "RETURN_CHECKING_VIEW", http.MethodGet, "/portal/return/checking")
	r.Get("/return/checking", approvalcheck.CheckingPageQueryHandler(s.Flows))
	s.Rbac.Add(rbac.RolePartner, "RETURN_RESULT_VIEW", http.MethodGet, "/portal/return/result")
	r.Get("/return/result", approvalcheck.ResultPageQueryHandler(s.Flows))

	s.Rbac.Add(rbac.RolePartner, "RETURNS_LIST_VIEW", http.MethodGet, "/portal/returns")
	s.Rbac.Add(rbac.RoleCSR, "RETURNS_LIST_VIEW", http.MethodGet, "/portal/returns")
	r.Get("/returns", returnslist.ReturnsPageQueryHandler(s.Flows, s.Registry))
	s.Rbac.Add(rbac.RolePartner, "RETURN_DETAIL_VIEW", http.MethodGet, "/portal/returns/*")
	s.Rbac.Add(rbac.RoleCSR, "RETURN_DETAIL_VIEW", http.MethodGet, "/portal/returns/*")
	r.Get("/returns/{id}", returnslist.ReturnDetailPageQueryHandler(s.Flows, s.Registry))
	s.Rbac.Add(rbac.RolePartner, "RETURN_LABEL_VIEW", http.MethodGet, "/portal/returns/*/label")
	s.Rbac.Add(rbac.RoleCSR, "RETURN_LABEL_VIEW", http.MethodGet, "/portal/returns/*/label")
	r.Get("/returns/{id}/label", returnslist.ReturnLabelQueryHandler(s.Registry))

	return r
}

// RegisterAdminRoutes registers CSR and admin-only routes.
func (s *Server) RegisterAdminRoutes(r chi.Router) chi.Router {
	s.Rbac.Add(rbac.RoleCSR, "ADMIN_DASHBOARD_VIEW", http.MethodGet, "/portal/admin")
	r.Get("/admin", admin.AdminPageQueryHandler(s.Flows, s.Registry))

	s.Rbac.Add(rbac.RoleCSR, "ADMIN_RETURN_APPROVE", http.MethodPost, "/portal/admin/returns/*/approve")
	r.Post("/admin/returns/{id}/approve", admin.ApproveReturnCommandHandler(s.Registry, s.DB, s.Audit))
	s.Rbac.Add(rbac.RoleCSR, "ADMIN_RETURN_REJECT", http.MethodPost, "/portal/admin/returns/*/reject")
	r.Post("/admin/returns/{id}/reject", admin.RejectReturnCommandHandler(s.Registry, s.DB, s.Audit))
	s.Rbac.Add(rbac.RoleCSR, "ADMIN_RETURN_SHIP", http.MethodPost, "/portal/admin/returns/*/ship")
	r.Post("/admin/returns/{id}/ship", admin.ShipReturnCommandHandler(s.Registry, s.DB, s.Audit))

	s.Rbac.Add(rbac.RoleCSR, "ADMIN_RETURNS_EXPORT", http.MethodGet, "/portal/admin/returns/export.csv")
	r.Get("/admin/returns/export.csv", admin.ExportReturnsQueryHandler(s.Registry))

	s.Rbac.Add(rbac.RoleAdmin, "ADMIN_USERS_LIST_VIEW", http.MethodGet, "/portal/admin/users")
	r.Get("/admin/users", adminusers.UsersPageQueryHandler(s.DB, s.UserCache))
	s.Rbac.Add(rbac.RoleAdmin, "ADMIN_USERS_CREATE", http.MethodPost, "/portal/admin/users")
	r.Post("/admin/users", adminusers.CreateUserCommandHandler(s.DB, s.UserCache))
	return r
}
