package adminusers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/infrastructure/cache"
	"turnify/infrastructure/sqlite"
)

// UsersPageQueryHandler renders the admin users list page.
func UsersPageQueryHandler(db *sqlite.DB, _ *cache.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		users, err := LoadUsers(r.Context(), db)
		if err != nil {
			slog.Error("admin users: failed to load data", slog.Any("err", err))
			http.Error(w, "failed to load users", http.StatusInternalServerError)
			return
		}

		data := PageData{
			Nav:          nav.BuildTopNavData(session),
			Users:        users,
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := UsersListPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render users page", http.StatusInternalServerError)
			return
		}
	}
}

func CreateUserCommandHandler(db *sqlite.DB, userCache *cache.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessioncontext.GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/portal/admin/users?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))
		role := strings.TrimSpace(r.FormValue("role"))
		companyName := strings.TrimSpace(r.FormValue("company_name"))

		if err := CreateUser(r.Context(), db, username, password, role, companyName); err != nil {
			// Validation messages are safe to surface verbatim.
			http.Redirect(w, r, "/portal/admin/users?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		userCache.Invalidate(username)

		http.Redirect(w, r, "/portal/admin/users?status="+url.QueryEscape("user created"), http.StatusSeeOther)
	}
}
