package login

import (
	"net/http"

	"turnify/infrastructure/cache"
	sessioncookie "turnify/infrastructure/session"
	"turnify/infrastructure/sqlite"
	"turnify/returns/flow"
)

// LogoutHandler removes session state, drops the flow session and
// clears the cookie.
func LogoutHandler(db *sqlite.DB, sessionCache *cache.UserSessionCache, flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err == nil && cookie.Value != "" {
			sessionCache.DeleteSessionBySessionToken(cookie.Value)
			_ = DeleteSessionByToken(r.Context(), db, cookie.Value)
			flows.Drop(cookie.Value)
		}
		http.SetCookie(w, sessioncookie.SessionCookie("", -1))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
