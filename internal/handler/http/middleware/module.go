package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

// RequireModule gates a route tree behind the per-employee module allow-list.
// Admins pass regardless of the allow-list, matching the sidebar behaviour.
func RequireModule(moduleID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrModuleAccessDenied)
				return
			}

			accessible := claimStrings(claims["modules"])
			if !auth.CanAccess(auth.Role(roleStr), accessible, moduleID) {
				response.HandleError(w, auth.ErrModuleAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// claimStrings converts the decoded JSON claim value back to a string slice.
func claimStrings(value interface{}) []string {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
