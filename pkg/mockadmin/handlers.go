package mockadmin

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Router builds a gorilla/mux router serving the mock admin API on the
// given state. The token endpoint is open; everything under /admin requires
// a bearer token issued by the state.
func Router(state *MockState) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/realms/{realm}/protocol/openid-connect/token", handleToken(state)).Methods("POST")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(requireToken(state))
	admin.HandleFunc("/serverinfo", handleServerInfo(state)).Methods("GET")
	admin.HandleFunc("/realms/{realm}", handleRealm(state)).Methods("GET")
	admin.HandleFunc("/realms/{realm}/effective-message-bundles", handleEffectiveBundles(state)).Methods("GET")

	return r
}

func requireToken(state *MockState) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimPrefix(auth, "Bearer ")

			if token == "" || token == auth || !state.ValidToken(token) {
				writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
					"error": "HTTP 401 Unauthorized",
				})

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func handleToken(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "invalid_request",
			})

			return
		}

		if r.PostFormValue("grant_type") != "password" {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":             "unsupported_grant_type",
				"error_description": "Unsupported grant_type",
			})

			return
		}

		token, err := state.IssueToken(r.PostFormValue("username"), r.PostFormValue("password"))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"error":             "invalid_grant",
				"error_description": "Invalid user credentials",
			})

			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   300,
		})
	}
}

func handleServerInfo(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.mu.RLock()
		themes := state.Themes
		state.mu.RUnlock()

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"themes": themes,
		})
	}
}

func handleRealm(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		realm := state.GetRealm(mux.Vars(r)["realm"])
		if realm == nil {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": "Realm not found.",
			})

			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"realm":                       realm.Name,
			"internationalizationEnabled": realm.InternationalizationEnabled,
			"supportedLocales":            realm.SupportedLocales,
			"defaultLocale":               realm.DefaultLocale,
		})
	}
}

func handleEffectiveBundles(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		entries, err := state.EffectiveBundles(
			mux.Vars(r)["realm"],
			q.Get("theme"),
			q.Get("themeType"),
			q.Get("locale"),
			q.Get("source") == "true",
		)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": "Realm not found.",
			})

			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("mockadmin: failed to encode response: %v", err)
	}
}
