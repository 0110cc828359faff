package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionCookieName est le nom du cookie signé porté par chaque visiteur.
const SessionCookieName = "viralyn_session"

const sessionIDKey = "sid"

var sessionStore *sessions.CookieStore

// InitSessionStore configure le store de cookies signés. À appeler une fois
// au démarrage, après le chargement du .env.
func InitSessionStore() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	sessionStore = sessions.NewCookieStore([]byte(sessionSecret))
	sessionStore.MaxAge(86400 * 30)
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

// Session attribue un identifiant anonyme à chaque visiteur et le place
// dans le contexte gin sous "session_id". Un cookie altéré ou expiré donne
// simplement une nouvelle session, jamais un refus.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := sessionStore.Get(c.Request, SessionCookieName)

		sid, ok := session.Values[sessionIDKey].(string)
		if !ok || sid == "" {
			sid = uuid.New().String()
			session.Values[sessionIDKey] = sid
			if err := session.Save(c.Request, c.Writer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création de session"})
				c.Abort()
				return
			}
		}

		c.Set("session_id", sid)
		c.Next()
	}
}
