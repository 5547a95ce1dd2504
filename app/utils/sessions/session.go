package sessions

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "catalog-session"

	flashStatusKey  = "flash_status"
	flashMessageKey = "flash_message"
)

// Flash is a one-shot status message carried across a redirect.
type Flash struct {
	Status  string
	Message string
}

type FlashStore interface {
	SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error
	PopFlash(w http.ResponseWriter, r *http.Request) (Flash, bool)
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(insecure bool, keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   !insecure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A cookie signed with rotated keys decodes as a fresh session.
		slog.WarnContext(r.Context(), "Error getting session", "error", err)
	}
	return session
}

func (c *CookieSessionStore) SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error {
	session := c.getSession(r)
	session.AddFlash(flash.Status, flashStatusKey)
	session.AddFlash(flash.Message, flashMessageKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) PopFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	session := c.getSession(r)

	messages := session.Flashes(flashMessageKey)
	statuses := session.Flashes(flashStatusKey)
	if len(messages) == 0 {
		return Flash{}, false
	}

	if err := session.Save(r, w); err != nil {
		slog.WarnContext(r.Context(), "Error saving session", "error", err)
	}

	var flash Flash
	flash.Message, _ = messages[len(messages)-1].(string)
	if len(statuses) > 0 {
		flash.Status, _ = statuses[len(statuses)-1].(string)
	}
	return flash, flash.Message != ""
}
