package view

import (
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	formKeyPrefix    = "form_"
)

// FlashData holds the one-shot messages shown on the next rendered page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// flashSession returns the flash session. An undecodable cookie yields a
// fresh session that replaces it on the next save.
func flashSession(c echo.Context) (*sessions.Session, bool) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		if sess == nil {
			slog.Error("Failed to get flash session", "error", err)
			return nil, false
		}
		slog.Debug("Discarding undecodable flash cookie", "error", err)
	}
	return sess, true
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, ok := flashSession(c)
	if !ok {
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save flash session", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFormValue remembers a submitted form field for the next render of the
// form, e.g. the email of a failed login.
func SetFormValue(c echo.Context, field, value string) {
	setFlash(c, formKeyPrefix+field, value)
}

// GetFlashData retrieves and clears the success and error flashes.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, ok := flashSession(c)
	if !ok {
		return data
	}

	// Flashes() clears what it returns; the session must be saved to persist that.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)
	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}
	data.Success = toStrings(successFlashes)
	data.Error = toStrings(errorFlashes)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

// PopFormValue returns and clears a value stored with SetFormValue.
func PopFormValue(c echo.Context, field string) string {
	sess, ok := flashSession(c)
	if !ok {
		return ""
	}
	flashes := sess.Flashes(formKeyPrefix + field)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	val, _ := flashes[len(flashes)-1].(string)
	return val
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
