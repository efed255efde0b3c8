package site

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/soulcreations/site/content"
)

func (a *App) handleShell(c echo.Context) error {
	l := requestLocale(c)
	page, err := a.Cache.Get(l)
	if err != nil {
		return err
	}
	c.Response().Header().Add(echo.HeaderVary, "Accept-Language")
	return c.HTMLBlob(http.StatusOK, page)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, robotsTxt(a.Config.URL))
}

func (a *App) handleSitemap(c echo.Context) error {
	body, err := sitemapXML(a.Config.URL)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requestLocale picks the locale the landing page highlights.
func requestLocale(c echo.Context) content.Locale {
	return content.MatchAcceptLanguage(c.Request().Header.Get("Accept-Language"))
}

// httpErrorHandler answers unknown paths with the shell document and a 404.
// The landing page inside it is the same the client shows for any route it
// cannot resolve.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		c.Response().Header().Add(echo.HeaderVary, "Accept-Language")
		if rerr := RenderStatus(c, http.StatusNotFound, a.Views.Shell(a.Views.Landing(requestLocale(c)))); rerr != nil {
			a.log.Error("render not found", zap.Error(rerr))
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Error("server error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// RenderStatus writes a templ component as an HTML response with status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
