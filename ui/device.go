package ui

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
)

// IsMobile guesses whether the request comes from a small screen, using the
// mobile client hint when sent and the user agent otherwise
func IsMobile(r *http.Request) bool {
	if hint := r.Header.Get("Sec-CH-UA-Mobile"); hint != "" {
		return hint == "?1"
	}
	return strings.Contains(r.UserAgent(), "Mobi")
}

// OwnDomain is the product's own site. Results from it show the product logo.
const OwnDomain = "onyx.app"

// WebResultIcon renders the icon for a web search result: the product logo
// for own-domain or unparsable URLs, the site favicon otherwise, falling
// back to a globe when the favicon fails to load
func WebResultIcon(rawURL string, size int) string {
	if size <= 0 {
		size = 18
	}
	host := OwnDomain
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	if strings.Contains(host, OwnDomain) {
		return sizedImg(DefaultLogoURL, "Logo", size, "")
	}
	favicon := "https://t3.gstatic.com/faviconV2?client=SOCIAL&type=FAVICON&fallback_opts=TYPE,SIZE,URL&url=https://" +
		url.QueryEscape(host) + "&size=128"
	fallback := `this.outerHTML='<i class=&quot;bi bi-globe&quot;></i>'`
	return sizedImg(favicon, "favicon", size, fallback)
}

func sizedImg(src, alt string, size int, onError string) string {
	extra := ""
	if onError != "" {
		extra = fmt.Sprintf(` onerror="%s"`, onError)
	}
	return fmt.Sprintf(`<img class="web-result-icon" src="%s" alt="%s" width="%d" height="%d" style="height:%dpx;width:%dpx"%s>`,
		template.HTMLEscapeString(src), alt, size, size, size, size, extra)
}
