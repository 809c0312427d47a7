package auth_handlers

import "strings"

type uaRule struct {
	needle string
	label  string
}

// Reihenfolge zählt: iPad vor Macintosh, Android vor Linux.
var (
	platformRules = []uaRule{
		{"ipad", "iPad"},
		{"iphone", "iPhone"},
		{"android", "Android"},
		{"windows", "Windows"},
		{"macintosh", "macOS"},
		{"cros", "ChromeOS"},
		{"linux", "Linux"},
	}
	clientRules = []uaRule{
		{"postmanruntime", "Postman"},
		{"curl/", "curl"},
		{"edg/", "Edge"},
		{"firefox/", "Firefox"},
		{"chrome/", "Chrome"},
		{"safari/", "Safari"},
	}
)

// detectDeviceType leitet aus dem User-Agent einen lesbaren Gerätenamen ab, z. B. "Firefox on Linux".
func detectDeviceType(ua string) string {
	ua = strings.ToLower(ua)

	platform := match(ua, platformRules)
	client := match(ua, clientRules)

	switch {
	case platform != "" && client != "":
		return client + " on " + platform
	case platform != "":
		return platform
	case client != "":
		return client
	default:
		return "Unknown Device"
	}
}

func match(ua string, rules []uaRule) string {
	for _, r := range rules {
		if strings.Contains(ua, r.needle) {
			return r.label
		}
	}
	return ""
}
