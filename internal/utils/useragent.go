package utils

import (
	"fmt"
	"strings"

	ua "github.com/mssola/user_agent"
)

// DeviceInfo holds parsed information from a User-Agent string
type DeviceInfo struct {
	OS      string `json:"os"`      // Android 12, Windows 10, etc.
	Browser string `json:"browser"` // Chrome 120, Safari 17, etc.
	IsBot   bool   `json:"is_bot"`
	Raw     string `json:"raw"`
}

// ParseUserAgent parses a User-Agent string and extracts device information
func ParseUserAgent(userAgent string) DeviceInfo {
	if userAgent == "" || userAgent == "Unknown" {
		return DeviceInfo{
			OS:      "Unknown",
			Browser: "Unknown",
			Raw:     userAgent,
		}
	}

	parser := ua.New(userAgent)

	name, version := parser.Browser()
	browser := name
	if version != "" {
		// Major version only
		browser = fmt.Sprintf("%s %s", name, strings.SplitN(version, ".", 2)[0])
	}

	os := parser.OS()
	if os == "" {
		os = "Unknown"
	}

	return DeviceInfo{
		OS:      os,
		Browser: browser,
		IsBot:   parser.Bot(),
		Raw:     userAgent,
	}
}
