// Credit to https://github.com/santhosh-tekuri/jsonschema
package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// standardFormats is the registry of the named format checkers the "format"
// keyword recognizes by default (spec.md §4.3 format: "unrecognized format
// names are ignored, not errors"). registerStandardFormats wires these into
// a JsonMetaSchema's FormatValidators.
var standardFormats = map[string]func(any) bool{
	"date-time":             isDateTime,
	"date":                  isDate,
	"time":                  isTime,
	"duration":              isDuration,
	"period":                isPeriod,
	"hostname":              isHostname,
	"email":                 isEmail,
	"ip-address":            isIPV4,
	"ipv4":                  isIPV4,
	"ipv6":                  isIPV6,
	"uri":                   isURI,
	"iri":                   isURI,
	"uri-reference":         isURIReference,
	"uriref":                isURIReference,
	"iri-reference":         isURIReference,
	"uri-template":          isURITemplate,
	"json-pointer":          isJSONPointer,
	"relative-json-pointer": isRelativeJSONPointer,
	"uuid":                  isUUID,
	"regex":                 isRegex,
	"unknown":               func(any) bool { return true },
}

func registerStandardFormats(m *JsonMetaSchema) {
	for name, fn := range standardFormats {
		m.FormatValidators[name] = fn
	}
}

// isDateTime tells whether given string is a valid date representation
// as defined by RFC 3339, section 5.6.
func isDateTime(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if len(s) < 20 { // yyyy-mm-ddThh:mm:ssZ
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return isDate(s[:10]) && isTime(s[11:])
}

// isDate tells whether given string is a valid full-date production as
// defined by RFC 3339, section 5.6.
func isDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isTime tells whether given string is a valid full-time production as
// defined by RFC 3339, section 5.6. Parsed by hand because time.Parse
// doesn't accept leap seconds.
func isTime(v any) bool {
	str, ok := v.(string)
	if !ok {
		return true
	}
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	isInRange := func(s string, min, max int) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}
	var h, m, s int
	var ok2 bool
	if h, ok2 = isInRange(str[0:2], 0, 23); !ok2 {
		return false
	}
	if m, ok2 = isInRange(str[3:5], 0, 59); !ok2 {
		return false
	}
	if s, ok2 = isInRange(str[6:8], 0, 60); !ok2 {
		return false
	}
	str = str[8:]

	if str[0] == '.' {
		str = str[1:]
		var numDigits int
		for str != "" && str[0] >= '0' && str[0] <= '9' {
			numDigits++
			str = str[1:]
		}
		if numDigits == 0 {
			return false
		}
	}

	if len(str) == 0 {
		return false
	}

	if str[0] == 'z' || str[0] == 'Z' {
		if len(str) != 1 {
			return false
		}
	} else {
		if len(str) != 6 || str[3] != ':' {
			return false
		}
		var sign int
		switch str[0] {
		case '+':
			sign = -1
		case '-':
			sign = +1
		default:
			return false
		}
		var zh, zm int
		if zh, ok2 = isInRange(str[1:3], 0, 23); !ok2 {
			return false
		}
		if zm, ok2 = isInRange(str[4:6], 0, 59); !ok2 {
			return false
		}
		hm := (h*60 + m) + sign*(zh*60+zm)
		if hm < 0 {
			hm += 24 * 60
		}
		h, m = hm/60, hm%60
	}

	if s == 60 { // leap second
		if h != 23 || m != 59 {
			return false
		}
	}
	return true
}

// isDuration tells whether given string is a valid duration format from
// the ISO 8601 ABNF given in RFC 3339 Appendix A.
func isDuration(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if len(s) == 0 || s[0] != 'P' {
		return false
	}
	s = s[1:]
	parseUnits := func() (units string, ok bool) {
		for len(s) > 0 && s[0] != 'T' {
			digits := false
			for len(s) != 0 {
				if s[0] < '0' || s[0] > '9' {
					break
				}
				digits = true
				s = s[1:]
			}
			if !digits || len(s) == 0 {
				return units, false
			}
			units += s[:1]
			s = s[1:]
		}
		return units, true
	}
	units, ok := parseUnits()
	if !ok {
		return false
	}
	if units == "W" {
		return len(s) == 0
	}
	if len(units) > 0 {
		if !strings.Contains("YMD", units) { //nolint:gocritic
			return false
		}
		if len(s) == 0 {
			return true
		}
	}
	if len(s) == 0 || s[0] != 'T' {
		return false
	}
	s = s[1:]
	units, ok = parseUnits()
	return ok && len(s) == 0 && len(units) > 0 && strings.Contains("HMS", units) //nolint:gocritic
}

// isPeriod tells whether given string is a valid period format from the
// ISO 8601 ABNF given in RFC 3339 Appendix A.
func isPeriod(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	slash := strings.IndexByte(s, '/')
	if slash == -1 {
		return false
	}
	start, end := s[:slash], s[slash+1:]
	if isDateTime(start) {
		return isDateTime(end) || isDuration(end)
	}
	return isDuration(start) && isDateTime(end)
}

// isHostname tells whether given string is a valid Internet host name, as
// defined by RFC 1034 section 3.1 and RFC 1123 section 2.1.
func isHostname(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if n := len(label); n < 1 || n > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
			if !valid {
				return false
			}
		}
	}
	return true
}

// isEmail tells whether given string is a valid Internet email address as
// defined by RFC 5322 section 3.4.1.
func isEmail(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return isIPV6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return isIPV4(ip)
	}
	if !isHostname(domain) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// isIPV4 tells whether given string is a valid dotted-quad IPv4 address
// per RFC 2673 section 3.2.
func isIPV4(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && g[0] == '0' {
			return false
		}
	}
	return true
}

// isIPV6 tells whether given string is a valid IPv6 address per RFC 2373
// section 2.2.
func isIPV6(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func parseFormatURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	hostname := u.Hostname()
	if strings.IndexByte(hostname, ':') != -1 {
		if strings.IndexByte(u.Host, '[') == -1 || strings.IndexByte(u.Host, ']') == -1 {
			return nil, ErrIPv6AddressNotEnclosed
		}
		if !isIPV6(hostname) {
			return nil, ErrInvalidIPv6Address
		}
	}
	return u, nil
}

// isURI tells whether given string is a valid absolute URI per RFC 3986.
func isURI(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	u, err := parseFormatURL(s)
	return err == nil && u.IsAbs()
}

// isURIReference tells whether given string is a valid URI Reference
// (either a URI or a relative-reference) per RFC 3986.
func isURIReference(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := parseFormatURL(s)
	return err == nil && !strings.Contains(s, `\`)
}

// isURITemplate tells whether given string is a minimally-valid URI
// Template per RFC 6570 (brace balance only).
func isURITemplate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	u, err := parseFormatURL(s)
	if err != nil {
		return false
	}
	for _, item := range strings.Split(u.RawPath, "/") {
		depth := 0
		for _, ch := range item {
			switch ch {
			case '{':
				depth++
				if depth != 1 {
					return false
				}
			case '}':
				depth--
				if depth != 0 {
					return false
				}
			}
		}
		if depth != 0 {
			return false
		}
	}
	return true
}

// isJSONPointer tells whether given string is a valid JSON Pointer (not a
// fragment-form URI pointer).
func isJSONPointer(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if s != "" && !strings.HasPrefix(s, "/") {
		return false
	}
	for _, item := range strings.Split(s, "/") {
		for i := 0; i < len(item); i++ {
			if item[i] == '~' {
				if i == len(item)-1 {
					return false
				}
				switch item[i+1] {
				case '0', '1':
				default:
					return false
				}
			}
		}
	}
	return true
}

// isRelativeJSONPointer tells whether given string is a valid Relative
// JSON Pointer.
func isRelativeJSONPointer(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if s == "" {
		return false
	}
	switch {
	case s[0] == '0':
		s = s[1:]
	case s[0] >= '0' && s[0] <= '9':
		for s != "" && s[0] >= '0' && s[0] <= '9' {
			s = s[1:]
		}
	default:
		return false
	}
	return s == "#" || isJSONPointer(s)
}

// isUUID tells whether given string is a valid UUID per RFC 4122.
func isUUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	parseHex := func(n int) bool {
		for n > 0 {
			if len(s) == 0 {
				return false
			}
			hex := (s[0] >= '0' && s[0] <= '9') || (s[0] >= 'a' && s[0] <= 'f') || (s[0] >= 'A' && s[0] <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
			n--
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, n := range groups {
		if !parseHex(n) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

// isRegex tells whether given string compiles as a Go regular expression
// (spec.md §4.3 pattern/patternProperties use the same engine).
func isRegex(v any) bool {
	pattern, ok := v.(string)
	if !ok {
		return true
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}
