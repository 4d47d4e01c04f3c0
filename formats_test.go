package jsonschema

import "testing"

func TestIsDateTime(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"2020-01-02T15:04:05Z", true},
		{"2020-01-02T15:04:05.123+07:00", true},
		{"2020-01-02", false},
		{"not-a-date", false},
		{"1990-12-31T23:59:60Z", true}, // leap second
	}
	for _, c := range cases {
		if got := isDateTime(c.value); got != c.want {
			t.Errorf("isDateTime(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsDate(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"2020-01-02", true},
		{"2020-13-02", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		if got := isDate(c.value); got != c.want {
			t.Errorf("isDate(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsEmail(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"a@example.com", true},
		{"a.b+c@example.co.uk", true},
		{"not-an-email", false},
		{"@example.com", false},
	}
	for _, c := range cases {
		if got := isEmail(c.value); got != c.want {
			t.Errorf("isEmail(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsIPV4(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"192.168.0.1", true},
		{"255.255.255.255", true},
		{"::1", false},
		{"not-an-ip", false},
	}
	for _, c := range cases {
		if got := isIPV4(c.value); got != c.want {
			t.Errorf("isIPV4(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsIPV6(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"::1", true},
		{"2001:db8::1", true},
		{"192.168.0.1", false},
		{"not-an-ip", false},
	}
	for _, c := range cases {
		if got := isIPV6(c.value); got != c.want {
			t.Errorf("isIPV6(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsHostname(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"example.com", true},
		{"sub.example.com", true},
		{"-bad.example.com", false},
	}
	for _, c := range cases {
		if got := isHostname(c.value); got != c.want {
			t.Errorf("isHostname(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsUUID(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{"not-a-uuid", false},
	}
	for _, c := range cases {
		if got := isUUID(c.value); got != c.want {
			t.Errorf("isUUID(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsRegex(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"^a+$", true},
		{"(unterminated", false},
	}
	for _, c := range cases {
		if got := isRegex(c.value); got != c.want {
			t.Errorf("isRegex(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsJSONPointer(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"/a/b", true},
		{"a/b", false},
	}
	for _, c := range cases {
		if got := isJSONPointer(c.value); got != c.want {
			t.Errorf("isJSONPointer(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

// Non-string instances are always valid for any format (spec.md §4.3:
// "format" only applies to string-typed instances).
func TestFormatCheckersIgnoreNonStrings(t *testing.T) {
	checks := []func(any) bool{
		isDateTime, isDate, isTime, isDuration, isPeriod, isHostname,
		isEmail, isIPV4, isIPV6, isURI, isURIReference, isURITemplate,
		isJSONPointer, isRelativeJSONPointer, isUUID, isRegex,
	}
	for _, check := range checks {
		if !check(42) {
			t.Errorf("format checker rejected non-string instance 42, want pass-through true")
		}
	}
}
