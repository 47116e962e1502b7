package validator

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	// Anchored: a matching substring is not enough.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

	// Optional plus, optional leading non-zero digit, then 7-15 digits.
	phoneRegex = regexp.MustCompile(`^[+]?[1-9]?[0-9]{7,15}$`)
)

const (
	msgEmail = "Please enter a valid email address"
	msgPhone = "Please enter a valid phone number"
	msgURL   = "Please enter a valid URL"
)

func Email(opts ...RuleOption) Rule {
	return NewRule(emailRegex.MatchString, msgEmail, opts...)
}

func PhoneNumber(opts ...RuleOption) Rule {
	return NewRule(phoneRegex.MatchString, msgPhone, opts...)
}

// RegionalPhoneNumber accepts numbers that are valid dialing numbers for the
// given ISO 3166 region, e.g. "US" or "DE". Numbers written with a leading
// "+" may use any country code that belongs to the region. An empty region
// accepts any valid international number.
func RegionalPhoneNumber(region string, opts ...RuleOption) Rule {
	region = strings.ToUpper(strings.TrimSpace(region))
	return NewRule(func(text string) bool {
		num, err := phonenumbers.Parse(text, region)
		if err != nil {
			return false
		}
		if region == "" {
			return phonenumbers.IsValidNumber(num)
		}
		return phonenumbers.IsValidNumberForRegion(num, region)
	}, msgPhone, opts...)
}

// URL accepts syntactically well-formed absolute URLs: a scheme and a host
// are both required. Whether anything on the device can open the URL is not
// considered.
func URL(opts ...RuleOption) Rule {
	return NewRule(func(text string) bool {
		u, err := url.Parse(text)
		if err != nil {
			return false
		}
		return u.Scheme != "" && u.Hostname() != ""
	}, msgURL, opts...)
}
