package binary

import (
	"strconv"
	"strings"
)

// distroRule classifies a Linux distribution and derives the
// OS-version qualifier appended to the archive name. Rules are
// evaluated in order; the first match wins.
type distroRule struct {
	name      string
	match     func(dist string) bool
	qualifier func(release string) string
}

// distroRules holds the classification table in precedence order.
// Matching is a case-insensitive substring test against the
// distribution name reported by the host.
var distroRules = []distroRule{
	{"ubuntu", matchSubstring("ubuntu"), ubuntuQualifier},
	{"elementary OS", matchSubstring("elementary OS"), fixedQualifier("ubuntu1404")},
	{"suse", matchSubstring("suse"), suseQualifier},
	{"rhel", matchAny("rhel", "centos", "scientific"), rhelQualifier},
	{"fedora", matchSubstring("fedora"), fedoraQualifier},
	{"debian", matchSubstring("debian"), debianQualifier},
	// Mint reports no usable release; treat it as Ubuntu 14.04.
	{"mint", matchSubstring("mint"), fixedQualifier("ubuntu1404")},
}

func matchSubstring(substr string) func(string) bool {
	substr = strings.ToLower(substr)
	return func(dist string) bool {
		return strings.Contains(strings.ToLower(dist), substr)
	}
}

func matchAny(substrs ...string) func(string) bool {
	matchers := make([]func(string) bool, len(substrs))
	for i, s := range substrs {
		matchers[i] = matchSubstring(s)
	}
	return func(dist string) bool {
		for _, m := range matchers {
			if m(dist) {
				return true
			}
		}
		return false
	}
}

// fixedQualifier returns a qualifier function that ignores the release.
// Used for distributions whose release carries no useful signal.
func fixedQualifier(q string) func(string) string {
	return func(string) string { return q }
}

// ubuntuQualifier maps an Ubuntu release to its build qualifier.
// Releases without a dedicated build fall back to the 14.04 binaries.
func ubuntuQualifier(release string) string {
	switch release {
	case "12.04":
		return "ubuntu1204"
	case "14.04":
		return "ubuntu1404"
	case "14.10":
		return "ubuntu1410-clang"
	}

	major, _, _ := strings.Cut(release, ".")
	switch major {
	case "14":
		return "ubuntu1404"
	case "16":
		return "ubuntu1604"
	}

	return "ubuntu1404"
}

func suseQualifier(release string) string {
	switch {
	case strings.HasPrefix(release, "11"):
		return "suse11"
	case strings.HasPrefix(release, "12"):
		return "suse12"
	default:
		return ""
	}
}

func rhelQualifier(release string) string {
	switch {
	case strings.HasPrefix(release, "7"):
		return "rhel70"
	case strings.HasPrefix(release, "6"):
		return "rhel62"
	case strings.HasPrefix(release, "5"):
		return "rhel55"
	default:
		return ""
	}
}

// fedoraQualifier folds a Fedora release into the RHEL build series.
// A release that does not parse as an integer falls outside every
// range and yields no qualifier.
func fedoraQualifier(release string) string {
	n, err := strconv.Atoi(release)
	if err != nil {
		return ""
	}
	switch {
	case n > 18:
		return "rhel70"
	case n >= 12:
		return "rhel62"
	case n >= 6:
		return "rhel55"
	default:
		return ""
	}
}

// debianQualifier maps a Debian release to its build qualifier. A
// release that does not parse as a number lands on the bare "debian"
// build, same as anything older than 7.1.
func debianQualifier(release string) string {
	v, err := strconv.ParseFloat(release, 64)
	switch {
	case err == nil && v >= 8.1:
		return "debian81"
	case err == nil && v >= 7.1:
		return "debian71"
	default:
		return "debian"
	}
}
