package binary

import "testing"

func TestUbuntuQualifier(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    string
	}{
		{"12.04", "12.04", "ubuntu1204"},
		{"14.04", "14.04", "ubuntu1404"},
		{"14.10 clang build", "14.10", "ubuntu1410-clang"},
		{"14.x maps to 1404", "14.99", "ubuntu1404"},
		{"16.04", "16.04", "ubuntu1604"},
		{"16.x maps to 1604", "16.10", "ubuntu1604"},
		{"unknown release falls back to 1404", "18.04", "ubuntu1404"},
		{"empty release falls back to 1404", "", "ubuntu1404"},
		{"garbage falls back to 1404", "trusty", "ubuntu1404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ubuntuQualifier(tt.release); got != tt.want {
				t.Errorf("ubuntuQualifier(%q) = %q, want %q", tt.release, got, tt.want)
			}
		})
	}
}

func TestSuseQualifier(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    string
	}{
		{"11", "11", "suse11"},
		{"11 point release", "11.4", "suse11"},
		{"12", "12", "suse12"},
		{"12 point release", "12.1", "suse12"},
		{"13 unsupported", "13.2", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suseQualifier(tt.release); got != tt.want {
				t.Errorf("suseQualifier(%q) = %q, want %q", tt.release, got, tt.want)
			}
		})
	}
}

func TestRhelQualifier(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    string
	}{
		{"7", "7.0", "rhel70"},
		{"7.4", "7.4", "rhel70"},
		{"6.8", "6.8", "rhel62"},
		{"5.11", "5.11", "rhel55"},
		{"8 unsupported", "8.0", ""},
		{"missing release", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rhelQualifier(tt.release); got != tt.want {
				t.Errorf("rhelQualifier(%q) = %q, want %q", tt.release, got, tt.want)
			}
		})
	}
}

func TestFedoraQualifier(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    string
	}{
		{"above 18", "25", "rhel70"},
		{"19", "19", "rhel70"},
		{"18", "18", "rhel62"},
		{"12", "12", "rhel62"},
		{"11", "11", "rhel55"},
		{"6", "6", "rhel55"},
		{"5 below every range", "5", ""},
		{"non-numeric falls outside every range", "rawhide", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fedoraQualifier(tt.release); got != tt.want {
				t.Errorf("fedoraQualifier(%q) = %q, want %q", tt.release, got, tt.want)
			}
		})
	}
}

func TestDebianQualifier(t *testing.T) {
	tests := []struct {
		name    string
		release string
		want    string
	}{
		{"8.1", "8.1", "debian81"},
		{"9.0", "9.0", "debian81"},
		{"7.1", "7.1", "debian71"},
		{"8.0 stays on 71", "8.0", "debian71"},
		{"7.0 bare", "7.0", "debian"},
		{"non-numeric bare", "jessie", "debian"},
		{"empty bare", "", "debian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := debianQualifier(tt.release); got != tt.want {
				t.Errorf("debianQualifier(%q) = %q, want %q", tt.release, got, tt.want)
			}
		})
	}
}

func TestDistroRulePrecedence(t *testing.T) {
	tests := []struct {
		name string
		dist string
		rule string
	}{
		{"ubuntu", "Ubuntu", "ubuntu"},
		{"elementary", "elementary OS", "elementary OS"},
		{"opensuse", "openSUSE project", "suse"},
		{"centos", "CentOS Linux", "rhel"},
		{"rhel", "RHEL", "rhel"},
		{"scientific", "Scientific Linux", "rhel"},
		{"fedora", "Fedora", "fedora"},
		{"debian", "debian", "debian"},
		{"mint", "LinuxMint", "mint"},
		{"case insensitive", "UBUNTU", "ubuntu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := ""
			for _, rule := range distroRules {
				if rule.match(tt.dist) {
					matched = rule.name
					break
				}
			}
			if matched != tt.rule {
				t.Errorf("dist %q matched rule %q, want %q", tt.dist, matched, tt.rule)
			}
		})
	}
}

func TestDistroRuleNoMatch(t *testing.T) {
	for _, dist := range []string{"Arch Linux", "Alpine Linux", "Gentoo", ""} {
		for _, rule := range distroRules {
			if rule.match(dist) {
				t.Errorf("dist %q unexpectedly matched rule %q", dist, rule.name)
			}
		}
	}
}

func TestFixedDistroQualifiers(t *testing.T) {
	// elementary OS and Mint expose no usable release; both pin the
	// Ubuntu 14.04 build regardless of input.
	for _, rule := range distroRules {
		if rule.name != "elementary OS" && rule.name != "mint" {
			continue
		}
		for _, release := range []string{"", "0.4", "18.3"} {
			if got := rule.qualifier(release); got != "ubuntu1404" {
				t.Errorf("%s qualifier(%q) = %q, want %q", rule.name, release, got, "ubuntu1404")
			}
		}
	}
}
