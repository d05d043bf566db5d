package enums

import "fmt"

// Partner identifies who a ledger entry belongs to. The two individual
// partner names are deployment configuration; "Both" is fixed and means the
// entry is shared between them.
type Partner string

// PartnerBoth marks a transaction shared evenly between the two partners.
const PartnerBoth Partner = "Both"

// PartnerSet holds the deployment's two partner names plus the shared value.
type PartnerSet struct {
	A Partner
	B Partner
}

// NewPartnerSet builds the valid partner enumeration for a deployment.
func NewPartnerSet(a, b string) PartnerSet {
	return PartnerSet{A: Partner(a), B: Partner(b)}
}

// IsValid reports whether the value is one of the two partners or Both.
func (s PartnerSet) IsValid(p Partner) bool {
	return p == s.A || p == s.B || p == PartnerBoth
}

// Parse converts raw input into a Partner within this deployment's set.
func (s PartnerSet) Parse(value string) (Partner, error) {
	p := Partner(value)
	if !s.IsValid(p) {
		return "", fmt.Errorf("invalid partner %q", value)
	}
	return p, nil
}

// Members returns the two individual partners, excluding Both.
func (s PartnerSet) Members() []Partner {
	return []Partner{s.A, s.B}
}
