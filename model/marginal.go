// SPDX-License-Identifier: MIT

package model

// Attributes are the solution values of one equation or variable section.
type Attributes struct {
	Level    float64
	Marginal float64
	Lower    float64
	Upper    float64
	Basic    bool // basis status; meaningful only when the instance HasBasis
}

// MarginalPolicy selects how marginals are displayed.
type MarginalPolicy uint8

const (
	// MarginalRaw shows marginals as stored.
	MarginalRaw MarginalPolicy = iota
	// MarginalBasisAware shows a zero marginal of a non-basic row or column as EPS.
	MarginalBasisAware
)

// MarginalPolicyFor resolves the policy once per model load.
func MarginalPolicyFor(hasBasis bool) MarginalPolicy {
	if hasBasis {
		return MarginalBasisAware
	}

	return MarginalRaw
}

// String returns "raw" or "basis-aware".
func (p MarginalPolicy) String() string {
	if p == MarginalBasisAware {
		return "basis-aware"
	}

	return "raw"
}

// Marginal returns the marginal of a to display under p.
func (p MarginalPolicy) Marginal(a Attributes, sv SpecialValues) float64 {
	if p == MarginalBasisAware && a.Marginal == 0 && !a.Basic {
		return sv.Eps
	}

	return a.Marginal
}
