// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadcase

// NEN-EN 1990 6.10a/b partial and combination factors (spec §4.6). These
// are a read-only reference table, constructed once, the same shape as
// the teacher pack's own load-combination table
// (alexiusacademia-gorcb/internal/nscp/loadcombinations.go), adapted from
// NSCP strength-design factors to the Eurocode set this spec requires.
const (
	GammaGUnfavourable = 1.35
	GammaGFavourable   = 1.2
	GammaQ             = 1.5
)

// OccupancyCategory selects the ψ0/ψ1/ψ2 combination factors of NEN-EN
// 1990 Table A1.1 for the leading variable action in a combination.
type OccupancyCategory int

const (
	CategoryA OccupancyCategory = iota // domestic, residential
	CategoryB                          // office
	CategoryC                          // congregation areas
	CategoryD                          // shopping
	CategoryWind
	CategorySnow
)

// psiFactors holds {ψ0, ψ1, ψ2} per occupancy category.
var psiFactors = map[OccupancyCategory][3]float64{
	CategoryA:    {0.7, 0.5, 0.3},
	CategoryB:    {0.7, 0.5, 0.3},
	CategoryC:    {0.7, 0.7, 0.6},
	CategoryD:    {0.7, 0.7, 0.6},
	CategoryWind: {0.6, 0.2, 0.0},
	CategorySnow: {0.5, 0.2, 0.0},
}

// Psi0 returns the combination factor ψ0 for the given occupancy category.
func Psi0(cat OccupancyCategory) float64 { return psiFactors[cat][0] }

// Psi1 returns the frequent-value factor ψ1.
func Psi1(cat OccupancyCategory) float64 { return psiFactors[cat][1] }

// Psi2 returns the quasi-permanent factor ψ2.
func Psi2(cat OccupancyCategory) float64 { return psiFactors[cat][2] }

// BuildULSCombination6_10 builds the NEN-EN 1990 eq. 6.10 ULS combination
// (no reduction): γ_G·ΣG_k + γ_Q·Q_k,1 + Σγ_Qi·ψ0,i·Q_k,i.
func BuildULSCombination6_10(dead LoadCaseID, leadingVariable LoadCaseID, leadingCat OccupancyCategory, others map[LoadCaseID]OccupancyCategory) *Combination {
	factors := map[LoadCaseID]float64{dead: GammaGUnfavourable, leadingVariable: GammaQ}
	for id, cat := range others {
		factors[id] = GammaQ * Psi0(cat)
	}
	return NewCombination(ULS, factors)
}

// BuildSLSCharacteristic builds the SLS characteristic combination:
// ΣG_k + Q_k,1 + Σψ0,i·Q_k,i.
func BuildSLSCharacteristic(dead LoadCaseID, leadingVariable LoadCaseID, others map[LoadCaseID]OccupancyCategory) *Combination {
	factors := map[LoadCaseID]float64{dead: 1.0, leadingVariable: 1.0}
	for id, cat := range others {
		factors[id] = Psi0(cat)
	}
	return NewCombination(SLS, factors)
}
