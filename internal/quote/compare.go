// internal/quote/compare.go
package quote

// Compare runs the estimator once per provider profile, in the stable order
// freelancer, agency, headon, and derives the signed savings of headon
// versus the other two. Savings are never clamped: a negative value is a
// legitimate signal that headon is not cheaper for this configuration.
//
// Compare is a pure function of its input. Two calls with the same
// configuration yield identical output.
func Compare(cfg ProjectConfiguration) ComparisonResult {
	freelancer := Estimate(cfg, ProfileFor(ProviderFreelancer))
	agency := Estimate(cfg, ProfileFor(ProviderAgency))
	headon := Estimate(cfg, ProfileFor(ProviderHeadon))

	return ComparisonResult{
		Freelancer: freelancer,
		Agency:     agency,
		Headon:     headon,
		Savings: SavingsSummary{
			VsFreelancer: savingsAgainst(freelancer, headon),
			VsAgency:     savingsAgainst(agency, headon),
		},
	}
}

func savingsAgainst(other, headon ProviderEstimate) Savings {
	return Savings{
		Price:     other.PriceAvg - headon.PriceAvg,
		TimeWeeks: other.DurationWeeksAvg() - headon.DurationWeeksAvg(),
	}
}
