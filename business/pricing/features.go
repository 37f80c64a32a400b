package pricing

import "aipricing/domain"

// featureDim is the fixed length of the model input vector. Field order is
// part of the model contract: reordering requires retraining the model
// artifact alongside.
const featureDim = 6

// FeatureVector is the fixed-order numeric encoding the model consumes.
//
// index 0: employees count
// index 1: region slot
// index 2: premium flag (0/1)
// index 3: historical average order value
// index 4: prior offers count
// index 5: industry risk factor
type FeatureVector [featureDim]float64

// regionSlots mirrors the label encoding the training pipeline uses.
// Unknown regions map to the RegionOther slot rather than failing.
var regionSlots = map[domain.Region]float64{
	domain.RegionOther:       0,
	domain.RegionMalopolskie: 1,
	domain.RegionMazowieckie: 2,
	domain.RegionSlaskie:     3,
}

func regionSlot(region domain.Region) float64 {
	if slot, ok := regionSlots[region]; ok {
		return slot
	}
	return regionSlots[domain.RegionOther]
}

// BuildFeatureVector encodes offer attributes for model consumption.
// Pure and total over valid attributes.
func BuildFeatureVector(attrs domain.OfferAttributes) FeatureVector {
	var x FeatureVector

	x[0] = float64(attrs.EmployeesCount)
	x[1] = regionSlot(attrs.Region)
	if attrs.Premium48h {
		x[2] = 1.0
	}
	x[3] = attrs.AvgOrderValue
	x[4] = float64(attrs.PriorOffersCount)
	x[5] = attrs.IndustryRiskFactor

	return x
}
