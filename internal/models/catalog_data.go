package models

const (
	SymptomYellowingLeaves      = "yellowing_leaves"
	SymptomInterveinalChlorosis = "interveinal_chlorosis"
	SymptomBrownLeafSpots       = "brown_leaf_spots"
	SymptomAngularLeafSpots     = "angular_leaf_spots"
	SymptomWaterSoakedLesions   = "water_soaked_lesions"
	SymptomLeafMosaic           = "leaf_mosaic"
	SymptomLeafCurling          = "leaf_curling"
	SymptomLeafDrop             = "leaf_drop"
	SymptomWilting              = "wilting"
	SymptomStuntedGrowth        = "stunted_growth"
	SymptomRootRot              = "root_rot"
	SymptomRootGalls            = "root_galls"
	SymptomStemCankers          = "stem_cankers"
	SymptomStemLesions          = "stem_lesions"
	SymptomWhiteFungalGrowth    = "white_fungal_growth"
	SymptomGrayMold             = "gray_mold"
	SymptomPowderyCoating       = "powdery_coating"
	SymptomRustPustules         = "rust_pustules"
	SymptomPodRot               = "pod_rot"
	SymptomPodDiscoloration     = "pod_discoloration"
	SymptomPoorGermination      = "poor_germination"
	SymptomSeedRot              = "seed_rot"
	SymptomFlowerDrop           = "flower_drop"
	SymptomScorchedLeafEdges    = "scorched_leaf_edges"
	SymptomNecroticVeins        = "necrotic_veins"
	SymptomBrittleLeaves        = "brittle_leaves"
	SymptomMalformedPods        = "malformed_pods"
)

func DefaultSymptoms() []Symptom {
	return symptomList(
		SymptomYellowingLeaves,
		SymptomInterveinalChlorosis,
		SymptomBrownLeafSpots,
		SymptomAngularLeafSpots,
		SymptomWaterSoakedLesions,
		SymptomLeafMosaic,
		SymptomLeafCurling,
		SymptomLeafDrop,
		SymptomWilting,
		SymptomStuntedGrowth,
		SymptomRootRot,
		SymptomRootGalls,
		SymptomStemCankers,
		SymptomStemLesions,
		SymptomWhiteFungalGrowth,
		SymptomGrayMold,
		SymptomPowderyCoating,
		SymptomRustPustules,
		SymptomPodRot,
		SymptomPodDiscoloration,
		SymptomPoorGermination,
		SymptomSeedRot,
		SymptomFlowerDrop,
		SymptomScorchedLeafEdges,
		SymptomNecroticVeins,
		SymptomBrittleLeaves,
		SymptomMalformedPods,
	)
}

func DefaultDiseases() []Disease {
	return []Disease{
		// Fungal
		{Name: "Anthracnose", Category: CategoryFungal, Symptoms: symptomList(SymptomBrownLeafSpots, SymptomStemCankers, SymptomPodRot)},
		{Name: "Angular Leaf Spot", Category: CategoryFungal, Symptoms: symptomList(SymptomAngularLeafSpots, SymptomLeafDrop)},
		{Name: "Rust", Category: CategoryFungal, Symptoms: symptomList(SymptomRustPustules, SymptomYellowingLeaves, SymptomLeafDrop)},
		{Name: "Powdery Mildew", Category: CategoryFungal, Symptoms: symptomList(SymptomPowderyCoating, SymptomStuntedGrowth)},
		{Name: "White Mold", Category: CategoryFungal, Symptoms: symptomList(SymptomWhiteFungalGrowth, SymptomFlowerDrop)},
		{Name: "Gray Mold", Category: CategoryFungal, Symptoms: symptomList(SymptomGrayMold)},
		{Name: "Fusarium Wilt", Category: CategoryFungal, Symptoms: symptomList(SymptomWilting, SymptomYellowingLeaves, SymptomRootRot)},
		{Name: "Pythium Root Rot", Category: CategoryFungal, Symptoms: symptomList(SymptomRootRot)},
		{Name: "Rhizoctonia Root Rot", Category: CategoryFungal, Symptoms: symptomList(SymptomRootRot)},
		{Name: "Charcoal Rot", Category: CategoryFungal, Symptoms: symptomList(SymptomStuntedGrowth, SymptomRootRot)},
		{Name: "Cercospora Leaf Spot", Category: CategoryFungal, Symptoms: symptomList(SymptomBrownLeafSpots)},

		// Bacterial
		{Name: "Common Bacterial Blight", Category: CategoryBacterial, Symptoms: symptomList(SymptomWaterSoakedLesions, SymptomYellowingLeaves, SymptomPodDiscoloration)},
		{Name: "Halo Blight", Category: CategoryBacterial, Symptoms: symptomList(SymptomBrownLeafSpots, SymptomInterveinalChlorosis)},
		{Name: "Bacterial Soft Rot", Category: CategoryBacterial, Symptoms: symptomList(SymptomPodRot)},
		{Name: "Bacterial Pod Rot", Category: CategoryBacterial, Symptoms: symptomList(SymptomPodRot)},

		// Viral
		{Name: "Bean Common Mosaic Virus", Category: CategoryViral, Symptoms: symptomList(SymptomLeafMosaic, SymptomLeafCurling, SymptomStuntedGrowth)},
		{Name: "Bean Yellow Mosaic Virus", Category: CategoryViral, Symptoms: symptomList(SymptomLeafMosaic, SymptomYellowingLeaves)},
		{Name: "Cucumber Mosaic Virus", Category: CategoryViral, Symptoms: symptomList(SymptomLeafMosaic, SymptomMalformedPods)},
		{Name: "Bean Golden Yellow Mosaic Virus", Category: CategoryViral, Symptoms: symptomList(SymptomYellowingLeaves, SymptomStuntedGrowth)},

		// Nematode
		{Name: "Root Knot Nematode", Category: CategoryNematode, Symptoms: symptomList(SymptomRootGalls, SymptomStuntedGrowth)},
		{Name: "Lesion Nematode", Category: CategoryNematode, Symptoms: symptomList(SymptomRootRot)},

		// Nutritional and abiotic
		{Name: "Nitrogen Deficiency", Category: CategoryNutritional, Symptoms: symptomList(SymptomYellowingLeaves, SymptomStuntedGrowth)},
		{Name: "Potassium Deficiency", Category: CategoryNutritional, Symptoms: symptomList(SymptomScorchedLeafEdges, SymptomBrittleLeaves)},
		{Name: "Iron Deficiency", Category: CategoryNutritional, Symptoms: symptomList(SymptomInterveinalChlorosis)},
		{Name: "Water Stress", Category: CategoryAbiotic, Symptoms: symptomList(SymptomWilting, SymptomLeafDrop)},
	}
}
